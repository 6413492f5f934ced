package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"profile-matcher/internal/adapters/storage"
	"profile-matcher/internal/adapters/storage/postgres/db"
	"profile-matcher/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PostgresStore struct {
	pool *pgxpool.Pool
	conn db.DBTX
	tx   txBeginner
	q    *db.Queries
}

func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &PostgresStore{
		pool: pool,
		conn: pool,
		tx:   pool,
		q:    db.New(pool),
	}, nil
}

func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Migrate creates the schema when it does not exist yet.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.conn.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// -- Player Methods --

func (s *PostgresStore) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	row, err := s.q.GetPlayer(ctx, playerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("get player %q: %w", playerID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get player: %w", err)
	}

	devices, err := s.q.ListPlayerDevices(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list player devices: %w", err)
	}

	inventory, err := s.q.ListPlayerInventory(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list player inventory: %w", err)
	}

	return toDomainPlayer(row, devices, inventory), nil
}

// -- Campaign Methods --

func (s *PostgresStore) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := s.q.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}

	countries, err := s.q.ListCampaignCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaign countries: %w", err)
	}

	itemsHas, err := s.q.ListCampaignItemsHas(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaign required items: %w", err)
	}

	itemsDoesNotHave, err := s.q.ListCampaignItemsDoesNotHave(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaign forbidden items: %w", err)
	}

	campaignRows := make([]storage.CampaignRow, 0, len(rows))
	for _, row := range rows {
		campaignRows = append(campaignRows, toCampaignRow(row))
	}

	return storage.AssembleCampaigns(
		campaignRows,
		toMatcherValues(countries),
		toMatcherValues(itemsHas),
		toMatcherValues(itemsDoesNotHave),
	), nil
}

// -- Seeding Methods --

func (s *PostgresStore) ReplaceAll(ctx context.Context, players []domain.Player, campaigns []domain.Campaign) (err error) {
	tx, err := s.tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	q := s.q.WithTx(tx)

	if err = q.DeleteAllCampaigns(ctx); err != nil {
		return fmt.Errorf("delete campaigns: %w", err)
	}
	if err = q.DeleteAllPlayers(ctx); err != nil {
		return fmt.Errorf("delete players: %w", err)
	}
	if err = q.DeleteAllClans(ctx); err != nil {
		return fmt.Errorf("delete clans: %w", err)
	}

	for i := range players {
		if err = insertPlayer(ctx, q, &players[i]); err != nil {
			return err
		}
	}

	for i := range campaigns {
		if err = insertCampaign(ctx, q, &campaigns[i]); err != nil {
			return err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func insertPlayer(ctx context.Context, q *db.Queries, p *domain.Player) error {
	clanID := pgtype.Text{}
	if p.Clan != nil {
		if err := q.UpsertClan(ctx, db.UpsertClanParams{ID: p.Clan.ID, Name: p.Clan.Name}); err != nil {
			return fmt.Errorf("insert clan %q: %w", p.Clan.ID, err)
		}
		clanID = pgtype.Text{String: p.Clan.ID, Valid: true}
	}

	if err := q.InsertPlayer(ctx, toInsertPlayerParams(p, clanID)); err != nil {
		return fmt.Errorf("insert player %q: %w", p.PlayerID, err)
	}

	for _, d := range p.Devices {
		if err := q.InsertDevice(ctx, db.InsertDeviceParams{
			PlayerID: p.PlayerID,
			Model:    d.Model,
			Carrier:  d.Carrier,
			Firmware: d.Firmware,
		}); err != nil {
			return fmt.Errorf("insert device: %w", err)
		}
	}

	for _, item := range p.Inventory {
		if err := q.InsertInventoryItem(ctx, db.InsertInventoryItemParams{
			PlayerID: p.PlayerID,
			Name:     item.Name,
			Quantity: int32(item.Quantity),
		}); err != nil {
			return fmt.Errorf("insert inventory item %q: %w", item.Name, err)
		}
	}

	return nil
}

func insertCampaign(ctx context.Context, q *db.Queries, c *domain.Campaign) error {
	if err := q.InsertCampaign(ctx, db.InsertCampaignParams{
		Name:            c.Name,
		Game:            c.Game,
		Priority:        c.Priority,
		StartDate:       c.StartDate,
		EndDate:         c.EndDate,
		Enabled:         c.Enabled,
		LastUpdated:     c.LastUpdated,
		MatcherLevelMin: int32(c.Matchers.Level.Min),
		MatcherLevelMax: int32(c.Matchers.Level.Max),
	}); err != nil {
		return fmt.Errorf("insert campaign %q: %w", c.Name, err)
	}

	for _, country := range c.Matchers.Has.Countries.Sorted() {
		if err := q.InsertCampaignCountry(ctx, db.InsertCampaignValueParams{CampaignName: c.Name, Value: country}); err != nil {
			return fmt.Errorf("insert campaign country: %w", err)
		}
	}
	for _, item := range c.Matchers.Has.Items.Sorted() {
		if err := q.InsertCampaignItemHas(ctx, db.InsertCampaignValueParams{CampaignName: c.Name, Value: item}); err != nil {
			return fmt.Errorf("insert campaign required item: %w", err)
		}
	}
	for _, item := range c.Matchers.DoesNotHave.Items.Sorted() {
		if err := q.InsertCampaignItemDoesNotHave(ctx, db.InsertCampaignValueParams{CampaignName: c.Name, Value: item}); err != nil {
			return fmt.Errorf("insert campaign forbidden item: %w", err)
		}
	}

	return nil
}
