// Package sqlite is the file-backed repository used for local runs and the
// default DATABASE_URL.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"profile-matcher/internal/adapters/storage"
	"profile-matcher/internal/adapters/storage/sqlite/migrations"
	"profile-matcher/internal/core/domain"

	_ "modernc.org/sqlite"
)

type Store struct {
	sqlDB *sql.DB
}

// Open opens (creating if needed) the database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	cleanPath := strings.TrimSpace(path)
	if cleanPath == "" {
		return nil, errors.New("sqlite path is required")
	}
	if cleanPath != ":memory:" {
		cleanPath = filepath.Clean(cleanPath)
	}

	dsn := "file:" + cleanPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite store: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

func (s *Store) Close() {
	if s == nil || s.sqlDB == nil {
		return
	}
	_ = s.sqlDB.Close()
}

// Migrate applies the embedded schema migrations.
func (s *Store) Migrate(ctx context.Context) error {
	if err := applyMigrations(ctx, s.sqlDB, migrations.FS); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

const getPlayerSQL = `
SELECT p.player_id, p.credential, p.created, p.modified, p.last_session,
       p.total_spent, p.total_refund, p.total_transactions, p.last_purchase,
       p.level, p.xp, p.total_playtime, p.country, p.language, p.birthdate,
       p.gender, p.custom_field, c.id, c.name
FROM players p
LEFT JOIN clans c ON c.id = p.clan_id
WHERE p.player_id = ?`

// GetPlayer loads a player with devices, inventory and clan on a single
// connection that is released before returning.
func (s *Store) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	conn, err := s.sqlDB.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	var (
		p                                                  domain.Player
		credential, created, modified, lastSession         sql.NullString
		lastPurchase, country, language, birthdate, gender sql.NullString
		customField, clanID, clanName                      sql.NullString
		totalSpent, totalRefund, totalTransactions         sql.NullInt64
		level, xp, totalPlaytime                           sql.NullInt64
	)
	err = conn.QueryRowContext(ctx, getPlayerSQL, playerID).Scan(
		&p.PlayerID, &credential, &created, &modified, &lastSession,
		&totalSpent, &totalRefund, &totalTransactions, &lastPurchase,
		&level, &xp, &totalPlaytime, &country, &language, &birthdate,
		&gender, &customField, &clanID, &clanName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get player %q: %w", playerID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	}

	p.Credential = credential.String
	p.Created = created.String
	p.Modified = modified.String
	p.LastSession = lastSession.String
	p.TotalSpent = int(totalSpent.Int64)
	p.TotalRefund = int(totalRefund.Int64)
	p.TotalTransactions = int(totalTransactions.Int64)
	p.LastPurchase = lastPurchase.String
	p.Level = int(level.Int64)
	p.XP = int(xp.Int64)
	p.TotalPlaytime = int(totalPlaytime.Int64)
	p.Country = country.String
	p.Language = language.String
	p.Birthdate = birthdate.String
	p.Gender = gender.String
	p.CustomField = customField.String
	if clanID.Valid {
		p.Clan = &domain.Clan{ID: clanID.String, Name: clanName.String}
	}

	if p.Devices, err = listDevices(ctx, conn, playerID); err != nil {
		return nil, err
	}
	if p.Inventory, err = listInventory(ctx, conn, playerID); err != nil {
		return nil, err
	}

	return &p, nil
}

func listDevices(ctx context.Context, conn *sql.Conn, playerID string) ([]domain.Device, error) {
	rows, err := conn.QueryContext(ctx,
		`SELECT id, model, carrier, firmware FROM devices WHERE player_id = ? ORDER BY id`, playerID)
	if err != nil {
		return nil, fmt.Errorf("list player devices: %w", err)
	}
	defer rows.Close()

	devices := []domain.Device{}
	for rows.Next() {
		var (
			d                        domain.Device
			model, carrier, firmware sql.NullString
		)
		if err := rows.Scan(&d.ID, &model, &carrier, &firmware); err != nil {
			return nil, fmt.Errorf("scan device: %w", err)
		}
		d.Model, d.Carrier, d.Firmware = model.String, carrier.String, firmware.String
		devices = append(devices, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate devices: %w", err)
	}
	return devices, nil
}

func listInventory(ctx context.Context, conn *sql.Conn, playerID string) ([]domain.InventoryItem, error) {
	rows, err := conn.QueryContext(ctx,
		`SELECT name, quantity FROM inventory_items WHERE player_id = ? ORDER BY id`, playerID)
	if err != nil {
		return nil, fmt.Errorf("list player inventory: %w", err)
	}
	defer rows.Close()

	items := []domain.InventoryItem{}
	for rows.Next() {
		var item domain.InventoryItem
		if err := rows.Scan(&item.Name, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inventory: %w", err)
	}
	return items, nil
}

// ListCampaigns returns every stored campaign with its matcher sets.
func (s *Store) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	conn, err := s.sqlDB.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	rows, err := listCampaignRows(ctx, conn)
	if err != nil {
		return nil, err
	}
	countries, err := listMatcherValues(ctx, conn, "campaign_countries", "country")
	if err != nil {
		return nil, fmt.Errorf("list campaign countries: %w", err)
	}
	itemsHas, err := listMatcherValues(ctx, conn, "campaign_items_has", "item")
	if err != nil {
		return nil, fmt.Errorf("list campaign required items: %w", err)
	}
	itemsDoesNotHave, err := listMatcherValues(ctx, conn, "campaign_items_does_not_have", "item")
	if err != nil {
		return nil, fmt.Errorf("list campaign forbidden items: %w", err)
	}

	return storage.AssembleCampaigns(rows, countries, itemsHas, itemsDoesNotHave), nil
}

func listCampaignRows(ctx context.Context, conn *sql.Conn) ([]storage.CampaignRow, error) {
	rows, err := conn.QueryContext(ctx, `
SELECT name, game, priority, start_date, end_date, enabled, last_updated,
       matcher_level_min, matcher_level_max
FROM campaigns
ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()

	out := []storage.CampaignRow{}
	for rows.Next() {
		var (
			row                                   storage.CampaignRow
			game, startDate, endDate, lastUpdated sql.NullString
			priority                              sql.NullFloat64
			levelMin, levelMax                    sql.NullInt64
		)
		if err := rows.Scan(&row.Name, &game, &priority, &startDate, &endDate,
			&row.Enabled, &lastUpdated, &levelMin, &levelMax); err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		row.Game = game.String
		row.Priority = priority.Float64
		row.StartDate = startDate.String
		row.EndDate = endDate.String
		row.LastUpdated = lastUpdated.String
		row.LevelMin = nullIntPtr(levelMin)
		row.LevelMax = nullIntPtr(levelMax)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate campaigns: %w", err)
	}
	return out, nil
}

// table and column are package constants, never caller input.
func listMatcherValues(ctx context.Context, conn *sql.Conn, table, column string) ([]storage.MatcherValue, error) {
	rows, err := conn.QueryContext(ctx,
		"SELECT campaign_name, "+column+" FROM "+table+" ORDER BY campaign_name, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []storage.MatcherValue
	for rows.Next() {
		var v storage.MatcherValue
		if err := rows.Scan(&v.CampaignName, &v.Value); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func nullIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

// ReplaceAll swaps the stored dataset for players and campaigns in one
// transaction.
func (s *Store) ReplaceAll(ctx context.Context, players []domain.Player, campaigns []domain.Campaign) (err error) {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{
		"campaign_items_does_not_have",
		"campaign_items_has",
		"campaign_countries",
		"campaigns",
		"inventory_items",
		"devices",
		"players",
		"clans",
	} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i := range players {
		if err = insertPlayer(ctx, tx, &players[i]); err != nil {
			return err
		}
	}
	for i := range campaigns {
		if err = insertCampaign(ctx, tx, &campaigns[i]); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func insertPlayer(ctx context.Context, tx *sql.Tx, p *domain.Player) error {
	var clanID sql.NullString
	if p.Clan != nil {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO clans (id, name) VALUES (?, ?) ON CONFLICT (id) DO UPDATE SET name = excluded.name`,
			p.Clan.ID, p.Clan.Name,
		); err != nil {
			return fmt.Errorf("insert clan %q: %w", p.Clan.ID, err)
		}
		clanID = sql.NullString{String: p.Clan.ID, Valid: true}
	}

	if _, err := tx.ExecContext(ctx, `
INSERT INTO players (
    player_id, credential, created, modified, last_session, total_spent,
    total_refund, total_transactions, last_purchase, level, xp,
    total_playtime, country, language, birthdate, gender, custom_field, clan_id
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.PlayerID, p.Credential, p.Created, p.Modified, p.LastSession, p.TotalSpent,
		p.TotalRefund, p.TotalTransactions, p.LastPurchase, p.Level, p.XP,
		p.TotalPlaytime, p.Country, p.Language, p.Birthdate, p.Gender, p.CustomField, clanID,
	); err != nil {
		return fmt.Errorf("insert player %q: %w", p.PlayerID, err)
	}

	for _, d := range p.Devices {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO devices (player_id, model, carrier, firmware) VALUES (?, ?, ?, ?)`,
			p.PlayerID, d.Model, d.Carrier, d.Firmware,
		); err != nil {
			return fmt.Errorf("insert device: %w", err)
		}
	}

	for _, item := range p.Inventory {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO inventory_items (player_id, name, quantity) VALUES (?, ?, ?)`,
			p.PlayerID, item.Name, item.Quantity,
		); err != nil {
			return fmt.Errorf("insert inventory item %q: %w", item.Name, err)
		}
	}

	return nil
}

func insertCampaign(ctx context.Context, tx *sql.Tx, c *domain.Campaign) error {
	if _, err := tx.ExecContext(ctx, `
INSERT INTO campaigns (
    name, game, priority, start_date, end_date, enabled, last_updated,
    matcher_level_min, matcher_level_max
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Name, c.Game, c.Priority, c.StartDate, c.EndDate, c.Enabled, c.LastUpdated,
		c.Matchers.Level.Min, c.Matchers.Level.Max,
	); err != nil {
		return fmt.Errorf("insert campaign %q: %w", c.Name, err)
	}

	sets := []struct {
		table, column string
		values        domain.Set
	}{
		{"campaign_countries", "country", c.Matchers.Has.Countries},
		{"campaign_items_has", "item", c.Matchers.Has.Items},
		{"campaign_items_does_not_have", "item", c.Matchers.DoesNotHave.Items},
	}
	for _, set := range sets {
		for _, v := range set.values.Sorted() {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO "+set.table+" (campaign_name, "+set.column+") VALUES (?, ?)",
				c.Name, v,
			); err != nil {
				return fmt.Errorf("insert %s for campaign %q: %w", set.table, c.Name, err)
			}
		}
	}

	return nil
}
