package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getPlayer = `-- name: GetPlayer :one
SELECT p.player_id, p.credential, p.created, p.modified, p.last_session,
       p.total_spent, p.total_refund, p.total_transactions, p.last_purchase,
       p.level, p.xp, p.total_playtime, p.country, p.language, p.birthdate,
       p.gender, p.custom_field, p.clan_id, c.name AS clan_name
FROM players p
LEFT JOIN clans c ON c.id = p.clan_id
WHERE p.player_id = $1
`

func (q *Queries) GetPlayer(ctx context.Context, playerID string) (GetPlayerRow, error) {
	row := q.db.QueryRow(ctx, getPlayer, playerID)
	var i GetPlayerRow
	err := row.Scan(
		&i.PlayerID,
		&i.Credential,
		&i.Created,
		&i.Modified,
		&i.LastSession,
		&i.TotalSpent,
		&i.TotalRefund,
		&i.TotalTransactions,
		&i.LastPurchase,
		&i.Level,
		&i.Xp,
		&i.TotalPlaytime,
		&i.Country,
		&i.Language,
		&i.Birthdate,
		&i.Gender,
		&i.CustomField,
		&i.ClanID,
		&i.ClanName,
	)
	return i, err
}

const listPlayerDevices = `-- name: ListPlayerDevices :many
SELECT id, model, carrier, firmware
FROM devices
WHERE player_id = $1
ORDER BY id
`

func (q *Queries) ListPlayerDevices(ctx context.Context, playerID string) ([]Device, error) {
	rows, err := q.db.Query(ctx, listPlayerDevices, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Device
	for rows.Next() {
		var i Device
		if err := rows.Scan(&i.ID, &i.Model, &i.Carrier, &i.Firmware); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listPlayerInventory = `-- name: ListPlayerInventory :many
SELECT name, quantity
FROM inventory_items
WHERE player_id = $1
ORDER BY id
`

func (q *Queries) ListPlayerInventory(ctx context.Context, playerID string) ([]InventoryItem, error) {
	rows, err := q.db.Query(ctx, listPlayerInventory, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []InventoryItem
	for rows.Next() {
		var i InventoryItem
		if err := rows.Scan(&i.Name, &i.Quantity); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const upsertClan = `-- name: UpsertClan :exec
INSERT INTO clans (id, name)
VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
`

type UpsertClanParams struct {
	ID   string
	Name string
}

func (q *Queries) UpsertClan(ctx context.Context, arg UpsertClanParams) error {
	_, err := q.db.Exec(ctx, upsertClan, arg.ID, arg.Name)
	return err
}

const insertPlayer = `-- name: InsertPlayer :exec
INSERT INTO players (
    player_id, credential, created, modified, last_session,
    total_spent, total_refund, total_transactions, last_purchase,
    level, xp, total_playtime, country, language, birthdate,
    gender, custom_field, clan_id
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18
)
`

type InsertPlayerParams struct {
	PlayerID          string
	Credential        string
	Created           string
	Modified          string
	LastSession       string
	TotalSpent        int32
	TotalRefund       int32
	TotalTransactions int32
	LastPurchase      string
	Level             int32
	Xp                int32
	TotalPlaytime     int32
	Country           string
	Language          string
	Birthdate         string
	Gender            string
	CustomField       string
	ClanID            pgtype.Text
}

func (q *Queries) InsertPlayer(ctx context.Context, arg InsertPlayerParams) error {
	_, err := q.db.Exec(ctx, insertPlayer,
		arg.PlayerID,
		arg.Credential,
		arg.Created,
		arg.Modified,
		arg.LastSession,
		arg.TotalSpent,
		arg.TotalRefund,
		arg.TotalTransactions,
		arg.LastPurchase,
		arg.Level,
		arg.Xp,
		arg.TotalPlaytime,
		arg.Country,
		arg.Language,
		arg.Birthdate,
		arg.Gender,
		arg.CustomField,
		arg.ClanID,
	)
	return err
}

const insertDevice = `-- name: InsertDevice :exec
INSERT INTO devices (player_id, model, carrier, firmware)
VALUES ($1, $2, $3, $4)
`

type InsertDeviceParams struct {
	PlayerID string
	Model    string
	Carrier  string
	Firmware string
}

func (q *Queries) InsertDevice(ctx context.Context, arg InsertDeviceParams) error {
	_, err := q.db.Exec(ctx, insertDevice, arg.PlayerID, arg.Model, arg.Carrier, arg.Firmware)
	return err
}

const insertInventoryItem = `-- name: InsertInventoryItem :exec
INSERT INTO inventory_items (player_id, name, quantity)
VALUES ($1, $2, $3)
`

type InsertInventoryItemParams struct {
	PlayerID string
	Name     string
	Quantity int32
}

func (q *Queries) InsertInventoryItem(ctx context.Context, arg InsertInventoryItemParams) error {
	_, err := q.db.Exec(ctx, insertInventoryItem, arg.PlayerID, arg.Name, arg.Quantity)
	return err
}

const deleteAllPlayers = `-- name: DeleteAllPlayers :exec
DELETE FROM players
`

func (q *Queries) DeleteAllPlayers(ctx context.Context) error {
	_, err := q.db.Exec(ctx, deleteAllPlayers)
	return err
}

const deleteAllClans = `-- name: DeleteAllClans :exec
DELETE FROM clans
`

func (q *Queries) DeleteAllClans(ctx context.Context) error {
	_, err := q.db.Exec(ctx, deleteAllClans)
	return err
}
