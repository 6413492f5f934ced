package db

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Campaign struct {
	Name            string
	Game            pgtype.Text
	Priority        pgtype.Float8
	StartDate       pgtype.Text
	EndDate         pgtype.Text
	Enabled         bool
	LastUpdated     pgtype.Text
	MatcherLevelMin pgtype.Int4
	MatcherLevelMax pgtype.Int4
}

type CampaignValue struct {
	CampaignName string
	Value        string
}

type Device struct {
	ID       int64
	Model    pgtype.Text
	Carrier  pgtype.Text
	Firmware pgtype.Text
}

type InventoryItem struct {
	Name     string
	Quantity int32
}

type GetPlayerRow struct {
	PlayerID          string
	Credential        pgtype.Text
	Created           pgtype.Text
	Modified          pgtype.Text
	LastSession       pgtype.Text
	TotalSpent        pgtype.Int4
	TotalRefund       pgtype.Int4
	TotalTransactions pgtype.Int4
	LastPurchase      pgtype.Text
	Level             pgtype.Int4
	Xp                pgtype.Int4
	TotalPlaytime     pgtype.Int4
	Country           pgtype.Text
	Language          pgtype.Text
	Birthdate         pgtype.Text
	Gender            pgtype.Text
	CustomField       pgtype.Text
	ClanID            pgtype.Text
	ClanName          pgtype.Text
}
