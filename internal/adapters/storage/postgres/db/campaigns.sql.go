package db

import (
	"context"
)

const listCampaigns = `-- name: ListCampaigns :many
SELECT name, game, priority, start_date, end_date, enabled, last_updated,
       matcher_level_min, matcher_level_max
FROM campaigns
ORDER BY name
`

func (q *Queries) ListCampaigns(ctx context.Context) ([]Campaign, error) {
	rows, err := q.db.Query(ctx, listCampaigns)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Campaign
	for rows.Next() {
		var i Campaign
		if err := rows.Scan(
			&i.Name,
			&i.Game,
			&i.Priority,
			&i.StartDate,
			&i.EndDate,
			&i.Enabled,
			&i.LastUpdated,
			&i.MatcherLevelMin,
			&i.MatcherLevelMax,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listCampaignCountries = `-- name: ListCampaignCountries :many
SELECT campaign_name, country
FROM campaign_countries
ORDER BY id
`

func (q *Queries) ListCampaignCountries(ctx context.Context) ([]CampaignValue, error) {
	return q.listCampaignValues(ctx, listCampaignCountries)
}

const listCampaignItemsHas = `-- name: ListCampaignItemsHas :many
SELECT campaign_name, item
FROM campaign_items_has
ORDER BY id
`

func (q *Queries) ListCampaignItemsHas(ctx context.Context) ([]CampaignValue, error) {
	return q.listCampaignValues(ctx, listCampaignItemsHas)
}

const listCampaignItemsDoesNotHave = `-- name: ListCampaignItemsDoesNotHave :many
SELECT campaign_name, item
FROM campaign_items_does_not_have
ORDER BY id
`

func (q *Queries) ListCampaignItemsDoesNotHave(ctx context.Context) ([]CampaignValue, error) {
	return q.listCampaignValues(ctx, listCampaignItemsDoesNotHave)
}

func (q *Queries) listCampaignValues(ctx context.Context, query string) ([]CampaignValue, error) {
	rows, err := q.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CampaignValue
	for rows.Next() {
		var i CampaignValue
		if err := rows.Scan(&i.CampaignName, &i.Value); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const insertCampaign = `-- name: InsertCampaign :exec
INSERT INTO campaigns (
    name, game, priority, start_date, end_date, enabled, last_updated,
    matcher_level_min, matcher_level_max
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

type InsertCampaignParams struct {
	Name            string
	Game            string
	Priority        float64
	StartDate       string
	EndDate         string
	Enabled         bool
	LastUpdated     string
	MatcherLevelMin int32
	MatcherLevelMax int32
}

func (q *Queries) InsertCampaign(ctx context.Context, arg InsertCampaignParams) error {
	_, err := q.db.Exec(ctx, insertCampaign,
		arg.Name,
		arg.Game,
		arg.Priority,
		arg.StartDate,
		arg.EndDate,
		arg.Enabled,
		arg.LastUpdated,
		arg.MatcherLevelMin,
		arg.MatcherLevelMax,
	)
	return err
}

const insertCampaignCountry = `-- name: InsertCampaignCountry :exec
INSERT INTO campaign_countries (campaign_name, country)
VALUES ($1, $2)
`

type InsertCampaignValueParams struct {
	CampaignName string
	Value        string
}

func (q *Queries) InsertCampaignCountry(ctx context.Context, arg InsertCampaignValueParams) error {
	_, err := q.db.Exec(ctx, insertCampaignCountry, arg.CampaignName, arg.Value)
	return err
}

const insertCampaignItemHas = `-- name: InsertCampaignItemHas :exec
INSERT INTO campaign_items_has (campaign_name, item)
VALUES ($1, $2)
`

func (q *Queries) InsertCampaignItemHas(ctx context.Context, arg InsertCampaignValueParams) error {
	_, err := q.db.Exec(ctx, insertCampaignItemHas, arg.CampaignName, arg.Value)
	return err
}

const insertCampaignItemDoesNotHave = `-- name: InsertCampaignItemDoesNotHave :exec
INSERT INTO campaign_items_does_not_have (campaign_name, item)
VALUES ($1, $2)
`

func (q *Queries) InsertCampaignItemDoesNotHave(ctx context.Context, arg InsertCampaignValueParams) error {
	_, err := q.db.Exec(ctx, insertCampaignItemDoesNotHave, arg.CampaignName, arg.Value)
	return err
}

const deleteAllCampaigns = `-- name: DeleteAllCampaigns :exec
DELETE FROM campaigns
`

func (q *Queries) DeleteAllCampaigns(ctx context.Context) error {
	_, err := q.db.Exec(ctx, deleteAllCampaigns)
	return err
}
