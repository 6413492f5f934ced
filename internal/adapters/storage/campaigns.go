// Package storage holds the mapping shared by the database adapters.
package storage

import (
	"log/slog"

	"profile-matcher/internal/core/domain"
)

// CampaignRow is a campaign as read from the campaigns table, before its matcher rows are attached.
type CampaignRow struct {
	Name        string
	Game        string
	Priority    float64
	StartDate   string
	EndDate     string
	Enabled     bool
	LastUpdated string
	LevelMin    *int
	LevelMax    *int
}

// MatcherValue is one row of a campaign matcher table (country, required item, forbidden item).
type MatcherValue struct {
	CampaignName string
	Value        string
}

// AssembleCampaigns attaches matcher rows to their campaigns and returns typed campaigns in row order.
// Campaigns without both level bounds are dropped with a warning; matcher rows naming an unknown
// campaign are ignored.
func AssembleCampaigns(rows []CampaignRow, countries, itemsHas, itemsDoesNotHave []MatcherValue) []domain.Campaign {
	result := make([]domain.Campaign, 0, len(rows))
	index := make(map[string]int, len(rows))

	for _, row := range rows {
		if row.LevelMin == nil || row.LevelMax == nil {
			slog.Warn("Skipping campaign without level bounds", "campaign", row.Name)
			continue
		}

		index[row.Name] = len(result)
		result = append(result, domain.Campaign{
			Name:     row.Name,
			Game:     row.Game,
			Priority: row.Priority,
			Matchers: domain.Matchers{
				Level: domain.LevelRange{Min: *row.LevelMin, Max: *row.LevelMax},
				Has: domain.HasMatcher{
					Countries: domain.NewSet(),
					Items:     domain.NewSet(),
				},
				DoesNotHave: domain.DoesNotHaveMatcher{
					Items: domain.NewSet(),
				},
			},
			StartDate:   row.StartDate,
			EndDate:     row.EndDate,
			Enabled:     row.Enabled,
			LastUpdated: row.LastUpdated,
		})
	}

	attach := func(values []MatcherValue, pick func(*domain.Campaign) domain.Set) {
		for _, v := range values {
			if i, ok := index[v.CampaignName]; ok {
				pick(&result[i]).Add(v.Value)
			}
		}
	}

	attach(countries, func(c *domain.Campaign) domain.Set { return c.Matchers.Has.Countries })
	attach(itemsHas, func(c *domain.Campaign) domain.Set { return c.Matchers.Has.Items })
	attach(itemsDoesNotHave, func(c *domain.Campaign) domain.Set { return c.Matchers.DoesNotHave.Items })

	return result
}
