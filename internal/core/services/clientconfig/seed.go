package clientconfig

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"profile-matcher/internal/core/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	MockPlayerID     = "97983be2-98b7-11e7-90cf-082e5f28d836"
	MockCampaignName = "mycampaign"
)

// SeedMockData replaces every stored player and campaign with the demo fixtures.
func (s *Service) SeedMockData(ctx context.Context) error {
	if s.seeder == nil {
		return fmt.Errorf("seeding is not configured")
	}

	players := []domain.Player{MockPlayer()}
	campaigns := []domain.Campaign{NormalizeCampaign(MockCampaign())}

	if err := s.seeder.ReplaceAll(ctx, players, campaigns); err != nil {
		return fmt.Errorf("seed mock data: %w", err)
	}

	slog.Info("Seeded mock data", "players", len(players), "campaigns", len(campaigns))
	return nil
}

func MockPlayer() domain.Player {
	return domain.Player{
		PlayerID:          MockPlayerID,
		Credential:        "apple_credential",
		Created:           "2021-01-10 13:37:17Z",
		Modified:          "2021-01-23 13:37:17Z",
		LastSession:       "2021-01-23 13:37:17Z",
		TotalSpent:        400,
		TotalRefund:       0,
		TotalTransactions: 5,
		LastPurchase:      "2021-01-22 13:37:17Z",
		Level:             3,
		XP:                1000,
		TotalPlaytime:     144,
		Country:           "CA",
		Language:          "fr",
		Birthdate:         "2000-01-10 13:37:17Z",
		Gender:            "male",
		CustomField:       "mycustom",
		Devices: []domain.Device{
			{Model: "apple iphone 11", Carrier: "vodafone", Firmware: "123"},
		},
		Inventory: []domain.InventoryItem{
			{Name: "cash", Quantity: 123},
			{Name: "coins", Quantity: 123},
			{Name: "item_1", Quantity: 1},
			{Name: "item_34", Quantity: 3},
			{Name: "item_55", Quantity: 2},
		},
		Clan: &domain.Clan{ID: "123456", Name: "Hello world clan"},
	}
}

func MockCampaign() domain.Campaign {
	return domain.Campaign{
		Name:     MockCampaignName,
		Game:     "mygame",
		Priority: 10.5,
		Matchers: domain.Matchers{
			Level: domain.LevelRange{Min: 1, Max: 3},
			Has: domain.HasMatcher{
				Countries: domain.NewSet("US", "RO", "CA"),
				Items:     domain.NewSet("item_1"),
			},
			DoesNotHave: domain.DoesNotHaveMatcher{
				Items: domain.NewSet("item_4"),
			},
		},
		StartDate:   "2025-04-25 00:00:00Z",
		EndDate:     "2025-06-25 00:00:00Z",
		Enabled:     true,
		LastUpdated: "2025-05-16 11:46:58Z",
	}
}

// NormalizeCampaign trims matcher values and upper-cases country codes before they are stored.
// Blank values are dropped.
func NormalizeCampaign(c domain.Campaign) domain.Campaign {
	upper := cases.Upper(language.Und)

	countries := domain.NewSet()
	for country := range c.Matchers.Has.Countries {
		if v := strings.TrimSpace(country); v != "" {
			countries.Add(upper.String(v))
		}
	}

	c.Matchers.Has.Countries = countries
	c.Matchers.Has.Items = trimSet(c.Matchers.Has.Items)
	c.Matchers.DoesNotHave.Items = trimSet(c.Matchers.DoesNotHave.Items)
	return c
}

func trimSet(in domain.Set) domain.Set {
	out := domain.NewSet()
	for v := range in {
		if t := strings.TrimSpace(v); t != "" {
			out.Add(t)
		}
	}
	return out
}
