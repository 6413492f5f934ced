package clientconfig

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"profile-matcher/internal/adapters/metrics"
	"profile-matcher/internal/core/domain"
	"profile-matcher/internal/core/ports"
	"profile-matcher/internal/core/services/matcher"
	"profile-matcher/internal/core/services/profile"
)

type Dependencies struct {
	Players   ports.PlayerRepository
	Campaigns ports.CampaignRepository
	Seeder    ports.SeedRepository
	Clock     ports.Clock
}

type Service struct {
	players   ports.PlayerRepository
	campaigns ports.CampaignRepository
	seeder    ports.SeedRepository
	clock     ports.Clock
}

func NewService(deps Dependencies) *Service {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Service{
		players:   deps.Players,
		campaigns: deps.Campaigns,
		seeder:    deps.Seeder,
		clock:     clock,
	}
}

// GetEligibleCampaigns loads the player's profile and returns it with the names of the
// campaigns it currently satisfies, sorted by name.
func (s *Service) GetEligibleCampaigns(ctx context.Context, playerID string) (*domain.Profile, []string, error) {
	if strings.TrimSpace(playerID) == "" {
		return nil, nil, fmt.Errorf("player id is required: %w", domain.ErrInvalidInput)
	}

	player, err := s.players.GetPlayer(ctx, playerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.ProfileLookups.WithLabelValues("not_found").Inc()
			return nil, nil, err
		}
		metrics.ProfileLookups.WithLabelValues("error").Inc()
		return nil, nil, fmt.Errorf("get player: %w", err)
	}

	p, err := profile.Normalize(player)
	if err != nil {
		metrics.ProfileLookups.WithLabelValues("not_found").Inc()
		return nil, nil, fmt.Errorf("normalize player %q: %w", playerID, err)
	}
	metrics.ProfileLookups.WithLabelValues("found").Inc()

	campaigns, err := s.campaigns.ListCampaigns(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list campaigns: %w", err)
	}

	now := s.clock()
	res := matcher.Evaluate(p, campaigns, now)

	for _, evalErr := range res.Errors {
		slog.Warn("Excluding campaign with malformed window", "player_id", playerID, "error", evalErr)
		metrics.MalformedCampaignWindows.Inc()
	}

	active := res.Active
	sort.Strings(active)

	metrics.EligibilityPasses.Inc()
	metrics.CampaignsMatched.Add(float64(len(active)))
	slog.Debug("Eligibility pass finished", "player_id", playerID, "campaigns", len(campaigns), "active", len(active))

	return p, active, nil
}
