package clientconfig

import (
	"context"

	"profile-matcher/internal/core/domain"
)

type mockPlayers struct {
	getPlayerFunc func(ctx context.Context, playerID string) (*domain.Player, error)
	calls         int
}

func (m *mockPlayers) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	m.calls++
	if m.getPlayerFunc != nil {
		return m.getPlayerFunc(ctx, playerID)
	}
	return nil, domain.ErrNotFound
}

type mockCampaigns struct {
	listCampaignsFunc func(ctx context.Context) ([]domain.Campaign, error)
	calls             int
}

func (m *mockCampaigns) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	m.calls++
	if m.listCampaignsFunc != nil {
		return m.listCampaignsFunc(ctx)
	}
	return nil, nil
}

type mockSeeder struct {
	replaceAllFunc func(ctx context.Context, players []domain.Player, campaigns []domain.Campaign) error
}

func (m *mockSeeder) ReplaceAll(ctx context.Context, players []domain.Player, campaigns []domain.Campaign) error {
	if m.replaceAllFunc != nil {
		return m.replaceAllFunc(ctx, players, campaigns)
	}
	return nil
}
