package ports

import (
	"context"
	"time"

	"profile-matcher/internal/core/domain"
)

type PlayerRepository interface {
	// GetPlayer returns an error wrapping domain.ErrNotFound when no player has the id.
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
}

type CampaignRepository interface {
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
}

type SeedRepository interface {
	// ReplaceAll deletes every stored player and campaign and inserts the given ones atomically.
	ReplaceAll(ctx context.Context, players []domain.Player, campaigns []domain.Campaign) error
}

type Repository interface {
	PlayerRepository
	CampaignRepository
	SeedRepository
	Close()
}

type Clock func() time.Time
