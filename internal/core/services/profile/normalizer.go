package profile

import (
	"profile-matcher/internal/core/domain"
)

// Normalize builds the canonical profile for a stored player.
// A nil player means the lookup found nothing and yields domain.ErrNotFound.
func Normalize(player *domain.Player) (*domain.Profile, error) {
	if player == nil {
		return nil, domain.ErrNotFound
	}

	return &domain.Profile{
		PlayerID:          player.PlayerID,
		Credential:        player.Credential,
		Created:           player.Created,
		Modified:          player.Modified,
		LastSession:       player.LastSession,
		TotalSpent:        player.TotalSpent,
		TotalRefund:       player.TotalRefund,
		TotalTransactions: player.TotalTransactions,
		LastPurchase:      player.LastPurchase,
		Level:             player.Level,
		XP:                player.XP,
		TotalPlaytime:     player.TotalPlaytime,
		Country:           player.Country,
		Language:          player.Language,
		Birthdate:         player.Birthdate,
		Gender:            player.Gender,
		CustomField:       player.CustomField,
		Devices:           copyDevices(player.Devices),
		Inventory:         buildInventory(player.Inventory),
		Clan:              copyClan(player.Clan),
	}, nil
}

// buildInventory flattens inventory rows; for duplicate names the last row wins.
func buildInventory(items []domain.InventoryItem) domain.Inventory {
	inv := make(domain.Inventory, len(items))
	for _, item := range items {
		inv[item.Name] = max(item.Quantity, 0)
	}
	return inv
}

func copyDevices(devices []domain.Device) []domain.Device {
	out := make([]domain.Device, len(devices))
	copy(out, devices)
	return out
}

func copyClan(clan *domain.Clan) *domain.Clan {
	if clan == nil {
		return nil
	}
	c := *clan
	return &c
}
