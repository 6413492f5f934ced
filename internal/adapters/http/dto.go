package http

import (
	"profile-matcher/internal/core/domain"
)

type clientConfigResponse struct {
	PlayerID          string          `json:"player_id"`
	Credential        string          `json:"credential"`
	Created           string          `json:"created"`
	Modified          string          `json:"modified"`
	LastSession       string          `json:"last_session"`
	TotalSpent        int             `json:"total_spent"`
	TotalRefund       int             `json:"total_refund"`
	TotalTransactions int             `json:"total_transactions"`
	LastPurchase      string          `json:"last_purchase"`
	ActiveCampaigns   []string        `json:"active_campaigns"`
	Devices           []deviceDTO     `json:"devices"`
	Level             int             `json:"level"`
	XP                int             `json:"xp"`
	TotalPlaytime     int             `json:"total_playtime"`
	Country           string          `json:"country"`
	Language          string          `json:"language"`
	Birthdate         string          `json:"birthdate"`
	Gender            string          `json:"gender"`
	Inventory         []inventoryItem `json:"inventory"`
	Clan              *clanDTO        `json:"clan"`
	CustomField       string          `json:"_customfield"`
}

type deviceDTO struct {
	ID       int64  `json:"id"`
	Model    string `json:"model"`
	Carrier  string `json:"carrier"`
	Firmware string `json:"firmware"`
}

type inventoryItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type clanDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func toClientConfigResponse(p *domain.Profile, active []string) clientConfigResponse {
	resp := clientConfigResponse{
		PlayerID:          p.PlayerID,
		Credential:        p.Credential,
		Created:           p.Created,
		Modified:          p.Modified,
		LastSession:       p.LastSession,
		TotalSpent:        p.TotalSpent,
		TotalRefund:       p.TotalRefund,
		TotalTransactions: p.TotalTransactions,
		LastPurchase:      p.LastPurchase,
		ActiveCampaigns:   active,
		Devices:           make([]deviceDTO, 0, len(p.Devices)),
		Level:             p.Level,
		XP:                p.XP,
		TotalPlaytime:     p.TotalPlaytime,
		Country:           p.Country,
		Language:          p.Language,
		Birthdate:         p.Birthdate,
		Gender:            p.Gender,
		Inventory:         make([]inventoryItem, 0, len(p.Inventory)),
		CustomField:       p.CustomField,
	}
	if resp.ActiveCampaigns == nil {
		resp.ActiveCampaigns = []string{}
	}

	for _, d := range p.Devices {
		resp.Devices = append(resp.Devices, deviceDTO{
			ID:       d.ID,
			Model:    d.Model,
			Carrier:  d.Carrier,
			Firmware: d.Firmware,
		})
	}

	for _, name := range p.Inventory.Names() {
		resp.Inventory = append(resp.Inventory, inventoryItem{Name: name, Quantity: p.Inventory[name]})
	}

	if p.Clan != nil {
		resp.Clan = &clanDTO{ID: p.Clan.ID, Name: p.Clan.Name}
	}

	return resp
}
