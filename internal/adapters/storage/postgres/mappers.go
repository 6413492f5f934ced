package postgres

import (
	"profile-matcher/internal/adapters/storage"
	"profile-matcher/internal/adapters/storage/postgres/db"
	"profile-matcher/internal/core/domain"

	"github.com/jackc/pgx/v5/pgtype"
)

func toDomainPlayer(row db.GetPlayerRow, devices []db.Device, inventory []db.InventoryItem) *domain.Player {
	p := &domain.Player{
		PlayerID:          row.PlayerID,
		Credential:        row.Credential.String,
		Created:           row.Created.String,
		Modified:          row.Modified.String,
		LastSession:       row.LastSession.String,
		TotalSpent:        int(row.TotalSpent.Int32),
		TotalRefund:       int(row.TotalRefund.Int32),
		TotalTransactions: int(row.TotalTransactions.Int32),
		LastPurchase:      row.LastPurchase.String,
		Level:             int(row.Level.Int32),
		XP:                int(row.Xp.Int32),
		TotalPlaytime:     int(row.TotalPlaytime.Int32),
		Country:           row.Country.String,
		Language:          row.Language.String,
		Birthdate:         row.Birthdate.String,
		Gender:            row.Gender.String,
		CustomField:       row.CustomField.String,
		Devices:           make([]domain.Device, 0, len(devices)),
		Inventory:         make([]domain.InventoryItem, 0, len(inventory)),
	}

	if row.ClanID.Valid {
		p.Clan = &domain.Clan{ID: row.ClanID.String, Name: row.ClanName.String}
	}

	for _, d := range devices {
		p.Devices = append(p.Devices, domain.Device{
			ID:       d.ID,
			Model:    d.Model.String,
			Carrier:  d.Carrier.String,
			Firmware: d.Firmware.String,
		})
	}

	for _, item := range inventory {
		p.Inventory = append(p.Inventory, domain.InventoryItem{
			Name:     item.Name,
			Quantity: int(item.Quantity),
		})
	}

	return p
}

func toInsertPlayerParams(p *domain.Player, clanID pgtype.Text) db.InsertPlayerParams {
	return db.InsertPlayerParams{
		PlayerID:          p.PlayerID,
		Credential:        p.Credential,
		Created:           p.Created,
		Modified:          p.Modified,
		LastSession:       p.LastSession,
		TotalSpent:        int32(p.TotalSpent),
		TotalRefund:       int32(p.TotalRefund),
		TotalTransactions: int32(p.TotalTransactions),
		LastPurchase:      p.LastPurchase,
		Level:             int32(p.Level),
		Xp:                int32(p.XP),
		TotalPlaytime:     int32(p.TotalPlaytime),
		Country:           p.Country,
		Language:          p.Language,
		Birthdate:         p.Birthdate,
		Gender:            p.Gender,
		CustomField:       p.CustomField,
		ClanID:            clanID,
	}
}

func toCampaignRow(row db.Campaign) storage.CampaignRow {
	return storage.CampaignRow{
		Name:        row.Name,
		Game:        row.Game.String,
		Priority:    row.Priority.Float64,
		StartDate:   row.StartDate.String,
		EndDate:     row.EndDate.String,
		Enabled:     row.Enabled,
		LastUpdated: row.LastUpdated.String,
		LevelMin:    int4Ptr(row.MatcherLevelMin),
		LevelMax:    int4Ptr(row.MatcherLevelMax),
	}
}

func int4Ptr(v pgtype.Int4) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int32)
	return &i
}

func toMatcherValues(rows []db.CampaignValue) []storage.MatcherValue {
	out := make([]storage.MatcherValue, 0, len(rows))
	for _, r := range rows {
		out = append(out, storage.MatcherValue{CampaignName: r.CampaignName, Value: r.Value})
	}
	return out
}
