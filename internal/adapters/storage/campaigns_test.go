package storage

import (
	"testing"
)

func intPtr(v int) *int { return &v }

func TestAssembleCampaigns(t *testing.T) {
	rows := []CampaignRow{
		{Name: "alpha", Game: "g", Priority: 1.5, StartDate: "s", EndDate: "e", Enabled: true, LevelMin: intPtr(1), LevelMax: intPtr(3)},
		{Name: "beta", LevelMin: intPtr(0), LevelMax: intPtr(10)},
	}
	countries := []MatcherValue{
		{CampaignName: "alpha", Value: "US"},
		{CampaignName: "alpha", Value: "CA"},
		{CampaignName: "ghost", Value: "RO"},
	}
	has := []MatcherValue{{CampaignName: "alpha", Value: "item_1"}}
	doesNotHave := []MatcherValue{
		{CampaignName: "alpha", Value: "item_4"},
		{CampaignName: "beta", Value: "item_9"},
	}

	got := AssembleCampaigns(rows, countries, has, doesNotHave)
	if len(got) != 2 {
		t.Fatalf("expected 2 campaigns, got %d", len(got))
	}

	alpha := got[0]
	if alpha.Name != "alpha" || alpha.Game != "g" || alpha.Priority != 1.5 || !alpha.Enabled {
		t.Errorf("unexpected alpha: %+v", alpha)
	}
	if alpha.Matchers.Level.Min != 1 || alpha.Matchers.Level.Max != 3 {
		t.Errorf("unexpected level range: %+v", alpha.Matchers.Level)
	}
	if alpha.Matchers.Has.Countries.Len() != 2 || !alpha.Matchers.Has.Countries.Contains("CA") {
		t.Errorf("unexpected countries: %v", alpha.Matchers.Has.Countries)
	}
	if !alpha.Matchers.Has.Items.Contains("item_1") || !alpha.Matchers.DoesNotHave.Items.Contains("item_4") {
		t.Errorf("unexpected items: %+v", alpha.Matchers)
	}

	beta := got[1]
	if beta.Matchers.Has.Countries == nil || beta.Matchers.Has.Countries.Len() != 0 {
		t.Errorf("beta should have an empty, non-nil allow-list: %v", beta.Matchers.Has.Countries)
	}
	if !beta.Matchers.DoesNotHave.Items.Contains("item_9") {
		t.Errorf("unexpected beta forbidden items: %v", beta.Matchers.DoesNotHave.Items)
	}
}

func TestAssembleCampaigns_SkipsMissingLevelBounds(t *testing.T) {
	rows := []CampaignRow{
		{Name: "no-min", LevelMax: intPtr(3)},
		{Name: "no-max", LevelMin: intPtr(1)},
		{Name: "ok", LevelMin: intPtr(1), LevelMax: intPtr(3)},
	}
	countries := []MatcherValue{
		{CampaignName: "no-min", Value: "US"},
		{CampaignName: "ok", Value: "US"},
	}

	got := AssembleCampaigns(rows, countries, nil, nil)
	if len(got) != 1 || got[0].Name != "ok" {
		t.Fatalf("expected only ok, got %+v", got)
	}
	if !got[0].Matchers.Has.Countries.Contains("US") {
		t.Errorf("matcher rows attached to the wrong campaign: %+v", got[0].Matchers)
	}
}

func TestAssembleCampaigns_Empty(t *testing.T) {
	got := AssembleCampaigns(nil, nil, nil, nil)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}
