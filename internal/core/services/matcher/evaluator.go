package matcher

import (
	"time"

	"profile-matcher/internal/core/domain"
)

// Clause identifies one eligibility predicate, in evaluation order.
type Clause int

const (
	ClauseNone Clause = iota
	ClauseLevel
	ClauseCountry
	ClauseRequiredItems
	ClauseForbiddenItems
	ClauseWindow
	ClauseEnabled
)

func (c Clause) String() string {
	switch c {
	case ClauseNone:
		return "none"
	case ClauseLevel:
		return "level"
	case ClauseCountry:
		return "country"
	case ClauseRequiredItems:
		return "required_items"
	case ClauseForbiddenItems:
		return "forbidden_items"
	case ClauseWindow:
		return "window"
	case ClauseEnabled:
		return "enabled"
	default:
		return "unknown"
	}
}

type Result struct {
	// Active lists the matched campaign names in input order.
	Active []string
	// Errors holds one *domain.MalformedWindowError per campaign excluded for a bad window.
	Errors []error
}

// Evaluate tests the profile against every campaign independently.
// now must be captured once by the caller and is reused for the whole pass.
func Evaluate(profile *domain.Profile, campaigns []domain.Campaign, now time.Time) Result {
	res := Result{Active: make([]string, 0, len(campaigns))}

	for i := range campaigns {
		clause, err := Check(profile, &campaigns[i], now)
		if err != nil {
			res.Errors = append(res.Errors, err)
			continue
		}
		if clause == ClauseNone {
			res.Active = append(res.Active, campaigns[i].Name)
		}
	}

	return res
}

// MatchingCampaigns returns only the names of the campaigns the profile satisfies.
func MatchingCampaigns(profile *domain.Profile, campaigns []domain.Campaign, now time.Time) []string {
	return Evaluate(profile, campaigns, now).Active
}

// Check returns the first clause the profile fails, or ClauseNone when every clause passes.
// A non-nil error is always a *domain.MalformedWindowError and comes with ClauseWindow.
func Check(profile *domain.Profile, campaign *domain.Campaign, now time.Time) (Clause, error) {
	m := &campaign.Matchers

	if !m.Level.Contains(profile.Level) {
		return ClauseLevel, nil
	}

	// An empty allow-list admits no country.
	if !m.Has.Countries.Contains(profile.Country) {
		return ClauseCountry, nil
	}

	for item := range m.Has.Items {
		if profile.Inventory.Quantity(item) < 1 {
			return ClauseRequiredItems, nil
		}
	}

	for item := range m.DoesNotHave.Items {
		if profile.Inventory.Quantity(item) > 0 {
			return ClauseForbiddenItems, nil
		}
	}

	inWindow, err := withinWindow(campaign, now)
	if err != nil {
		return ClauseWindow, err
	}
	if !inWindow {
		return ClauseWindow, nil
	}

	if !campaign.Enabled {
		return ClauseEnabled, nil
	}

	return ClauseNone, nil
}

func withinWindow(campaign *domain.Campaign, now time.Time) (bool, error) {
	start, err := domain.ParseTimestamp(campaign.StartDate)
	if err != nil {
		return false, &domain.MalformedWindowError{Campaign: campaign.Name, Field: "start_date", Value: campaign.StartDate, Err: err}
	}
	end, err := domain.ParseTimestamp(campaign.EndDate)
	if err != nil {
		return false, &domain.MalformedWindowError{Campaign: campaign.Name, Field: "end_date", Value: campaign.EndDate, Err: err}
	}
	return !now.Before(start) && !now.After(end), nil
}
