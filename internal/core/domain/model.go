package domain

import "sort"

// Player is the stored player aggregate as the repositories return it.
type Player struct {
	PlayerID          string
	Credential        string
	Created           string
	Modified          string
	LastSession       string
	TotalSpent        int
	TotalRefund       int
	TotalTransactions int
	LastPurchase      string
	Level             int
	XP                int
	TotalPlaytime     int
	Country           string
	Language          string
	Birthdate         string
	Gender            string
	CustomField       string
	Devices           []Device
	Inventory         []InventoryItem
	Clan              *Clan
}

type Device struct {
	ID       int64
	Model    string
	Carrier  string
	Firmware string
}

type InventoryItem struct {
	Name     string
	Quantity int
}

type Clan struct {
	ID   string
	Name string
}

// Profile is the canonical, read-only view of a player used for matching.
type Profile struct {
	PlayerID          string
	Credential        string
	Created           string
	Modified          string
	LastSession       string
	TotalSpent        int
	TotalRefund       int
	TotalTransactions int
	LastPurchase      string
	Level             int
	XP                int
	TotalPlaytime     int
	Country           string
	Language          string
	Birthdate         string
	Gender            string
	CustomField       string
	Devices           []Device
	Inventory         Inventory
	Clan              *Clan
}

// Inventory maps item names to quantities. Missing items have quantity 0.
type Inventory map[string]int

func (inv Inventory) Quantity(name string) int {
	return inv[name]
}

// Names returns the item names in ascending order.
func (inv Inventory) Names() []string {
	names := make([]string, 0, len(inv))
	for name := range inv {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type Campaign struct {
	Name        string
	Game        string
	Priority    float64
	Matchers    Matchers
	StartDate   string
	EndDate     string
	Enabled     bool
	LastUpdated string
}

type Matchers struct {
	Level       LevelRange
	Has         HasMatcher
	DoesNotHave DoesNotHaveMatcher
}

// LevelRange bounds are both inclusive.
type LevelRange struct {
	Min int
	Max int
}

func (r LevelRange) Contains(level int) bool {
	return r.Min <= level && level <= r.Max
}

type HasMatcher struct {
	Countries Set
	Items     Set
}

type DoesNotHaveMatcher struct {
	Items Set
}
