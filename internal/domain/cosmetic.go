// Package domain contains the core entities of the Cosme Zukan catalog.
package domain

import (
	"math"
	"time"
)

// MaxPhotos is the cap on photo payloads per entity.
// Extra photos are truncated, never rejected with an error.
const MaxPhotos = 5

// PersonalColor is the three-way skin-tone-compatibility classification.
type PersonalColor string

// Personal color classes.
const (
	PersonalColorBlue    PersonalColor = "blue"
	PersonalColorYellow  PersonalColor = "yellow"
	PersonalColorNeutral PersonalColor = "neutral"
)

// Valid reports whether p is one of the three known classes.
func (p PersonalColor) Valid() bool {
	return p == PersonalColorBlue || p == PersonalColorYellow || p == PersonalColorNeutral
}

// OrNeutral returns p if valid, otherwise neutral.
func (p PersonalColor) OrNeutral() PersonalColor {
	if p.Valid() {
		return p
	}
	return PersonalColorNeutral
}

// DateLayout is the calendar-date format used for purchase and expiry dates.
const DateLayout = "2006-01-02"

// Cosmetic represents a single cosmetics item in the catalog.
// Brand, category, and color are free text resolved against alias tables at
// input time; storage does not enforce canonical values.
type Cosmetic struct {
	ID              string        `json:"id"`
	Brand           string        `json:"brand"`
	Name            string        `json:"name"`
	Category        string        `json:"category"`
	Color           string        `json:"color"`
	ColorNumber     string        `json:"colorNumber,omitempty"`
	RemainingAmount string        `json:"remainingAmount,omitempty"`
	Price           *float64      `json:"price,omitempty"`
	PurchaseDate    string        `json:"purchaseDate,omitempty"` // YYYY-MM-DD
	ExpiryDate      string        `json:"expiryDate,omitempty"`   // YYYY-MM-DD
	PurchaseCount   int           `json:"purchaseCount,omitempty"`
	PersonalColor   PersonalColor `json:"personalColor"`
	Photo           []string      `json:"photo,omitempty"` // data-URL payloads, max MaxPhotos
	Memo            string        `json:"memo,omitempty"`
}

// Clone returns a deep copy.
func (c Cosmetic) Clone() Cosmetic {
	out := c
	if c.Price != nil {
		p := *c.Price
		out.Price = &p
	}
	if c.Photo != nil {
		out.Photo = append([]string(nil), c.Photo...)
	}
	return out
}

// ExpiryDaysRemaining returns the number of days from now until the expiry
// date. Negative values mean the item is already expired. The second return
// is false when no expiry date is set or it cannot be parsed.
func (c Cosmetic) ExpiryDaysRemaining(now time.Time) (int, bool) {
	if c.ExpiryDate == "" {
		return 0, false
	}
	expiry, err := time.Parse(DateLayout, c.ExpiryDate)
	if err != nil {
		return 0, false
	}
	days := math.Ceil(expiry.Sub(now).Hours() / 24)
	return int(days), true
}
