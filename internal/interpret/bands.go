// Package interpret maps numeric planning results to the fixed labels and
// narratives shown next to them.
package interpret

import (
	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Band keys
const (
	BandGettingStarted = "getting_started"
	BandMomentum       = "building_momentum"
	BandHalfway        = "past_halfway"
	BandAlmostThere    = "almost_there"
	BandFree           = "financially_free"
)

// bands is ordered from the highest threshold down so the first match wins
var bands = []domain.Band{
	{Key: BandFree, Label: "Financially Free", MinPercent: 100,
		Description: "Your passive income covers your Freedom Number."},
	{Key: BandAlmostThere, Label: "Almost There", MinPercent: 75,
		Description: "Most of your lifestyle is already funded by passive income."},
	{Key: BandHalfway, Label: "Past Halfway", MinPercent: 50,
		Description: "Passive income covers at least half of what you need."},
	{Key: BandMomentum, Label: "Building Momentum", MinPercent: 25,
		Description: "A meaningful share of your needs is covered. Keep compounding."},
	{Key: BandGettingStarted, Label: "Getting Started", MinPercent: 0,
		Description: "Every dollar of passive income moves the needle from here."},
}

// Bands returns the band table in ascending order
func Bands() []domain.Band {
	out := make([]domain.Band, len(bands))
	for i := range bands {
		out[len(bands)-1-i] = bands[i]
	}
	return out
}

// BandFor returns the band a progress percentage falls into. Values below 0
// land in the lowest band, values at or above 100 in the highest.
func BandFor(progressPercent decimal.Decimal) domain.Band {
	for _, b := range bands {
		if progressPercent.GreaterThanOrEqual(decimal.NewFromInt(int64(b.MinPercent))) {
			return b
		}
	}
	return bands[len(bands)-1]
}
