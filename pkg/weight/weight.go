// Package weight converts store weights into the units carriers expect.
package weight

import (
	"math"
)

const (
	gramsPerOunce  = 28.35
	ouncesPerPound = 16

	// GramsPerPound is the store setting for shops that weigh in pounds.
	GramsPerPound = 453.6
	// GramsPerKilogram is the store setting for shops that weigh in kilograms.
	GramsPerKilogram = 1000
)

// Expanded is a store weight broken down into imperial units.
type Expanded struct {
	Plain      float64 // raw store value
	FullOunces float64 // whole ounces, rounded up
	FullPounds float64 // FullOunces in pounds, one decimal
	Pounds     int
	Ounces     int
}

// Converter expands raw store weights. GramsPerUnit is how many grams one
// store weight unit weighs.
type Converter struct {
	GramsPerUnit float64
}

// NewConverter returns a Converter for the given store unit, defaulting to pounds.
func NewConverter(gramsPerUnit float64) Converter {
	if gramsPerUnit <= 0 {
		gramsPerUnit = GramsPerPound
	}
	return Converter{GramsPerUnit: gramsPerUnit}
}

// Expand converts raw into ounces and pounds. Ounces are rounded to three
// decimals first so float noise never adds an extra ounce.
func (c Converter) Expand(raw float64) Expanded {
	ounces := math.Round(raw*c.GramsPerUnit/gramsPerOunce*1000) / 1000
	fullOunces := math.Ceil(ounces)
	pounds := math.Floor(fullOunces / ouncesPerPound)

	return Expanded{
		Plain:      raw,
		FullOunces: fullOunces,
		FullPounds: math.Round(fullOunces/ouncesPerPound*10) / 10,
		Pounds:     int(pounds),
		Ounces:     int(fullOunces - pounds*ouncesPerPound),
	}
}

// ToPounds returns the full pound weight of raw.
func (c Converter) ToPounds(raw float64) float64 {
	return c.Expand(raw).FullPounds
}
