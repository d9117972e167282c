package fedex

import (
	"math"
	"strings"
)

const cubicInchesPerCubicFoot = 12 * 12 * 12

// freightClass is a density bucket in lbs per cubic foot: [min, max).
type freightClass struct {
	class string
	min   float64
	max   float64
}

// freightClasses is scanned in order; the first matching bucket wins.
var freightClasses = []freightClass{
	{"50", 50, math.Inf(1)},
	{"55", 35, 50},
	{"60", 30, 35},
	{"65", 22.5, 30},
	{"70", 15, 22.5},
	{"77.5", 13.5, 15},
	{"85", 12, 13.5},
	{"92.5", 10.5, 12},
	{"100", 9, 10.5},
	{"110", 8, 9},
	{"125", 7, 8},
	{"150", 6, 7},
	{"175", 5, 6},
	{"200", 4, 5},
	{"250", 3, 4},
	{"300", 2, 3},
	{"400", 1, 2},
	{"500", math.Inf(-1), 1},
}

// FreightClass returns the freight class code of a package measured in
// inches and pounds, e.g. "CLASS_050" or "CLASS_077_5". Packages without
// volume get the lowest class, CLASS_500.
func FreightClass(length, width, height, weight float64) string {
	class := "500"

	volume := length * width * height / cubicInchesPerCubicFoot
	if volume > 0 {
		density := weight / volume
		for _, fc := range freightClasses {
			class = fc.class
			if density >= fc.min && density < fc.max {
				break
			}
		}
	}

	return formatFreightClass(class)
}

func formatFreightClass(class string) string {
	whole, fraction, hasFraction := strings.Cut(class, ".")
	if len(whole) < 3 {
		whole = strings.Repeat("0", 3-len(whole)) + whole
	}
	if hasFraction {
		return "CLASS_" + whole + "_" + fraction
	}
	return "CLASS_" + whole
}
