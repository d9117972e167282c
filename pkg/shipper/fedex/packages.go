package fedex

import (
	"github.com/tournevent/ratequote/pkg/shipper"
)

// LineItemMode selects the shape of the package line items.
type LineItemMode int

const (
	// ModeStandard emits RequestedPackageLineItems.
	ModeStandard LineItemMode = iota
	// ModeFreight emits freight LineItems carrying a freight class.
	ModeFreight
)

const (
	unitsPounds = "LB"
	unitsInches = "IN"
)

// WeightConverter converts raw store weights into pounds.
type WeightConverter interface {
	ToPounds(raw float64) float64
}

// PackageItems is the package part of a RequestedShipment.
type PackageItems struct {
	PackageCount *int
	Requested    []RequestedPackageLineItem
	Freight      []FreightLineItem
}

// apply copies the items onto rs.
func (p PackageItems) apply(rs *RequestedShipment) {
	rs.PackageCount = p.PackageCount
	rs.RequestedPackageLineItems = p.Requested
	rs.LineItems = p.Freight
}

// AssemblePackages turns the shipment's packages into carrier line items,
// one per package, in order. The aggregate form (no explicit packages)
// yields a single item boxed with the default dimensions.
//
// In standard mode PackageCount is the number of explicit packages, which
// is 0 for the aggregate form even though one line item is emitted.
func AssemblePackages(info shipper.PackageInfo, defaults shipper.Dimensions, mode LineItemMode, conv WeightConverter) PackageItems {
	packages := info.Packages
	if info.IsAggregate() {
		packages = []shipper.Package{{
			Weight: info.Weight,
			Cost:   info.Cost,
			Box:    defaults,
		}}
	}

	var items PackageItems
	if mode == ModeStandard {
		count := len(info.Packages)
		items.PackageCount = &count
	}

	for i, pkg := range packages {
		dims := Dimensions{
			Length: orDefault(pkg.Box.Length, defaults.Length),
			Width:  orDefault(pkg.Box.Width, defaults.Width),
			Height: orDefault(pkg.Box.Height, defaults.Height),
			Units:  unitsInches,
		}
		w := Weight{Units: unitsPounds, Value: conv.ToPounds(pkg.Weight)}

		switch mode {
		case ModeFreight:
			items.Freight = append(items.Freight, FreightLineItem{
				FreightClass: FreightClass(dims.Length, dims.Width, dims.Height, w.Value),
				Weight:       w,
				Dimensions:   dims,
			})
		default:
			items.Requested = append(items.Requested, RequestedPackageLineItem{
				SequenceNumber:    i + 1,
				GroupPackageCount: 1,
				Weight:            w,
				Dimensions:        dims,
			})
		}
	}

	return items
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
