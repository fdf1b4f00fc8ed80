// Package pricing computes the cost breakdown for one print job. It is a
// pure function over the cost catalog and the job inputs; recomputing with
// the same inputs always yields the same breakdown.
package pricing

import "murilov3d/internal/domain/entities"

// Amortization model for the machine-hour cost: the printer pays itself back
// over its depreciation life assuming 8 productive hours per day, with a flat
// 15% of market value reserved for maintenance over the same life. Office
// overhead dilutes over a 30-day month at the same 8 h/day.
const (
	productiveHoursPerDay = 8
	daysPerYear           = 365
	maintenanceRate       = 0.15
	officeDaysPerMonth    = 30
)

// Input is everything the engine needs for one computation. Equipment,
// Material and Person are optional; a nil selection zeroes the matching cost
// term instead of failing.
type Input struct {
	Equipment *entities.Equipment
	Material  *entities.Material
	Person    *entities.PersonRate

	Qty          float64
	PrintHours   float64
	PieceGrams   float64
	SupportGrams float64

	ResearchHours float64
	ModelingHours float64
	WashHours     float64

	Freight   float64
	MarginPct float64
	TaxPct    float64

	Outros []entities.LineItem

	EnergyCostPerKwh float64
	OfficeMonthly    float64
}

// Breakdown is the full computation result, including the per-hour
// intermediates. Every field is frozen into the quote record on save.
type Breakdown struct {
	DeprecPerHour      float64 `json:"deprecPerHour"`
	MaintenancePerHour float64 `json:"maintenancePerHour"`
	EnergyPerHour      float64 `json:"energyPerHour"`
	EquipCostPerHour   float64 `json:"equipCostPerHour"`

	EquipCost    float64 `json:"equipCost"`
	MaterialCost float64 `json:"materialCost"`
	LabourCost   float64 `json:"labourCost"`
	OfficeCost   float64 `json:"officeCost"`

	UnitSubtotal  float64 `json:"unitSubtotal"`
	BatchSubtotal float64 `json:"batchSubtotal"`

	Qty              float64 `json:"qty"`
	ActiveLaborHours float64 `json:"activeLaborHours"`

	Freight     float64 `json:"freight"`
	OutrosTotal float64 `json:"outrosTotal"`
	Profit      float64 `json:"profit"`
	Taxes       float64 `json:"taxes"`
	FinalPrice  float64 `json:"finalPrice"`
}

// Compute prices one job.
//
// Numeric policy: negative inputs are clamped to zero, qty is floored to 1,
// and divisions guard against zero denominators (the term becomes 0, never
// NaN or an error).
func Compute(in Input) Breakdown {
	qty := in.Qty
	if qty < 1 {
		qty = 1
	}

	var b Breakdown
	b.Qty = qty

	printHours := clampNonNegative(in.PrintHours)

	// 1. Machine-hour cost: depreciation + maintenance reserve + energy.
	if eq := in.Equipment; eq != nil {
		deprecHours := clampNonNegative(eq.DeprecYears) * daysPerYear * productiveHoursPerDay
		if deprecHours > 0 {
			b.DeprecPerHour = clampNonNegative(eq.MarketValue) / deprecHours
			b.MaintenancePerHour = clampNonNegative(eq.MarketValue) * maintenanceRate / deprecHours
		}
		b.EnergyPerHour = clampNonNegative(eq.Watts) / 1000 * clampNonNegative(in.EnergyCostPerKwh)
		b.EquipCostPerHour = b.DeprecPerHour + b.MaintenancePerHour + b.EnergyPerHour
	}
	b.EquipCost = b.EquipCostPerHour * printHours

	// 2. Material cost by mass (grams of piece + supports).
	var costPerGram float64
	if mat := in.Material; mat != nil && mat.TotalQty > 0 {
		costPerGram = clampNonNegative(mat.TotalCost) / mat.TotalQty
	}
	b.MaterialCost = (clampNonNegative(in.PieceGrams) + clampNonNegative(in.SupportGrams)) * costPerGram

	// 3. Labour counts only active hours; the operator is not working while
	// the printer runs unattended.
	b.ActiveLaborHours = clampNonNegative(in.ResearchHours) + clampNonNegative(in.ModelingHours) + clampNonNegative(in.WashHours)
	if p := in.Person; p != nil {
		b.LabourCost = clampNonNegative(p.RatePerHour) * b.ActiveLaborHours
	}

	// 4. Office overhead dilutes over the same active hours.
	officeHourly := clampNonNegative(in.OfficeMonthly) / (officeDaysPerMonth * productiveHoursPerDay)
	b.OfficeCost = officeHourly * b.ActiveLaborHours

	// 5. Per-unit and batch subtotals.
	b.UnitSubtotal = b.EquipCost + b.MaterialCost + b.LabourCost + b.OfficeCost
	b.BatchSubtotal = b.UnitSubtotal * qty

	// 6. Ad-hoc line items.
	for _, it := range in.Outros {
		b.OutrosTotal += clampNonNegative(it.UnitVal) * clampNonNegative(it.Quantity)
	}

	// 7. Commercial layer: margin on the batch, then freight and outros,
	// then taxes on everything.
	b.Freight = clampNonNegative(in.Freight)
	b.Profit = b.BatchSubtotal * in.MarginPct / 100
	base := b.BatchSubtotal + b.Profit + b.Freight + b.OutrosTotal
	b.Taxes = base * in.TaxPct / 100
	b.FinalPrice = base + b.Taxes

	return b
}

// Costs projects the breakdown into the snapshot persisted with a quote.
func (b Breakdown) Costs() entities.CostBreakdown {
	return entities.CostBreakdown{
		Equipment:     b.EquipCost,
		Material:      b.MaterialCost,
		Labour:        b.LabourCost,
		Office:        b.OfficeCost,
		UnitSubtotal:  b.UnitSubtotal,
		BatchSubtotal: b.BatchSubtotal,
		Freight:       b.Freight,
		Outros:        b.OutrosTotal,
		Profit:        b.Profit,
		Taxes:         b.Taxes,
		FinalPrice:    b.FinalPrice,
	}
}

func clampNonNegative(v float64) float64 {
	if v < 0 || v != v { // v != v filters NaN from unparsed inputs
		return 0
	}
	return v
}
