package pricing

import (
	"math"
	"testing"

	"murilov3d/internal/domain/entities"
)

const eps = 1e-6

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-3
}

func baseInput() Input {
	return Input{
		Equipment: &entities.Equipment{Name: "Ender 3", MarketValue: 700, Watts: 250, DeprecYears: 3},
		Material:  &entities.Material{Type: entities.MaterialTypeFilamento, Name: "PLA", TotalCost: 85, TotalQty: 1000},
		Person:    &entities.PersonRate{Name: "Murilo", RatePerHour: 66.67},

		Qty:          1,
		PrintHours:   10,
		PieceGrams:   50,
		SupportGrams: 10,

		ResearchHours: 1,
		ModelingHours: 2,
		WashHours:     0.5,

		EnergyCostPerKwh: 1.34,
		OfficeMonthly:    0,
	}
}

func TestCompute_MachineHourCost(t *testing.T) {
	// deprecHours = 3*365*8 = 8760
	// deprecPerHour = 700/8760, maintenancePerHour = 105/8760
	// energyPerHour = 0.25*1.34 = 0.335
	in := baseInput()
	b := Compute(in)

	if !approx(b.DeprecPerHour, 700.0/8760.0) {
		t.Errorf("DeprecPerHour = %v, want %v", b.DeprecPerHour, 700.0/8760.0)
	}
	if !approx(b.MaintenancePerHour, 105.0/8760.0) {
		t.Errorf("MaintenancePerHour = %v, want %v", b.MaintenancePerHour, 105.0/8760.0)
	}
	if !approx(b.EnergyPerHour, 0.335) {
		t.Errorf("EnergyPerHour = %v, want 0.335", b.EnergyPerHour)
	}
	if !approx(b.EquipCost, 4.274) {
		t.Errorf("EquipCost = %v, want ~4.274", b.EquipCost)
	}
}

func TestCompute_MaterialCost(t *testing.T) {
	// 85/1000 per gram, 60 g total => 5.10
	b := Compute(baseInput())
	if !approx(b.MaterialCost, 5.10) {
		t.Errorf("MaterialCost = %v, want 5.10", b.MaterialCost)
	}
}

func TestCompute_NoSelections(t *testing.T) {
	in := baseInput()
	in.Equipment = nil
	in.Material = nil
	in.Person = nil
	b := Compute(in)

	if b.EquipCost != 0 || b.MaterialCost != 0 || b.LabourCost != 0 {
		t.Errorf("expected zero equip/material/labour, got %v/%v/%v", b.EquipCost, b.MaterialCost, b.LabourCost)
	}
}

func TestCompute_DivisionGuards(t *testing.T) {
	in := baseInput()
	in.Equipment.DeprecYears = 0
	in.Material.TotalQty = 0
	b := Compute(in)

	if b.DeprecPerHour != 0 || b.MaintenancePerHour != 0 {
		t.Errorf("expected zero deprec/maintenance with deprecYears=0, got %v/%v", b.DeprecPerHour, b.MaintenancePerHour)
	}
	if b.MaterialCost != 0 {
		t.Errorf("expected zero material cost with totalQty=0, got %v", b.MaterialCost)
	}
	if math.IsNaN(b.FinalPrice) || math.IsInf(b.FinalPrice, 0) {
		t.Errorf("final price must stay finite, got %v", b.FinalPrice)
	}
}

func TestCompute_QtyFloor(t *testing.T) {
	for _, qty := range []float64{0, -3} {
		in := baseInput()
		in.Qty = qty
		b := Compute(in)
		if b.Qty != 1 {
			t.Errorf("qty %v: effective qty = %v, want 1", qty, b.Qty)
		}
		if math.Abs(b.BatchSubtotal-b.UnitSubtotal) > eps {
			t.Errorf("qty %v: batch %v != unit %v", qty, b.BatchSubtotal, b.UnitSubtotal)
		}
	}
}

func TestCompute_BatchIsUnitTimesQty(t *testing.T) {
	for _, qty := range []float64{1, 2, 7, 50} {
		in := baseInput()
		in.Qty = qty
		b := Compute(in)
		if math.Abs(b.BatchSubtotal-b.UnitSubtotal*qty) > eps {
			t.Errorf("qty %v: batch = %v, want unit*qty = %v", qty, b.BatchSubtotal, b.UnitSubtotal*qty)
		}
	}
}

func TestCompute_PrintHoursExcludedFromLabour(t *testing.T) {
	in := baseInput()
	a := Compute(in)
	in.PrintHours = 100
	c := Compute(in)

	if a.LabourCost != c.LabourCost {
		t.Errorf("labour changed with print hours: %v -> %v", a.LabourCost, c.LabourCost)
	}
	if a.OfficeCost != c.OfficeCost {
		t.Errorf("office changed with print hours: %v -> %v", a.OfficeCost, c.OfficeCost)
	}
	if c.EquipCost <= a.EquipCost {
		t.Errorf("equip cost should grow with print hours: %v -> %v", a.EquipCost, c.EquipCost)
	}
}

func TestCompute_ActiveLaborHours(t *testing.T) {
	in := baseInput()
	in.OfficeMonthly = 2400 // 2400/(30*8) = 10/h
	b := Compute(in)

	if !approx(b.ActiveLaborHours, 3.5) {
		t.Errorf("ActiveLaborHours = %v, want 3.5", b.ActiveLaborHours)
	}
	if !approx(b.LabourCost, 66.67*3.5) {
		t.Errorf("LabourCost = %v, want %v", b.LabourCost, 66.67*3.5)
	}
	if !approx(b.OfficeCost, 35) {
		t.Errorf("OfficeCost = %v, want 35", b.OfficeCost)
	}
}

func TestCompute_CommercialLayer(t *testing.T) {
	in := baseInput()
	in.Qty = 2
	in.Freight = 20
	in.MarginPct = 50
	in.TaxPct = 10
	in.Outros = []entities.LineItem{
		{Category: "Pintura", Quantity: 2, UnitVal: 15},
		{Category: "Embalagem", Quantity: 1, UnitVal: 5},
	}
	b := Compute(in)

	if !approx(b.OutrosTotal, 35) {
		t.Errorf("OutrosTotal = %v, want 35", b.OutrosTotal)
	}
	wantProfit := b.BatchSubtotal * 0.5
	if !approx(b.Profit, wantProfit) {
		t.Errorf("Profit = %v, want %v", b.Profit, wantProfit)
	}
	base := b.BatchSubtotal + b.Profit + 20 + 35
	if !approx(b.Taxes, base*0.1) {
		t.Errorf("Taxes = %v, want %v", b.Taxes, base*0.1)
	}
	if !approx(b.FinalPrice, base*1.1) {
		t.Errorf("FinalPrice = %v, want %v", b.FinalPrice, base*1.1)
	}
}

func TestCompute_MonotonicSurchargeLayering(t *testing.T) {
	// With non-negative margin, tax, freight and outros the final price can
	// never drop below the batch subtotal.
	cases := []struct {
		name           string
		margin, tax    float64
		freight        float64
		outros         []entities.LineItem
	}{
		{name: "all zero"},
		{name: "margin only", margin: 30},
		{name: "tax only", tax: 12},
		{name: "freight only", freight: 45},
		{name: "everything", margin: 25, tax: 8, freight: 30, outros: []entities.LineItem{{Quantity: 3, UnitVal: 9.9}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := baseInput()
			in.Qty = 3
			in.MarginPct = tc.margin
			in.TaxPct = tc.tax
			in.Freight = tc.freight
			in.Outros = tc.outros
			b := Compute(in)
			if b.FinalPrice < b.BatchSubtotal-eps {
				t.Errorf("final %v < batch subtotal %v", b.FinalPrice, b.BatchSubtotal)
			}
		})
	}
}

func TestCompute_NegativeInputsClampToZero(t *testing.T) {
	in := baseInput()
	in.PrintHours = -5
	in.PieceGrams = -10
	in.SupportGrams = -1
	in.Freight = -99
	b := Compute(in)

	if b.EquipCost != 0 {
		t.Errorf("EquipCost = %v, want 0", b.EquipCost)
	}
	if b.MaterialCost != 0 {
		t.Errorf("MaterialCost = %v, want 0", b.MaterialCost)
	}
	if b.Freight != 0 {
		t.Errorf("Freight = %v, want 0", b.Freight)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	in := baseInput()
	in.Qty = 4
	in.MarginPct = 40
	in.TaxPct = 6
	a := Compute(in)
	c := Compute(in)
	if a != c {
		t.Errorf("same input produced different breakdowns:\n%+v\n%+v", a, c)
	}
}

func TestBreakdown_Costs(t *testing.T) {
	in := baseInput()
	in.Qty = 2
	in.Freight = 10
	in.MarginPct = 20
	in.TaxPct = 5
	b := Compute(in)
	c := b.Costs()

	if c.Equipment != b.EquipCost || c.Material != b.MaterialCost ||
		c.Labour != b.LabourCost || c.Office != b.OfficeCost ||
		c.UnitSubtotal != b.UnitSubtotal || c.BatchSubtotal != b.BatchSubtotal ||
		c.Freight != b.Freight || c.Outros != b.OutrosTotal ||
		c.Profit != b.Profit || c.Taxes != b.Taxes || c.FinalPrice != b.FinalPrice {
		t.Errorf("snapshot does not match breakdown:\n%+v\n%+v", c, b)
	}
}
