package request

import (
	"murilov3d/internal/domain/entities"
	"murilov3d/internal/usecase"
)

// Catalog patch payloads use pointer fields so that absent keys leave the
// stored value untouched while explicit zeroes still apply.

type PersonPatchRequest struct {
	Name        *string  `json:"name"`
	RatePerHour *float64 `json:"ratePerHour"`
}

func (r PersonPatchRequest) ToPatch() usecase.PersonPatch {
	return usecase.PersonPatch{Name: r.Name, RatePerHour: r.RatePerHour}
}

type EquipmentPatchRequest struct {
	Name        *string  `json:"name"`
	MarketValue *float64 `json:"marketValue"`
	Watts       *float64 `json:"watts"`
	DeprecYears *float64 `json:"deprecYears"`
}

func (r EquipmentPatchRequest) ToPatch() usecase.EquipmentPatch {
	return usecase.EquipmentPatch{
		Name:        r.Name,
		MarketValue: r.MarketValue,
		Watts:       r.Watts,
		DeprecYears: r.DeprecYears,
	}
}

type MaterialPatchRequest struct {
	Type      *string  `json:"type"`
	Name      *string  `json:"name"`
	TotalCost *float64 `json:"totalCost"`
	TotalQty  *float64 `json:"totalQty"`
}

func (r MaterialPatchRequest) ToPatch() usecase.MaterialPatch {
	patch := usecase.MaterialPatch{
		Name:      r.Name,
		TotalCost: r.TotalCost,
		TotalQty:  r.TotalQty,
	}
	if r.Type != nil {
		t := entities.MaterialType(*r.Type)
		patch.Type = &t
	}
	return patch
}

type ConfigRequest struct {
	EnergyCostPerKwh *float64 `json:"energyCostPerKwh"`
	OfficeMonthly    *float64 `json:"officeMonthly"`
}

func (r ConfigRequest) ToPatch() usecase.ConfigPatch {
	return usecase.ConfigPatch{
		EnergyCostPerKwh: r.EnergyCostPerKwh,
		OfficeMonthly:    r.OfficeMonthly,
	}
}
