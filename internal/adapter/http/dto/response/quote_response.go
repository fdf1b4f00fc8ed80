package response

import (
	"time"

	"murilov3d/internal/domain/entities"
	"murilov3d/internal/domain/pricing"
	"murilov3d/internal/usecase"
)

type QuoteResponse struct {
	ID         string                 `json:"id"`
	CreatedAt  time.Time              `json:"createdAt"`
	UpdatedAt  *time.Time             `json:"updatedAt,omitempty"`
	Status     string                 `json:"status"`
	Client     entities.Client        `json:"client"`
	Project    string                 `json:"project"`
	Production entities.Production    `json:"production"`
	Time       entities.TimeBreakdown `json:"time"`
	Commercial entities.Commercial    `json:"commercial"`
	Costs      entities.CostBreakdown `json:"costs"`
	Personnel  string                 `json:"personnel,omitempty"`
	Outros     []entities.LineItem    `json:"outros"`
	Notes      string                 `json:"notes,omitempty"`
}

func FromQuote(q entities.QuoteRecord) QuoteResponse {
	outros := q.Outros
	if outros == nil {
		outros = []entities.LineItem{}
	}
	return QuoteResponse{
		ID:         q.ID,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
		Status:     string(q.Status),
		Client:     q.Client,
		Project:    q.Project,
		Production: q.Production,
		Time:       q.Time,
		Commercial: q.Commercial,
		Costs:      q.Costs,
		Personnel:  q.Personnel,
		Outros:     outros,
		Notes:      q.Notes,
	}
}

func FromQuoteList(qs []entities.QuoteRecord) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}

// BreakdownResponse exposes the full pricing computation, per-hour
// intermediates included, so the form can render every line live.
type BreakdownResponse struct {
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

func FromBreakdown(b pricing.Breakdown) BreakdownResponse {
	return BreakdownResponse{
		DeprecPerHour:      b.DeprecPerHour,
		MaintenancePerHour: b.MaintenancePerHour,
		EnergyPerHour:      b.EnergyPerHour,
		EquipCostPerHour:   b.EquipCostPerHour,
		EquipCost:          b.EquipCost,
		MaterialCost:       b.MaterialCost,
		LabourCost:         b.LabourCost,
		OfficeCost:         b.OfficeCost,
		UnitSubtotal:       b.UnitSubtotal,
		BatchSubtotal:      b.BatchSubtotal,
		Qty:                b.Qty,
		ActiveLaborHours:   b.ActiveLaborHours,
		Freight:            b.Freight,
		OutrosTotal:        b.OutrosTotal,
		Profit:             b.Profit,
		Taxes:              b.Taxes,
		FinalPrice:         b.FinalPrice,
	}
}

type ShareResponse struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

func FromShareMessage(m usecase.ShareMessage) ShareResponse {
	return ShareResponse{Text: m.Text, Link: m.Link}
}

// EditFormResponse mirrors the quote form payload so the client can reopen a
// saved quote for editing without reshaping anything.
type EditFormResponse struct {
	EditingID string `json:"editingId"`

	ClientName    string `json:"clientName"`
	ClientContact string `json:"clientContact"`
	Project       string `json:"project"`

	EquipmentID string `json:"equipmentId"`
	MaterialID  string `json:"materialId"`
	PersonID    string `json:"personId"`

	Qty          float64 `json:"qty"`
	PrintHours   float64 `json:"printHours"`
	PieceGrams   float64 `json:"pieceGrams"`
	SupportGrams float64 `json:"supportGrams"`

	ResearchHours float64 `json:"researchHours"`
	ModelingHours float64 `json:"modelingHours"`
	WashHours     float64 `json:"washHours"`

	Freight   float64 `json:"freight"`
	MarginPct float64 `json:"marginPct"`
	TaxPct    float64 `json:"taxPct"`

	Outros []entities.LineItem `json:"outros"`
	Notes  string              `json:"notes"`
}

func FromEditForm(in usecase.QuoteInput) EditFormResponse {
	outros := in.Outros
	if outros == nil {
		outros = []entities.LineItem{}
	}
	return EditFormResponse{
		EditingID:     in.EditingID,
		ClientName:    in.ClientName,
		ClientContact: in.ClientContact,
		Project:       in.Project,
		EquipmentID:   in.EquipmentID,
		MaterialID:    in.MaterialID,
		PersonID:      in.PersonID,
		Qty:           in.Qty,
		PrintHours:    in.PrintHours,
		PieceGrams:    in.PieceGrams,
		SupportGrams:  in.SupportGrams,
		ResearchHours: in.ResearchHours,
		ModelingHours: in.ModelingHours,
		WashHours:     in.WashHours,
		Freight:       in.Freight,
		MarginPct:     in.MarginPct,
		TaxPct:        in.TaxPct,
		Outros:        outros,
		Notes:         in.Notes,
	}
}
