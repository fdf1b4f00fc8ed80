package request

import (
	"strings"

	"murilov3d/internal/domain/entities"
	"murilov3d/internal/usecase"
)

type LineItemRequest struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Hours    float64 `json:"hours"`
	Quantity float64 `json:"quantity"`
	UnitVal  float64 `json:"unitValue"`
	Note     string  `json:"note"`
}

// QuoteRequest is the full quote form, shared by preview and save. There are
// no binding constraints: previews recompute on every keystroke long before
// the form is complete, and save enforces its required fields in the use
// case. Catalog selections are optional ids; a dangling id zeroes the
// matching cost term instead of failing the request.
type QuoteRequest struct {
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

	Outros []LineItemRequest `json:"outros"`
	Notes  string            `json:"notes"`
}

func (r QuoteRequest) ToInput(editingID string) usecase.QuoteInput {
	outros := make([]entities.LineItem, 0, len(r.Outros))
	for _, it := range r.Outros {
		outros = append(outros, entities.LineItem{
			ID:       strings.TrimSpace(it.ID),
			Category: it.Category,
			Hours:    it.Hours,
			Quantity: it.Quantity,
			UnitVal:  it.UnitVal,
			Note:     it.Note,
		})
	}
	return usecase.QuoteInput{
		ClientName:    r.ClientName,
		ClientContact: r.ClientContact,
		Project:       r.Project,
		EquipmentID:   strings.TrimSpace(r.EquipmentID),
		MaterialID:    strings.TrimSpace(r.MaterialID),
		PersonID:      strings.TrimSpace(r.PersonID),
		Qty:           r.Qty,
		PrintHours:    r.PrintHours,
		PieceGrams:    r.PieceGrams,
		SupportGrams:  r.SupportGrams,
		ResearchHours: r.ResearchHours,
		ModelingHours: r.ModelingHours,
		WashHours:     r.WashHours,
		Freight:       r.Freight,
		MarginPct:     r.MarginPct,
		TaxPct:        r.TaxPct,
		Outros:        outros,
		Notes:         r.Notes,
		EditingID:     editingID,
	}
}

type QuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r QuoteStatusRequest) ResolveStatus() entities.QuoteStatus {
	return entities.QuoteStatus(strings.TrimSpace(strings.ToLower(r.Status)))
}
