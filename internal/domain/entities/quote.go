package entities

import "time"

// QuoteStatus represents the workflow state of a saved quote.
//
// Only the status is mutable after a quote is saved; everything else is a
// frozen snapshot.
type QuoteStatus string

const (
	QuoteStatusPending    QuoteStatus = "pending"
	QuoteStatusApproved   QuoteStatus = "approved"
	QuoteStatusProduction QuoteStatus = "production"
	QuoteStatusDone       QuoteStatus = "done"
	QuoteStatusCancelled  QuoteStatus = "cancelled"
)

// ValidQuoteStatus reports whether s is one of the workflow states.
func ValidQuoteStatus(s QuoteStatus) bool {
	switch s {
	case QuoteStatusPending, QuoteStatusApproved, QuoteStatusProduction,
		QuoteStatusDone, QuoteStatusCancelled:
		return true
	}
	return false
}

// Client identifies who asked for the quote.
type Client struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// LineItem ("outro") is an ad-hoc cost line attached to one quote.
type LineItem struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Hours    float64 `json:"hours"`
	Quantity float64 `json:"quantity"`
	UnitVal  float64 `json:"unitValue"`
	Note     string  `json:"note"`
}

// Production snapshots the selected catalog entries by name, plus the
// physical job parameters. Names, not ids: a later catalog rename or delete
// must not alter a saved quote.
type Production struct {
	EquipmentName string       `json:"equipmentName"`
	MaterialName  string       `json:"materialName"`
	MaterialType  MaterialType `json:"materialType"`
	PieceGrams    float64      `json:"pieceGrams"`
	SupportGrams  float64      `json:"supportGrams"`
	PrintHours    float64      `json:"printHours"`
}

// TimeBreakdown holds the hours entered per phase. Print hours are tracked
// here but excluded from labour/office costing (unattended time).
type TimeBreakdown struct {
	Research float64 `json:"research"`
	Modeling float64 `json:"modeling"`
	Print    float64 `json:"print"`
	Wash     float64 `json:"wash"`
}

// Total is the estimated delivery effort quoted to the client.
func (t TimeBreakdown) Total() float64 {
	return t.Research + t.Modeling + t.Print + t.Wash
}

// Commercial holds the batch/markup inputs.
type Commercial struct {
	Qty       float64 `json:"qty"`
	Freight   float64 `json:"freight"`
	MarginPct float64 `json:"marginPct"`
	TaxPct    float64 `json:"taxPct"`
}

// CostBreakdown is every monetary figure the pricing engine produced, frozen
// verbatim at save time.
type CostBreakdown struct {
	Equipment     float64 `json:"equipment"`
	Material      float64 `json:"material"`
	Labour        float64 `json:"labour"`
	Office        float64 `json:"office"`
	UnitSubtotal  float64 `json:"unitSubtotal"`
	BatchSubtotal float64 `json:"batchSubtotal"`
	Freight       float64 `json:"freight"`
	Outros        float64 `json:"outros"`
	Profit        float64 `json:"profit"`
	Taxes         float64 `json:"taxes"`
	FinalPrice    float64 `json:"finalPrice"`
}

// QuoteRecord is one priced job in the history.
//
// Storage model (SQLite):
//   - quotes table, PK: id; status and created_at lifted into columns,
//     the full record stored as a JSON document
//
// Invariant: Production and Costs are copies, immune to later catalog edits.
type QuoteRecord struct {
	ID        string      `json:"id"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt *time.Time  `json:"updatedAt,omitempty"`
	Status    QuoteStatus `json:"status"`

	Client     Client        `json:"client"`
	Project    string        `json:"project"`
	Production Production    `json:"production"`
	Time       TimeBreakdown `json:"time"`
	Commercial Commercial    `json:"commercial"`
	Costs      CostBreakdown `json:"costs"`

	// Personnel is the operator name snapshot (display only).
	Personnel string     `json:"personnel"`
	Outros    []LineItem `json:"outros"`
	Notes     string     `json:"notes"`
}
