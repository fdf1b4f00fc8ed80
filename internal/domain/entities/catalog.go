package entities

// MaterialType distinguishes the two printing processes the shop runs.
type MaterialType string

const (
	MaterialTypeFilamento MaterialType = "Filamento"
	MaterialTypeResina    MaterialType = "Resina"
)

// PersonRate is one operator and their hourly labour rate.
type PersonRate struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	RatePerHour float64 `json:"ratePerHour"`
}

// Equipment is one printer in the shop.
//
// Depreciation and maintenance costs are derived at pricing time, never
// stored here.
type Equipment struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	MarketValue float64 `json:"marketValue"`
	Watts       float64 `json:"watts"`
	DeprecYears float64 `json:"deprecYears"`
}

// Material is one spool/bottle reference. Unit cost is TotalCost/TotalQty,
// derived at pricing time.
type Material struct {
	ID        string       `json:"id"`
	Type      MaterialType `json:"type"`
	Name      string       `json:"name"`
	TotalCost float64      `json:"totalCost"`
	TotalQty  float64      `json:"totalQty"`
}

// CostCatalog is the editable reference data used to price quotes.
//
// Storage model (SQLite):
//   - single JSON document in the documents table under key "costs"
//
// The whole catalog is rewritten on every mutation and mirrored to the
// configured Sheets endpoint afterwards.
type CostCatalog struct {
	Personnel []PersonRate `json:"personnel"`
	Equipment []Equipment  `json:"equipment"`
	Materials []Material   `json:"materials"`

	EnergyCostPerKwh float64 `json:"energyCostPerKwh"`
	OfficeMonthly    float64 `json:"officeMonthly"`
}

// FindPerson resolves a personnel id. A missing or dangling id returns nil,
// which the pricing engine treats as "no labour cost".
func (c CostCatalog) FindPerson(id string) *PersonRate {
	for i := range c.Personnel {
		if c.Personnel[i].ID == id {
			return &c.Personnel[i]
		}
	}
	return nil
}

func (c CostCatalog) FindEquipment(id string) *Equipment {
	for i := range c.Equipment {
		if c.Equipment[i].ID == id {
			return &c.Equipment[i]
		}
	}
	return nil
}

func (c CostCatalog) FindMaterial(id string) *Material {
	for i := range c.Materials {
		if c.Materials[i].ID == id {
			return &c.Materials[i]
		}
	}
	return nil
}
