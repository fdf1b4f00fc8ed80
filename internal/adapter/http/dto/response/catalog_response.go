package response

import "murilov3d/internal/domain/entities"

type CatalogResponse struct {
	Personnel        []entities.PersonRate `json:"personnel"`
	Equipment        []entities.Equipment  `json:"equipment"`
	Materials        []entities.Material   `json:"materials"`
	EnergyCostPerKwh float64               `json:"energyCostPerKwh"`
	OfficeMonthly    float64               `json:"officeMonthly"`
}

func FromCatalog(c entities.CostCatalog) CatalogResponse {
	personnel := c.Personnel
	if personnel == nil {
		personnel = []entities.PersonRate{}
	}
	equipment := c.Equipment
	if equipment == nil {
		equipment = []entities.Equipment{}
	}
	materials := c.Materials
	if materials == nil {
		materials = []entities.Material{}
	}
	return CatalogResponse{
		Personnel:        personnel,
		Equipment:        equipment,
		Materials:        materials,
		EnergyCostPerKwh: c.EnergyCostPerKwh,
		OfficeMonthly:    c.OfficeMonthly,
	}
}
