package usecase

import (
	"context"
	"errors"

	"murilov3d/internal/domain/entities"
	"murilov3d/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidMaterialType = errors.New("invalid material type")
)

// ICatalogUseCase exposes the cost catalog operations.
//
// Field updates are a closed set of typed patches, one struct per entity,
// instead of generic name-indexed mutation. Removing an id that no longer
// exists is a silent no-op.
type ICatalogUseCase interface {
	Load(ctx context.Context) (entities.CostCatalog, error)
	AddPerson(ctx context.Context) (entities.PersonRate, error)
	AddEquipment(ctx context.Context) (entities.Equipment, error)
	AddMaterial(ctx context.Context) (entities.Material, error)
	UpdatePerson(ctx context.Context, id string, patch PersonPatch) error
	UpdateEquipment(ctx context.Context, id string, patch EquipmentPatch) error
	UpdateMaterial(ctx context.Context, id string, patch MaterialPatch) error
	RemovePerson(ctx context.Context, id string) error
	RemoveEquipment(ctx context.Context, id string) error
	RemoveMaterial(ctx context.Context, id string) error
	UpdateConfig(ctx context.Context, patch ConfigPatch) error
}

// PersonPatch updates one personnel row; nil fields are left untouched.
type PersonPatch struct {
	Name        *string
	RatePerHour *float64
}

type EquipmentPatch struct {
	Name        *string
	MarketValue *float64
	Watts       *float64
	DeprecYears *float64
}

type MaterialPatch struct {
	Type      *entities.MaterialType
	Name      *string
	TotalCost *float64
	TotalQty  *float64
}

// ConfigPatch updates the two process-wide scalars.
type ConfigPatch struct {
	EnergyCostPerKwh *float64
	OfficeMonthly    *float64
}

type CatalogUseCase struct {
	repo   interfaces.ICatalogRepository
	pusher interfaces.IMirrorPusher
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository, pusher interfaces.IMirrorPusher) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, pusher: pusher}
}

// defaultCatalog seeds the catalog the shop started with.
func defaultCatalog() entities.CostCatalog {
	return entities.CostCatalog{
		Personnel: []entities.PersonRate{
			{ID: uuid.NewString(), Name: "Murilo", RatePerHour: 66.67},
		},
		Equipment: []entities.Equipment{
			{ID: uuid.NewString(), Name: "Ender 3", MarketValue: 700, Watts: 250, DeprecYears: 3},
			{ID: uuid.NewString(), Name: "CR10S", MarketValue: 1200, Watts: 350, DeprecYears: 3},
			{ID: uuid.NewString(), Name: "Bluer", MarketValue: 900, Watts: 200, DeprecYears: 3},
			{ID: uuid.NewString(), Name: "Resina (FDM 1)", MarketValue: 1500, Watts: 150, DeprecYears: 3},
		},
		Materials: []entities.Material{
			{ID: uuid.NewString(), Type: entities.MaterialTypeFilamento, Name: "PLA", TotalCost: 85, TotalQty: 1000},
			{ID: uuid.NewString(), Type: entities.MaterialTypeFilamento, Name: "TPU", TotalCost: 135, TotalQty: 1000},
			{ID: uuid.NewString(), Type: entities.MaterialTypeFilamento, Name: "PETG", TotalCost: 110, TotalQty: 1000},
			{ID: uuid.NewString(), Type: entities.MaterialTypeResina, Name: "Siraya Tech Blu", TotalCost: 180, TotalQty: 500},
		},
		EnergyCostPerKwh: 1.34,
		OfficeMonthly:    0,
	}
}

// Load returns the catalog, seeding and persisting the defaults on first run.
func (u *CatalogUseCase) Load(ctx context.Context) (entities.CostCatalog, error) {
	catalog, found, err := u.repo.Load(ctx)
	if err != nil {
		return entities.CostCatalog{}, err
	}
	if !found {
		catalog = defaultCatalog()
		if err := u.repo.Save(ctx, catalog); err != nil {
			return entities.CostCatalog{}, err
		}
	}
	return catalog, nil
}

func (u *CatalogUseCase) AddPerson(ctx context.Context) (entities.PersonRate, error) {
	p := entities.PersonRate{ID: uuid.NewString()}
	err := u.mutate(ctx, func(c *entities.CostCatalog) {
		c.Personnel = append(c.Personnel, p)
	})
	return p, err
}

func (u *CatalogUseCase) AddEquipment(ctx context.Context) (entities.Equipment, error) {
	eq := entities.Equipment{ID: uuid.NewString(), DeprecYears: 3}
	err := u.mutate(ctx, func(c *entities.CostCatalog) {
		c.Equipment = append(c.Equipment, eq)
	})
	return eq, err
}

func (u *CatalogUseCase) AddMaterial(ctx context.Context) (entities.Material, error) {
	m := entities.Material{ID: uuid.NewString(), Type: entities.MaterialTypeFilamento, TotalQty: 1000}
	err := u.mutate(ctx, func(c *entities.CostCatalog) {
		c.Materials = append(c.Materials, m)
	})
	return m, err
}

func (u *CatalogUseCase) UpdatePerson(ctx context.Context, id string, patch PersonPatch) error {
	return u.mutate(ctx, func(c *entities.CostCatalog) {
		p := c.FindPerson(id)
		if p == nil {
			return
		}
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.RatePerHour != nil {
			p.RatePerHour = floorAt(*patch.RatePerHour, 0)
		}
	})
}

func (u *CatalogUseCase) UpdateEquipment(ctx context.Context, id string, patch EquipmentPatch) error {
	return u.mutate(ctx, func(c *entities.CostCatalog) {
		eq := c.FindEquipment(id)
		if eq == nil {
			return
		}
		if patch.Name != nil {
			eq.Name = *patch.Name
		}
		if patch.MarketValue != nil {
			eq.MarketValue = floorAt(*patch.MarketValue, 0)
		}
		if patch.Watts != nil {
			eq.Watts = floorAt(*patch.Watts, 0)
		}
		if patch.DeprecYears != nil {
			eq.DeprecYears = floorAt(*patch.DeprecYears, 1)
		}
	})
}

func (u *CatalogUseCase) UpdateMaterial(ctx context.Context, id string, patch MaterialPatch) error {
	if patch.Type != nil {
		switch *patch.Type {
		case entities.MaterialTypeFilamento, entities.MaterialTypeResina:
		default:
			return ErrInvalidMaterialType
		}
	}
	return u.mutate(ctx, func(c *entities.CostCatalog) {
		m := c.FindMaterial(id)
		if m == nil {
			return
		}
		if patch.Type != nil {
			m.Type = *patch.Type
		}
		if patch.Name != nil {
			m.Name = *patch.Name
		}
		if patch.TotalCost != nil {
			m.TotalCost = floorAt(*patch.TotalCost, 0)
		}
		if patch.TotalQty != nil {
			m.TotalQty = floorAt(*patch.TotalQty, 1)
		}
	})
}

func (u *CatalogUseCase) RemovePerson(ctx context.Context, id string) error {
	return u.mutate(ctx, func(c *entities.CostCatalog) {
		c.Personnel = removeByID(c.Personnel, id, func(p entities.PersonRate) string { return p.ID })
	})
}

func (u *CatalogUseCase) RemoveEquipment(ctx context.Context, id string) error {
	return u.mutate(ctx, func(c *entities.CostCatalog) {
		c.Equipment = removeByID(c.Equipment, id, func(e entities.Equipment) string { return e.ID })
	})
}

func (u *CatalogUseCase) RemoveMaterial(ctx context.Context, id string) error {
	return u.mutate(ctx, func(c *entities.CostCatalog) {
		c.Materials = removeByID(c.Materials, id, func(m entities.Material) string { return m.ID })
	})
}

func (u *CatalogUseCase) UpdateConfig(ctx context.Context, patch ConfigPatch) error {
	return u.mutate(ctx, func(c *entities.CostCatalog) {
		if patch.EnergyCostPerKwh != nil {
			c.EnergyCostPerKwh = floorAt(*patch.EnergyCostPerKwh, 0)
		}
		if patch.OfficeMonthly != nil {
			c.OfficeMonthly = floorAt(*patch.OfficeMonthly, 0)
		}
	})
}

// mutate loads the catalog, applies fn, persists synchronously and then
// dispatches a background mirror push. A failed push never rolls back the
// local write.
func (u *CatalogUseCase) mutate(ctx context.Context, fn func(*entities.CostCatalog)) error {
	catalog, err := u.Load(ctx)
	if err != nil {
		return err
	}
	fn(&catalog)
	if err := u.repo.Save(ctx, catalog); err != nil {
		return err
	}
	u.pusher.PushAsync()
	return nil
}

func floorAt(v, floor float64) float64 {
	if v < floor || v != v {
		return floor
	}
	return v
}

func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	out := items[:0]
	for _, it := range items {
		if idOf(it) != id {
			out = append(out, it)
		}
	}
	return out
}
