package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"murilov3d/internal/domain/entities"
	"murilov3d/internal/domain/pricing"
	"murilov3d/internal/domain/whatsapp"
	"murilov3d/internal/infrastructure/metrics"
	"murilov3d/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingRequiredFields = errors.New("client name and project are required")
	ErrQuoteNotFound         = errors.New("quote not found")
	ErrInvalidQuoteID        = errors.New("invalid quote id")
	ErrInvalidQuoteStatus    = errors.New("invalid quote status")
)

// QuoteInput carries everything the user typed into the quote form. Catalog
// selections come as optional ids; a missing or dangling id simply zeroes the
// matching cost term.
type QuoteInput struct {
	ClientName    string
	ClientContact string
	Project       string

	EquipmentID string
	MaterialID  string
	PersonID    string

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
	Notes  string

	// EditingID pins an existing record: the save replaces it in place,
	// keeping its id, creation time and workflow status.
	EditingID string
}

// ShareMessage is the prefilled proposal for the client.
type ShareMessage struct {
	Text string
	Link string
}

// IQuoteUseCase exposes pricing previews and the quote history operations.
type IQuoteUseCase interface {
	Preview(ctx context.Context, in QuoteInput) (pricing.Breakdown, error)
	Save(ctx context.Context, in QuoteInput) (entities.QuoteRecord, error)
	Get(ctx context.Context, id string) (entities.QuoteRecord, error)
	Query(ctx context.Context, search string, status entities.QuoteStatus) ([]entities.QuoteRecord, error)
	SetStatus(ctx context.Context, id string, status entities.QuoteStatus) error
	Remove(ctx context.Context, id string) error
	EditForm(ctx context.Context, id string) (QuoteInput, error)
	Share(ctx context.Context, id string) (ShareMessage, error)
}

type QuoteUseCase struct {
	repo    interfaces.IQuoteRepository
	catalog ICatalogUseCase
	pusher  interfaces.IMirrorPusher
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, catalog ICatalogUseCase, pusher interfaces.IMirrorPusher) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, catalog: catalog, pusher: pusher}
}

// Preview recomputes the breakdown for the current form values. It has no
// side effects and is safe to call on every input change.
func (u *QuoteUseCase) Preview(ctx context.Context, in QuoteInput) (pricing.Breakdown, error) {
	catalog, err := u.catalog.Load(ctx)
	if err != nil {
		return pricing.Breakdown{}, err
	}
	return pricing.Compute(toPricingInput(in, catalog)), nil
}

// Save freezes the latest breakdown into a quote record. Create mode
// synthesizes a new pending record; edit mode replaces the pinned record,
// preserving id, creation time and status. An edit whose target vanished
// falls back to creating a fresh record.
func (u *QuoteUseCase) Save(ctx context.Context, in QuoteInput) (entities.QuoteRecord, error) {
	in.ClientName = strings.TrimSpace(in.ClientName)
	in.Project = strings.TrimSpace(in.Project)
	if in.ClientName == "" || in.Project == "" {
		return entities.QuoteRecord{}, ErrMissingRequiredFields
	}

	catalog, err := u.catalog.Load(ctx)
	if err != nil {
		return entities.QuoteRecord{}, err
	}
	breakdown := pricing.Compute(toPricingInput(in, catalog))

	eq := catalog.FindEquipment(in.EquipmentID)
	mat := catalog.FindMaterial(in.MaterialID)
	person := catalog.FindPerson(in.PersonID)

	now := time.Now().UTC()
	record := entities.QuoteRecord{
		ID:        uuid.NewString(),
		CreatedAt: now,
		Status:    entities.QuoteStatusPending,
		Client:    entities.Client{Name: in.ClientName, Contact: strings.TrimSpace(in.ClientContact)},
		Project:   in.Project,
		Production: entities.Production{
			PieceGrams:   in.PieceGrams,
			SupportGrams: in.SupportGrams,
			PrintHours:   in.PrintHours,
		},
		Time: entities.TimeBreakdown{
			Research: in.ResearchHours,
			Modeling: in.ModelingHours,
			Print:    in.PrintHours,
			Wash:     in.WashHours,
		},
		Commercial: entities.Commercial{
			Qty:       breakdown.Qty,
			Freight:   breakdown.Freight,
			MarginPct: in.MarginPct,
			TaxPct:    in.TaxPct,
		},
		Costs:  breakdown.Costs(),
		Outros: copyLineItems(in.Outros),
		Notes:  strings.TrimSpace(in.Notes),
	}
	if eq != nil {
		record.Production.EquipmentName = eq.Name
	}
	if mat != nil {
		record.Production.MaterialName = mat.Name
		record.Production.MaterialType = mat.Type
	}
	if person != nil {
		record.Personnel = person.Name
	}

	if in.EditingID != "" {
		existing, err := u.repo.GetByID(ctx, in.EditingID)
		if err != nil {
			return entities.QuoteRecord{}, err
		}
		if existing.ID != "" {
			record.ID = existing.ID
			record.CreatedAt = existing.CreatedAt
			record.Status = existing.Status
			record.UpdatedAt = &now

			saved, err := u.repo.Replace(ctx, record)
			if err != nil {
				return entities.QuoteRecord{}, err
			}
			if saved.ID != "" {
				metrics.QuotesSaved.Inc()
				u.pusher.PushAsync()
				return saved, nil
			}
			// Deleted between the read and the write: fall through to create.
		}
	}

	saved, err := u.repo.Create(ctx, record)
	if err != nil {
		return entities.QuoteRecord{}, err
	}
	metrics.QuotesSaved.Inc()
	u.pusher.PushAsync()
	return saved, nil
}

func (u *QuoteUseCase) Get(ctx context.Context, id string) (entities.QuoteRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRecord{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteRecord{}, err
	}
	if q.ID == "" {
		return entities.QuoteRecord{}, ErrQuoteNotFound
	}
	return q, nil
}

// Query filters the history by case-insensitive substring over client name,
// project and contact, intersected with an optional exact status match.
// Order follows storage order: most recent first.
func (u *QuoteUseCase) Query(ctx context.Context, search string, status entities.QuoteStatus) ([]entities.QuoteRecord, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]entities.QuoteRecord, 0, len(all))
	for _, q := range all {
		if needle != "" &&
			!strings.Contains(strings.ToLower(q.Client.Name), needle) &&
			!strings.Contains(strings.ToLower(q.Project), needle) &&
			!strings.Contains(strings.ToLower(q.Client.Contact), needle) {
			continue
		}
		if status != "" && q.Status != status {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

// SetStatus mutates only the workflow status. A missing id is a silent
// no-op; the stale reference is simply ignored.
func (u *QuoteUseCase) SetStatus(ctx context.Context, id string, status entities.QuoteStatus) error {
	if !entities.ValidQuoteStatus(status) {
		return ErrInvalidQuoteStatus
	}
	updated, err := u.repo.UpdateStatus(ctx, strings.TrimSpace(id), status)
	if err != nil {
		return err
	}
	if updated.ID != "" {
		u.pusher.PushAsync()
	}
	return nil
}

// Remove deletes one quote. Confirmation is the caller's responsibility.
func (u *QuoteUseCase) Remove(ctx context.Context, id string) error {
	if err := u.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		return err
	}
	u.pusher.PushAsync()
	return nil
}

// EditForm projects a saved quote back into form inputs. Catalog selections
// are re-resolved by the snapshotted names, since ids may have been
// regenerated since the quote was saved; entries that no longer exist
// resolve to empty ids.
func (u *QuoteUseCase) EditForm(ctx context.Context, id string) (QuoteInput, error) {
	q, err := u.Get(ctx, id)
	if err != nil {
		return QuoteInput{}, err
	}
	catalog, err := u.catalog.Load(ctx)
	if err != nil {
		return QuoteInput{}, err
	}

	in := QuoteInput{
		ClientName:    q.Client.Name,
		ClientContact: q.Client.Contact,
		Project:       q.Project,
		Qty:           q.Commercial.Qty,
		PrintHours:    q.Time.Print,
		PieceGrams:    q.Production.PieceGrams,
		SupportGrams:  q.Production.SupportGrams,
		ResearchHours: q.Time.Research,
		ModelingHours: q.Time.Modeling,
		WashHours:     q.Time.Wash,
		Freight:       q.Commercial.Freight,
		MarginPct:     q.Commercial.MarginPct,
		TaxPct:        q.Commercial.TaxPct,
		Outros:        copyLineItems(q.Outros),
		Notes:         q.Notes,
		EditingID:     q.ID,
	}

	for _, eq := range catalog.Equipment {
		if eq.Name == q.Production.EquipmentName {
			in.EquipmentID = eq.ID
			break
		}
	}
	for _, m := range catalog.Materials {
		if m.Name == q.Production.MaterialName && m.Type == q.Production.MaterialType {
			in.MaterialID = m.ID
			break
		}
	}
	for _, p := range catalog.Personnel {
		if p.Name == q.Personnel {
			in.PersonID = p.ID
			break
		}
	}
	return in, nil
}

// Share builds the proposal text and wa.me link for a saved quote.
func (u *QuoteUseCase) Share(ctx context.Context, id string) (ShareMessage, error) {
	q, err := u.Get(ctx, id)
	if err != nil {
		return ShareMessage{}, err
	}
	return ShareMessage{Text: whatsapp.BuildText(q), Link: whatsapp.BuildLink(q)}, nil
}

func toPricingInput(in QuoteInput, catalog entities.CostCatalog) pricing.Input {
	return pricing.Input{
		Equipment:        catalog.FindEquipment(in.EquipmentID),
		Material:         catalog.FindMaterial(in.MaterialID),
		Person:           catalog.FindPerson(in.PersonID),
		Qty:              in.Qty,
		PrintHours:       in.PrintHours,
		PieceGrams:       in.PieceGrams,
		SupportGrams:     in.SupportGrams,
		ResearchHours:    in.ResearchHours,
		ModelingHours:    in.ModelingHours,
		WashHours:        in.WashHours,
		Freight:          in.Freight,
		MarginPct:        in.MarginPct,
		TaxPct:           in.TaxPct,
		Outros:           in.Outros,
		EnergyCostPerKwh: catalog.EnergyCostPerKwh,
		OfficeMonthly:    catalog.OfficeMonthly,
	}
}

func copyLineItems(items []entities.LineItem) []entities.LineItem {
	out := make([]entities.LineItem, len(items))
	for i, it := range items {
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		if it.Quantity < 1 {
			it.Quantity = 1
		}
		out[i] = it
	}
	return out
}
