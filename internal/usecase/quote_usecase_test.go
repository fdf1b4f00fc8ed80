package usecase

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"murilov3d/internal/adapter/persistence/repository"
	"murilov3d/internal/domain/entities"
	"murilov3d/internal/infrastructure/database"
	mock_interfaces "murilov3d/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// catalogFor builds a CatalogUseCase over a mock repository that always
// serves the given catalog.
func catalogFor(ctrl *gomock.Controller, c entities.CostCatalog) *CatalogUseCase {
	repo := mock_interfaces.NewMockICatalogRepository(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return(c, true, nil).AnyTimes()
	return NewCatalogUseCase(repo, nil)
}

func testQuoteInput() QuoteInput {
	return QuoteInput{
		ClientName:    "Ana",
		ClientContact: "11 98888-7777",
		Project:       "Suporte de headset",
		EquipmentID:   "e1",
		MaterialID:    "m1",
		PersonID:      "p1",
		Qty:           2,
		PrintHours:    10,
		PieceGrams:    50,
		SupportGrams:  10,
		ResearchHours: 1,
		ModelingHours: 2,
		WashHours:     0.5,
		Freight:       20,
		MarginPct:     50,
		TaxPct:        10,
		Outros:        []entities.LineItem{{Category: "Pintura", Quantity: 2, UnitVal: 15}},
		Notes:         "Pintar de azul",
	}
}

func TestQuoteUseCase_Preview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := NewQuoteUseCase(nil, catalogFor(ctrl, testCatalog()), nil)

	b, err := uc.Preview(context.Background(), testQuoteInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(b.MaterialCost-5.10) > 1e-3 {
		t.Errorf("MaterialCost = %v, want 5.10", b.MaterialCost)
	}
	if b.FinalPrice <= b.BatchSubtotal {
		t.Errorf("final price %v should exceed batch subtotal %v", b.FinalPrice, b.BatchSubtotal)
	}
}

func TestQuoteUseCase_SaveValidation(t *testing.T) {
	uc := NewQuoteUseCase(nil, nil, nil)

	for _, tc := range []struct {
		name string
		mod  func(*QuoteInput)
	}{
		{"missing client", func(in *QuoteInput) { in.ClientName = "  " }},
		{"missing project", func(in *QuoteInput) { in.Project = "" }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			in := testQuoteInput()
			tc.mod(&in)
			if _, err := uc.Save(context.Background(), in); !errors.Is(err, ErrMissingRequiredFields) {
				t.Fatalf("expected ErrMissingRequiredFields, got %v", err)
			}
		})
	}
}

func TestQuoteUseCase_SaveCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	pusher := mock_interfaces.NewMockIMirrorPusher(ctrl)
	uc := NewQuoteUseCase(repo, catalogFor(ctrl, testCatalog()), pusher)

	repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteRecord{})).DoAndReturn(
		func(_ context.Context, q entities.QuoteRecord) (entities.QuoteRecord, error) {
			if q.ID == "" || q.CreatedAt.IsZero() || q.UpdatedAt != nil {
				t.Fatalf("unexpected identity fields: %+v", q)
			}
			if q.Status != entities.QuoteStatusPending {
				t.Fatalf("new quote must start pending, got %s", q.Status)
			}
			if q.Production.EquipmentName != "Ender 3" || q.Production.MaterialName != "PLA" ||
				q.Production.MaterialType != entities.MaterialTypeFilamento || q.Personnel != "Murilo" {
				t.Fatalf("selections must be snapshotted by name: %+v", q.Production)
			}
			if q.Costs.FinalPrice <= 0 || q.Costs.BatchSubtotal != q.Costs.UnitSubtotal*2 {
				t.Fatalf("unexpected frozen costs: %+v", q.Costs)
			}
			if len(q.Outros) != 1 || q.Outros[0].ID == "" {
				t.Fatalf("line items must be snapshotted with ids: %+v", q.Outros)
			}
			return q, nil
		},
	)
	pusher.EXPECT().PushAsync()

	saved, err := uc.Save(context.Background(), testQuoteInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("expected generated id")
	}
}

func TestQuoteUseCase_SaveEditPreservesIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	pusher := mock_interfaces.NewMockIMirrorPusher(ctrl)
	uc := NewQuoteUseCase(repo, catalogFor(ctrl, testCatalog()), pusher)

	created := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	existing := entities.QuoteRecord{ID: "q1", CreatedAt: created, Status: entities.QuoteStatusApproved}

	repo.EXPECT().GetByID(gomock.Any(), "q1").Return(existing, nil)
	repo.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q entities.QuoteRecord) (entities.QuoteRecord, error) {
			if q.ID != "q1" || !q.CreatedAt.Equal(created) {
				t.Fatalf("edit must preserve id and createdAt: %+v", q)
			}
			if q.Status != entities.QuoteStatusApproved {
				t.Fatalf("edit must preserve workflow status, got %s", q.Status)
			}
			if q.UpdatedAt == nil || q.UpdatedAt.IsZero() {
				t.Fatal("edit must set updatedAt")
			}
			return q, nil
		},
	)
	pusher.EXPECT().PushAsync()

	in := testQuoteInput()
	in.EditingID = "q1"
	if _, err := uc.Save(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQuoteUseCase_SaveEditStaleFallsBackToCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	pusher := mock_interfaces.NewMockIMirrorPusher(ctrl)
	uc := NewQuoteUseCase(repo, catalogFor(ctrl, testCatalog()), pusher)

	repo.EXPECT().GetByID(gomock.Any(), "gone").Return(entities.QuoteRecord{}, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q entities.QuoteRecord) (entities.QuoteRecord, error) {
			if q.ID == "gone" {
				t.Fatal("stale edit must get a fresh id")
			}
			if q.Status != entities.QuoteStatusPending {
				t.Fatalf("stale edit must restart pending, got %s", q.Status)
			}
			return q, nil
		},
	)
	pusher.EXPECT().PushAsync()

	in := testQuoteInput()
	in.EditingID = "gone"
	if _, err := uc.Save(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQuoteUseCase_Query(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := NewQuoteUseCase(repo, nil, nil)

	history := []entities.QuoteRecord{
		{ID: "1", Client: entities.Client{Name: "Ana", Contact: "11 9999"}, Project: "Luminária", Status: entities.QuoteStatusPending},
		{ID: "2", Client: entities.Client{Name: "Bruno"}, Project: "Engrenagem", Status: entities.QuoteStatusDone},
		{ID: "3", Client: entities.Client{Name: "Carla"}, Project: "Vaso ana tomico", Status: entities.QuoteStatusDone},
	}
	repo.EXPECT().List(gomock.Any()).Return(history, nil).AnyTimes()

	t.Run("substring is case-insensitive and spans client, project, contact", func(t *testing.T) {
		got, err := uc.Query(context.Background(), "ANA", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
			t.Fatalf("unexpected matches: %+v", got)
		}
	})

	t.Run("status filter intersects", func(t *testing.T) {
		got, err := uc.Query(context.Background(), "ana", entities.QuoteStatusDone)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "3" {
			t.Fatalf("unexpected matches: %+v", got)
		}
	})

	t.Run("empty search returns all in storage order", func(t *testing.T) {
		got, err := uc.Query(context.Background(), "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 || got[0].ID != "1" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})
}

func TestQuoteUseCase_SetStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		if err := uc.SetStatus(context.Background(), "q1", "shipped"); !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
	})

	t.Run("missing id is a silent no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		repo.EXPECT().UpdateStatus(gomock.Any(), "ghost", entities.QuoteStatusDone).Return(entities.QuoteRecord{}, nil)

		if err := uc.SetStatus(context.Background(), "ghost", entities.QuoteStatusDone); err != nil {
			t.Fatalf("expected no-op, got %v", err)
		}
	})

	t.Run("success pushes mirror", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		pusher := mock_interfaces.NewMockIMirrorPusher(ctrl)
		uc := NewQuoteUseCase(repo, nil, pusher)

		repo.EXPECT().UpdateStatus(gomock.Any(), "q1", entities.QuoteStatusApproved).
			Return(entities.QuoteRecord{ID: "q1", Status: entities.QuoteStatusApproved}, nil)
		pusher.EXPECT().PushAsync()

		if err := uc.SetStatus(context.Background(), "q1", entities.QuoteStatusApproved); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	pusher := mock_interfaces.NewMockIMirrorPusher(ctrl)
	uc := NewQuoteUseCase(repo, nil, pusher)

	repo.EXPECT().Delete(gomock.Any(), "q1").Return(nil)
	pusher.EXPECT().PushAsync()

	if err := uc.Remove(context.Background(), "q1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQuoteUseCase_Get(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		if _, err := uc.Get(context.Background(), "  "); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.QuoteRecord{}, nil)

		if _, err := uc.Get(context.Background(), "ghost"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_EditFormRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	pusher := mock_interfaces.NewMockIMirrorPusher(ctrl)
	uc := NewQuoteUseCase(repo, catalogFor(ctrl, testCatalog()), pusher)

	in := testQuoteInput()

	var saved entities.QuoteRecord
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q entities.QuoteRecord) (entities.QuoteRecord, error) {
			saved = q
			return q, nil
		},
	)
	pusher.EXPECT().PushAsync()

	if _, err := uc.Save(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), saved.ID).Return(saved, nil)

	form, err := uc.EditForm(context.Background(), saved.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Commercial inputs and line items reproduce exactly.
	if form.Qty != in.Qty || form.Freight != in.Freight || form.MarginPct != in.MarginPct || form.TaxPct != in.TaxPct {
		t.Fatalf("commercial inputs differ: %+v", form)
	}
	if form.PrintHours != in.PrintHours || form.ResearchHours != in.ResearchHours ||
		form.ModelingHours != in.ModelingHours || form.WashHours != in.WashHours {
		t.Fatalf("time inputs differ: %+v", form)
	}
	if len(form.Outros) != 1 || form.Outros[0].Category != "Pintura" || form.Outros[0].UnitVal != 15 {
		t.Fatalf("line items differ: %+v", form.Outros)
	}
	// Selections re-resolve by name against the current catalog.
	if form.EquipmentID != "e1" || form.MaterialID != "m1" || form.PersonID != "p1" {
		t.Fatalf("selections did not resolve by name: %+v", form)
	}
	if form.EditingID != saved.ID {
		t.Fatalf("expected pinned edit id %q, got %q", saved.ID, form.EditingID)
	}
}

func TestQuoteUseCase_EditFormDanglingSelections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	// Empty catalog: every snapshot name dangles.
	uc := NewQuoteUseCase(repo, catalogFor(ctrl, entities.CostCatalog{Personnel: []entities.PersonRate{{ID: "x"}}}), nil)

	q := entities.QuoteRecord{
		ID:         "q1",
		Production: entities.Production{EquipmentName: "Ender 3", MaterialName: "PLA", MaterialType: entities.MaterialTypeFilamento},
		Personnel:  "Murilo",
	}
	repo.EXPECT().GetByID(gomock.Any(), "q1").Return(q, nil)

	form, err := uc.EditForm(context.Background(), "q1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if form.EquipmentID != "" || form.MaterialID != "" || form.PersonID != "" {
		t.Fatalf("dangling names must resolve to empty ids: %+v", form)
	}
}

func TestQuoteUseCase_Share(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := NewQuoteUseCase(repo, nil, nil)

	q := entities.QuoteRecord{
		ID:         "q1",
		Client:     entities.Client{Name: "Ana", Contact: "(11) 98888-7777"},
		Project:    "Luminária",
		Commercial: entities.Commercial{Qty: 1},
		Costs:      entities.CostBreakdown{FinalPrice: 100},
	}
	repo.EXPECT().GetByID(gomock.Any(), "q1").Return(q, nil)

	msg, err := uc.Share(context.Background(), "q1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Text == "" || msg.Link == "" {
		t.Fatalf("expected text and link, got %+v", msg)
	}
}

func TestQuoteUseCase_SnapshotSurvivesCatalogDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	defer db.Close()

	pusher := mock_interfaces.NewMockIMirrorPusher(ctrl)
	pusher.EXPECT().PushAsync().AnyTimes()

	catalogUC := NewCatalogUseCase(repository.NewCatalogSQLiteRepository(db), pusher)
	quoteUC := NewQuoteUseCase(repository.NewQuoteSQLiteRepository(db), catalogUC, pusher)

	ctx := context.Background()
	catalog, err := catalogUC.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := testQuoteInput()
	in.EquipmentID = catalog.Equipment[0].ID
	in.MaterialID = catalog.Materials[0].ID
	in.PersonID = catalog.Personnel[0].ID

	saved, err := quoteUC.Save(ctx, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Costs.FinalPrice <= 0 || saved.Production.EquipmentName == "" {
		t.Fatalf("expected a priced snapshot, got %+v", saved)
	}

	if err := catalogUC.RemoveEquipment(ctx, in.EquipmentID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := catalogUC.RemoveMaterial(ctx, in.MaterialID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := catalogUC.RemovePerson(ctx, in.PersonID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after, err := catalogUC.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after.FindEquipment(in.EquipmentID) != nil {
		t.Fatal("equipment should be gone from the catalog")
	}

	// The stored snapshot must not move: deleting the referenced catalog
	// entries only affects future pricing, never saved quotes.
	got, err := quoteUC.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got.Costs, saved.Costs) {
		t.Fatalf("stored costs changed:\ngot  %+v\nwant %+v", got.Costs, saved.Costs)
	}
	if !reflect.DeepEqual(got.Production, saved.Production) {
		t.Fatalf("stored production snapshot changed:\ngot  %+v\nwant %+v", got.Production, saved.Production)
	}
}
