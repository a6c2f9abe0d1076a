package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"

	"labtraining_backend/internals/features/catalog/dto"
	"labtraining_backend/internals/features/catalog/model"
)

type mockElementRepo struct {
	rows    map[string]*model.TrainingElementModel
	history []string
	nextID  int
}

func newMockElementRepo() *mockElementRepo {
	return &mockElementRepo{rows: map[string]*model.TrainingElementModel{}}
}

func (m *mockElementRepo) FindByID(_ context.Context, id string) (*model.TrainingElementModel, error) {
	if el, ok := m.rows[id]; ok {
		cp := *el
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockElementRepo) CreateWithHistory(_ context.Context, el *model.TrainingElementModel, _ string) error {
	m.nextID++
	el.ID = fmt.Sprintf("el-%d", m.nextID)
	cp := *el
	m.rows[el.ID] = &cp
	m.history = append(m.history, "created")
	return nil
}

func (m *mockElementRepo) UpdateWithHistory(_ context.Context, _, next *model.TrainingElementModel, _ string) error {
	cp := *next
	m.rows[next.ID] = &cp
	m.history = append(m.history, "updated")
	return nil
}

func (m *mockElementRepo) DeleteWithHistory(_ context.Context, el *model.TrainingElementModel, _ string) error {
	delete(m.rows, el.ID)
	m.history = append(m.history, "deleted")
	return nil
}

func strRef(s string) *string { return &s }
func intRef(n int) *int       { return &n }

func TestElementCreatePreservesOrder(t *testing.T) {
	repo := newMockElementRepo()
	svc := NewElementService(repo)
	ctx := context.Background()

	el := &model.TrainingElementModel{SubChapterID: "sub-1", Name: "Allumage", Order: 7}
	if err := svc.Create(ctx, el, "admin"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	stored, err := repo.FindByID(ctx, el.ID)
	if err != nil {
		t.Fatalf("FindByID after create: %v", err)
	}
	if stored.Order != 7 {
		t.Errorf("order after round-trip = %d, want 7", stored.Order)
	}
	if stored.Name != "Allumage" || stored.SubChapterID != "sub-1" {
		t.Errorf("stored element = %+v", stored)
	}
	if len(repo.history) != 1 || repo.history[0] != "created" {
		t.Errorf("history = %v, want exactly [created]", repo.history)
	}
}

func TestElementUpdateAppendsOneHistoryRow(t *testing.T) {
	repo := newMockElementRepo()
	svc := NewElementService(repo)
	ctx := context.Background()

	el := &model.TrainingElementModel{SubChapterID: "sub-1", Name: "Allumage", Description: strRef("Procedure"), Order: 1}
	if err := svc.Create(ctx, el, "admin"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, el.ID, &dto.TrainingElementUpdateRequest{Name: strRef("Allumage v2"), Order: intRef(3)}, "admin")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Allumage v2" || updated.Order != 3 {
		t.Errorf("updated = %+v, want renamed with order 3", updated)
	}
	// untouched fields keep their values
	if updated.SubChapterID != "sub-1" || updated.Description == nil || *updated.Description != "Procedure" {
		t.Errorf("unset fields changed: %+v", updated)
	}

	want := []string{"created", "updated"}
	if len(repo.history) != 2 || repo.history[0] != want[0] || repo.history[1] != want[1] {
		t.Errorf("history = %v, want %v", repo.history, want)
	}
}

func TestElementUpdateWithoutFields(t *testing.T) {
	repo := newMockElementRepo()
	svc := NewElementService(repo)
	ctx := context.Background()

	el := &model.TrainingElementModel{SubChapterID: "sub-1", Name: "Allumage", Order: 1}
	if err := svc.Create(ctx, el, "admin"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Update(ctx, el.ID, &dto.TrainingElementUpdateRequest{}, "admin"); !errors.Is(err, ErrNoElementFields) {
		t.Fatalf("err = %v, want ErrNoElementFields", err)
	}
	if len(repo.history) != 1 {
		t.Errorf("history = %v, empty update must not append a row", repo.history)
	}
}

func TestElementUpdateUnknownID(t *testing.T) {
	svc := NewElementService(newMockElementRepo())

	_, err := svc.Update(context.Background(), "missing", &dto.TrainingElementUpdateRequest{Name: strRef("x")}, "admin")
	if !errors.Is(err, ErrElementNotFound) {
		t.Fatalf("err = %v, want ErrElementNotFound", err)
	}
}

func TestElementDeleteAppendsOneHistoryRow(t *testing.T) {
	repo := newMockElementRepo()
	svc := NewElementService(repo)
	ctx := context.Background()

	el := &model.TrainingElementModel{SubChapterID: "sub-1", Name: "Allumage", Order: 1}
	if err := svc.Create(ctx, el, "admin"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(ctx, el.ID, "admin"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if len(repo.rows) != 0 {
		t.Errorf("rows = %d, want 0", len(repo.rows))
	}
	want := []string{"created", "deleted"}
	if len(repo.history) != 2 || repo.history[0] != want[0] || repo.history[1] != want[1] {
		t.Errorf("history = %v, want %v", repo.history, want)
	}

	if err := svc.Delete(ctx, el.ID, "admin"); !errors.Is(err, ErrElementNotFound) {
		t.Fatalf("second Delete err = %v, want ErrElementNotFound", err)
	}
	if len(repo.history) != 2 {
		t.Errorf("history = %v, failed delete must not append a row", repo.history)
	}
}
