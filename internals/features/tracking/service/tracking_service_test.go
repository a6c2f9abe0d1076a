package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"labtraining_backend/internals/features/tracking/model"
)

func pairKey(traineeID, elementID string) string {
	return traineeID + "|" + elementID
}

type mockValidationRepo struct {
	rows    map[string]*model.ValidationModel // keyed by (trainee, element)
	history []string
	nextID  int

	// simulates losing the insert race: the existence check misses but the
	// unique index rejects the insert
	duplicateOnCreate bool
}

func newMockValidationRepo() *mockValidationRepo {
	return &mockValidationRepo{rows: map[string]*model.ValidationModel{}}
}

func (m *mockValidationRepo) FindByTraineeAndElement(_ context.Context, traineeID, elementID string) (*model.ValidationModel, error) {
	if m.duplicateOnCreate {
		return nil, gorm.ErrRecordNotFound
	}
	if v, ok := m.rows[pairKey(traineeID, elementID)]; ok {
		return v, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockValidationRepo) FindByID(_ context.Context, id string) (*model.ValidationModel, error) {
	for _, v := range m.rows {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockValidationRepo) ListByTrainee(_ context.Context, traineeID string) ([]model.ValidationModel, error) {
	var out []model.ValidationModel
	for _, v := range m.rows {
		if v.TraineeID == traineeID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (m *mockValidationRepo) ListByElement(_ context.Context, elementID string) ([]model.ValidationModel, error) {
	var out []model.ValidationModel
	for _, v := range m.rows {
		if v.TrainingElementID == elementID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (m *mockValidationRepo) CreateWithHistory(_ context.Context, v *model.ValidationModel, _ string) error {
	key := pairKey(v.TraineeID, v.TrainingElementID)
	if _, ok := m.rows[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	m.nextID++
	v.ID = fmt.Sprintf("v-%d", m.nextID)
	m.rows[key] = v
	m.history = append(m.history, "created")
	return nil
}

func (m *mockValidationRepo) DeleteWithHistory(_ context.Context, v *model.ValidationModel, _ string) error {
	delete(m.rows, pairKey(v.TraineeID, v.TrainingElementID))
	m.history = append(m.history, "deleted")
	return nil
}

type mockRatingRepo struct {
	rows    map[string]*model.ComfortRatingModel
	history []string
	nextID  int

	duplicateOnCreate bool
	hideExisting      bool // first Find misses even though the row exists
}

func newMockRatingRepo() *mockRatingRepo {
	return &mockRatingRepo{rows: map[string]*model.ComfortRatingModel{}}
}

func (m *mockRatingRepo) FindByTraineeAndElement(_ context.Context, traineeID, elementID string) (*model.ComfortRatingModel, error) {
	if m.hideExisting {
		m.hideExisting = false
		return nil, gorm.ErrRecordNotFound
	}
	if r, ok := m.rows[pairKey(traineeID, elementID)]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRatingRepo) ListByTrainee(_ context.Context, traineeID string) ([]model.ComfortRatingModel, error) {
	var out []model.ComfortRatingModel
	for _, r := range m.rows {
		if r.TraineeID == traineeID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockRatingRepo) CreateWithHistory(_ context.Context, r *model.ComfortRatingModel, _ string) error {
	key := pairKey(r.TraineeID, r.TrainingElementID)
	if _, ok := m.rows[key]; ok || m.duplicateOnCreate {
		return gorm.ErrDuplicatedKey
	}
	m.nextID++
	r.ID = fmt.Sprintf("r-%d", m.nextID)
	m.rows[key] = r
	m.history = append(m.history, "created")
	return nil
}

func (m *mockRatingRepo) UpdateWithHistory(_ context.Context, existing *model.ComfortRatingModel, rating int, isRevision bool, _ string) (*model.ComfortRatingModel, error) {
	updated := *existing
	updated.Rating = rating
	updated.IsRevision = isRevision
	m.rows[pairKey(existing.TraineeID, existing.TrainingElementID)] = &updated
	m.history = append(m.history, "updated")
	return &updated, nil
}

type mockElementCounter struct{ total int64 }

func (m mockElementCounter) CountElements(_ context.Context) (int64, error) {
	return m.total, nil
}

func newTestService(validations *mockValidationRepo, ratings *mockRatingRepo, total int64) *TrackingService {
	return NewTrackingService(validations, ratings, mockElementCounter{total}, zap.NewNop())
}

func TestValidateRejectsSecondAttestation(t *testing.T) {
	validations := newMockValidationRepo()
	svc := newTestService(validations, newMockRatingRepo(), 10)
	ctx := context.Background()

	first := &model.ValidationModel{TraineeID: "t1", TrainingElementID: "e1", TrainerID: "tr1"}
	if err := svc.Validate(ctx, first, "tr1"); err != nil {
		t.Fatalf("first Validate: %v", err)
	}

	second := &model.ValidationModel{TraineeID: "t1", TrainingElementID: "e1", TrainerID: "tr2"}
	if err := svc.Validate(ctx, second, "tr2"); !errors.Is(err, ErrValidationExists) {
		t.Fatalf("second Validate err = %v, want ErrValidationExists", err)
	}

	if len(validations.rows) != 1 {
		t.Errorf("stored rows = %d, want 1", len(validations.rows))
	}
	if len(validations.history) != 1 || validations.history[0] != "created" {
		t.Errorf("history = %v, want [created]", validations.history)
	}
}

func TestValidateLostRaceSurfacesAsConflict(t *testing.T) {
	validations := newMockValidationRepo()
	validations.duplicateOnCreate = true
	svc := newTestService(validations, newMockRatingRepo(), 10)

	v := &model.ValidationModel{TraineeID: "t1", TrainingElementID: "e1", TrainerID: "tr1"}
	validations.rows[pairKey("t1", "e1")] = v // already inserted by the racer

	err := svc.Validate(context.Background(), &model.ValidationModel{TraineeID: "t1", TrainingElementID: "e1", TrainerID: "tr2"}, "tr2")
	if !errors.Is(err, ErrValidationExists) {
		t.Fatalf("err = %v, want ErrValidationExists", err)
	}
}

func TestDeleteValidationUnknownID(t *testing.T) {
	svc := newTestService(newMockValidationRepo(), newMockRatingRepo(), 10)

	err := svc.DeleteValidation(context.Background(), "missing", "admin")
	if !errors.Is(err, ErrValidationNotFound) {
		t.Fatalf("err = %v, want ErrValidationNotFound", err)
	}
}

func TestDeleteValidationAuditsRemoval(t *testing.T) {
	validations := newMockValidationRepo()
	svc := newTestService(validations, newMockRatingRepo(), 10)
	ctx := context.Background()

	v := &model.ValidationModel{TraineeID: "t1", TrainingElementID: "e1", TrainerID: "tr1"}
	if err := svc.Validate(ctx, v, "tr1"); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if err := svc.DeleteValidation(ctx, v.ID, "admin"); err != nil {
		t.Fatalf("DeleteValidation: %v", err)
	}

	if len(validations.rows) != 0 {
		t.Errorf("rows = %d, want 0", len(validations.rows))
	}
	want := []string{"created", "deleted"}
	if len(validations.history) != 2 || validations.history[0] != want[0] || validations.history[1] != want[1] {
		t.Errorf("history = %v, want %v", validations.history, want)
	}
}

func TestRateUpsertsInPlace(t *testing.T) {
	ratings := newMockRatingRepo()
	svc := newTestService(newMockValidationRepo(), ratings, 10)
	ctx := context.Background()

	first, created, err := svc.Rate(ctx, &model.ComfortRatingModel{TraineeID: "t1", TrainingElementID: "e1", Rating: 2}, "t1")
	if err != nil || !created {
		t.Fatalf("first Rate: created=%v err=%v", created, err)
	}

	second, created, err := svc.Rate(ctx, &model.ComfortRatingModel{TraineeID: "t1", TrainingElementID: "e1", Rating: 4, IsRevision: true}, "t1")
	if err != nil {
		t.Fatalf("second Rate: %v", err)
	}
	if created {
		t.Error("second Rate reported created=true, want update")
	}
	if second.ID != first.ID {
		t.Errorf("second Rate produced a new row %s, want %s updated in place", second.ID, first.ID)
	}
	if second.Rating != 4 || !second.IsRevision {
		t.Errorf("updated rating = %+v, want rating 4 isRevision true", second)
	}

	if len(ratings.rows) != 1 {
		t.Errorf("stored rows = %d, want 1", len(ratings.rows))
	}
	want := []string{"created", "updated"}
	if len(ratings.history) != 2 || ratings.history[0] != want[0] || ratings.history[1] != want[1] {
		t.Errorf("history = %v, want %v", ratings.history, want)
	}
}

func TestRateLostRaceFallsBackToUpdate(t *testing.T) {
	ratings := newMockRatingRepo()
	svc := newTestService(newMockValidationRepo(), ratings, 10)

	winner := &model.ComfortRatingModel{ID: "r-winner", TraineeID: "t1", TrainingElementID: "e1", Rating: 3}
	ratings.rows[pairKey("t1", "e1")] = winner
	ratings.hideExisting = true // the pre-insert check misses the winner

	updated, created, err := svc.Rate(context.Background(), &model.ComfortRatingModel{TraineeID: "t1", TrainingElementID: "e1", Rating: 5}, "t1")
	if err != nil {
		t.Fatalf("Rate: %v", err)
	}
	if created {
		t.Error("created = true, want update after losing the race")
	}
	if updated.ID != "r-winner" || updated.Rating != 5 {
		t.Errorf("updated = %+v, want winner row with rating 5", updated)
	}
	if len(ratings.rows) != 1 {
		t.Errorf("stored rows = %d, want 1", len(ratings.rows))
	}
}

func TestProgressCountsDistinctElements(t *testing.T) {
	validations := newMockValidationRepo()
	ratings := newMockRatingRepo()
	svc := newTestService(validations, ratings, 10)
	ctx := context.Background()

	for _, el := range []string{"e1", "e2", "e3"} {
		if err := svc.Validate(ctx, &model.ValidationModel{TraineeID: "t1", TrainingElementID: el, TrainerID: "tr1"}, "tr1"); err != nil {
			t.Fatalf("Validate %s: %v", el, err)
		}
	}
	for _, el := range []string{"e1", "e2"} {
		if _, _, err := svc.Rate(ctx, &model.ComfortRatingModel{TraineeID: "t1", TrainingElementID: el, Rating: 4}, "t1"); err != nil {
			t.Fatalf("Rate %s: %v", el, err)
		}
	}

	progress, err := svc.Progress(ctx, "t1")
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if progress.TotalElements != 10 {
		t.Errorf("totalElements = %d, want 10", progress.TotalElements)
	}
	if progress.ValidatedElements != 3 {
		t.Errorf("validatedElements = %d, want 3", progress.ValidatedElements)
	}
	if progress.RatedElements != 2 {
		t.Errorf("ratedElements = %d, want 2", progress.RatedElements)
	}
}

func TestProgressEmptyTraineeHasEmptySlices(t *testing.T) {
	svc := newTestService(newMockValidationRepo(), newMockRatingRepo(), 10)

	progress, err := svc.Progress(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if progress.Validations == nil || progress.ComfortRatings == nil {
		t.Error("expected empty slices, got nil")
	}
	if progress.ValidatedElements != 0 || progress.RatedElements != 0 {
		t.Errorf("counts = %d/%d, want 0/0", progress.ValidatedElements, progress.RatedElements)
	}
}
