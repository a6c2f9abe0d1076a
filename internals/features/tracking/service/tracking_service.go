package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"labtraining_backend/internals/features/tracking/dto"
	"labtraining_backend/internals/features/tracking/model"
)

var (
	// ErrValidationExists: validations are immutable once created; a second
	// POST for the same (trainee, element) pair is a conflict, not an update.
	ErrValidationExists   = errors.New("validation already exists for this trainee and element")
	ErrValidationNotFound = errors.New("validation not found")
)

type ValidationRepository interface {
	FindByTraineeAndElement(ctx context.Context, traineeID, elementID string) (*model.ValidationModel, error)
	FindByID(ctx context.Context, id string) (*model.ValidationModel, error)
	ListByTrainee(ctx context.Context, traineeID string) ([]model.ValidationModel, error)
	ListByElement(ctx context.Context, elementID string) ([]model.ValidationModel, error)
	CreateWithHistory(ctx context.Context, v *model.ValidationModel, modifiedBy string) error
	DeleteWithHistory(ctx context.Context, v *model.ValidationModel, modifiedBy string) error
}

type ComfortRatingRepository interface {
	FindByTraineeAndElement(ctx context.Context, traineeID, elementID string) (*model.ComfortRatingModel, error)
	ListByTrainee(ctx context.Context, traineeID string) ([]model.ComfortRatingModel, error)
	CreateWithHistory(ctx context.Context, r *model.ComfortRatingModel, modifiedBy string) error
	UpdateWithHistory(ctx context.Context, existing *model.ComfortRatingModel, rating int, isRevision bool, modifiedBy string) (*model.ComfortRatingModel, error)
}

type ElementCounter interface {
	CountElements(ctx context.Context) (int64, error)
}

type TrackingService struct {
	validations ValidationRepository
	ratings     ComfortRatingRepository
	elements    ElementCounter
	log         *zap.Logger
}

func NewTrackingService(validations ValidationRepository, ratings ComfortRatingRepository, elements ElementCounter, log *zap.Logger) *TrackingService {
	return &TrackingService{
		validations: validations,
		ratings:     ratings,
		elements:    elements,
		log:         log,
	}
}

// Validate records a trainer attestation. The existence check and the insert
// both run; the composite unique index backstops the window between them, so
// a lost race still surfaces as ErrValidationExists instead of a second row.
func (s *TrackingService) Validate(ctx context.Context, v *model.ValidationModel, modifiedBy string) error {
	existing, err := s.validations.FindByTraineeAndElement(ctx, v.TraineeID, v.TrainingElementID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		return ErrValidationExists
	}

	if err := s.validations.CreateWithHistory(ctx, v, modifiedBy); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrValidationExists
		}
		return err
	}

	s.log.Info("validation recorded",
		zap.String("traineeId", v.TraineeID),
		zap.String("trainingElementId", v.TrainingElementID),
		zap.String("trainerId", v.TrainerID),
	)
	return nil
}

// DeleteValidation removes an attestation and audits the removal.
func (s *TrackingService) DeleteValidation(ctx context.Context, id, modifiedBy string) error {
	existing, err := s.validations.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrValidationNotFound
		}
		return err
	}
	return s.validations.DeleteWithHistory(ctx, existing, modifiedBy)
}

// Rate upserts a trainee's comfort rating. At most one live row exists per
// (trainee, element): an existing row is updated in place (rating and
// is_revision only) with an "updated" audit entry; otherwise a new row is
// inserted with a "created" entry. The returned bool reports whether a row
// was created.
func (s *TrackingService) Rate(ctx context.Context, r *model.ComfortRatingModel, modifiedBy string) (*model.ComfortRatingModel, bool, error) {
	existing, err := s.ratings.FindByTraineeAndElement(ctx, r.TraineeID, r.TrainingElementID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	if existing != nil {
		updated, err := s.ratings.UpdateWithHistory(ctx, existing, r.Rating, r.IsRevision, modifiedBy)
		if err != nil {
			return nil, false, err
		}
		return updated, false, nil
	}

	if err := s.ratings.CreateWithHistory(ctx, r, modifiedBy); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost the race against an identical concurrent submit; treat
			// it as the update path
			winner, findErr := s.ratings.FindByTraineeAndElement(ctx, r.TraineeID, r.TrainingElementID)
			if findErr != nil {
				return nil, false, findErr
			}
			updated, updErr := s.ratings.UpdateWithHistory(ctx, winner, r.Rating, r.IsRevision, modifiedBy)
			if updErr != nil {
				return nil, false, updErr
			}
			return updated, false, nil
		}
		return nil, false, err
	}
	return r, true, nil
}

// Progress summarizes a trainee against the full element catalog. Validated
// and rated counts are distinct element counts, not row counts.
func (s *TrackingService) Progress(ctx context.Context, traineeID string) (*dto.TraineeProgressResponse, error) {
	total, err := s.elements.CountElements(ctx)
	if err != nil {
		return nil, err
	}
	validations, err := s.validations.ListByTrainee(ctx, traineeID)
	if err != nil {
		return nil, err
	}
	ratings, err := s.ratings.ListByTrainee(ctx, traineeID)
	if err != nil {
		return nil, err
	}

	validatedIDs := make(map[string]bool, len(validations))
	for _, v := range validations {
		validatedIDs[v.TrainingElementID] = true
	}
	ratedIDs := make(map[string]bool, len(ratings))
	for _, r := range ratings {
		ratedIDs[r.TrainingElementID] = true
	}

	if validations == nil {
		validations = []model.ValidationModel{}
	}
	if ratings == nil {
		ratings = []model.ComfortRatingModel{}
	}

	return &dto.TraineeProgressResponse{
		TotalElements:     total,
		ValidatedElements: len(validatedIDs),
		RatedElements:     len(ratedIDs),
		Validations:       validations,
		ComfortRatings:    ratings,
	}, nil
}
