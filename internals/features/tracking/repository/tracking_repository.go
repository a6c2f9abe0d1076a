package repository

import (
	"context"

	"gorm.io/gorm"

	catalogModel "labtraining_backend/internals/features/catalog/model"
	historyModel "labtraining_backend/internals/features/history/model"
	historyService "labtraining_backend/internals/features/history/service"
	"labtraining_backend/internals/features/tracking/model"
)

// TrackingRepository is the GORM-backed store behind the tracking service.
// Every mutating method commits the row and its audit entry in one
// transaction.
type TrackingRepository struct {
	DB *gorm.DB
}

func NewTrackingRepository(db *gorm.DB) *TrackingRepository {
	return &TrackingRepository{DB: db}
}

/* ===============================
   Validations
=================================*/

func (r *TrackingRepository) FindByTraineeAndElement(ctx context.Context, traineeID, elementID string) (*model.ValidationModel, error) {
	var v model.ValidationModel
	err := r.DB.WithContext(ctx).
		Where("trainee_id = ? AND training_element_id = ?", traineeID, elementID).
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *TrackingRepository) FindByID(ctx context.Context, id string) (*model.ValidationModel, error) {
	var v model.ValidationModel
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *TrackingRepository) ListByTrainee(ctx context.Context, traineeID string) ([]model.ValidationModel, error) {
	var list []model.ValidationModel
	err := r.DB.WithContext(ctx).Where("trainee_id = ?", traineeID).Find(&list).Error
	return list, err
}

func (r *TrackingRepository) ListByElement(ctx context.Context, elementID string) ([]model.ValidationModel, error) {
	var list []model.ValidationModel
	err := r.DB.WithContext(ctx).Where("training_element_id = ?", elementID).Find(&list).Error
	return list, err
}

func (r *TrackingRepository) CreateWithHistory(ctx context.Context, v *model.ValidationModel, modifiedBy string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(v).Error; err != nil {
			return err
		}
		return historyService.Record(tx,
			historyModel.EntityValidation, v.ID, historyModel.ActionCreated, modifiedBy, nil, v)
	})
}

func (r *TrackingRepository) DeleteWithHistory(ctx context.Context, v *model.ValidationModel, modifiedBy string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", v.ID).Delete(&model.ValidationModel{}).Error; err != nil {
			return err
		}
		return historyService.Record(tx,
			historyModel.EntityValidation, v.ID, historyModel.ActionDeleted, modifiedBy, v, nil)
	})
}

/* ===============================
   Comfort ratings
=================================*/

// Ratings exposes the comfort-rating half of the store; the tracking
// service takes the two halves as separate interfaces.
func (r *TrackingRepository) Ratings() *ComfortRatingRepository {
	return &ComfortRatingRepository{DB: r.DB}
}

type ComfortRatingRepository struct {
	DB *gorm.DB
}

func (r *ComfortRatingRepository) FindByTraineeAndElement(ctx context.Context, traineeID, elementID string) (*model.ComfortRatingModel, error) {
	var cr model.ComfortRatingModel
	err := r.DB.WithContext(ctx).
		Where("trainee_id = ? AND training_element_id = ?", traineeID, elementID).
		First(&cr).Error
	if err != nil {
		return nil, err
	}
	return &cr, nil
}

func (r *ComfortRatingRepository) ListByTrainee(ctx context.Context, traineeID string) ([]model.ComfortRatingModel, error) {
	var list []model.ComfortRatingModel
	err := r.DB.WithContext(ctx).Where("trainee_id = ?", traineeID).Find(&list).Error
	return list, err
}

func (r *ComfortRatingRepository) CreateWithHistory(ctx context.Context, cr *model.ComfortRatingModel, modifiedBy string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(cr).Error; err != nil {
			return err
		}
		return historyService.Record(tx,
			historyModel.EntityComfortRating, cr.ID, historyModel.ActionCreated, modifiedBy, nil, cr)
	})
}

func (r *ComfortRatingRepository) UpdateWithHistory(ctx context.Context, existing *model.ComfortRatingModel, rating int, isRevision bool, modifiedBy string) (*model.ComfortRatingModel, error) {
	prev := *existing
	updated := *existing
	updated.Rating = rating
	updated.IsRevision = isRevision

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ComfortRatingModel{}).
			Where("id = ?", existing.ID).
			Updates(map[string]interface{}{
				"rating":      rating,
				"is_revision": isRevision,
			}).Error; err != nil {
			return err
		}
		return historyService.Record(tx,
			historyModel.EntityComfortRating, existing.ID, historyModel.ActionUpdated, modifiedBy, prev, updated)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

/* ===============================
   Elements (progress denominator)
=================================*/

func (r *TrackingRepository) CountElements(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&catalogModel.TrainingElementModel{}).Count(&total).Error
	return total, err
}
