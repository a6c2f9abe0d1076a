package repository

import (
	"context"

	"gorm.io/gorm"

	"labtraining_backend/internals/features/catalog/model"
	historyModel "labtraining_backend/internals/features/history/model"
	historyService "labtraining_backend/internals/features/history/service"
)

// ElementRepository is the GORM-backed store for training elements. Every
// mutating method commits the row and its audit entry in one transaction.
type ElementRepository struct {
	DB *gorm.DB
}

func NewElementRepository(db *gorm.DB) *ElementRepository {
	return &ElementRepository{DB: db}
}

func (r *ElementRepository) FindByID(ctx context.Context, id string) (*model.TrainingElementModel, error) {
	var el model.TrainingElementModel
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&el).Error; err != nil {
		return nil, err
	}
	return &el, nil
}

func (r *ElementRepository) CreateWithHistory(ctx context.Context, el *model.TrainingElementModel, modifiedBy string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(el).Error; err != nil {
			return err
		}
		return historyService.Record(tx,
			historyModel.EntityTrainingElement, el.ID, historyModel.ActionCreated, modifiedBy, nil, el)
	})
}

func (r *ElementRepository) UpdateWithHistory(ctx context.Context, previous, next *model.TrainingElementModel, modifiedBy string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(next).Error; err != nil {
			return err
		}
		return historyService.Record(tx,
			historyModel.EntityTrainingElement, next.ID, historyModel.ActionUpdated, modifiedBy, previous, next)
	})
}

func (r *ElementRepository) DeleteWithHistory(ctx context.Context, el *model.TrainingElementModel, modifiedBy string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", el.ID).Delete(&model.TrainingElementModel{}).Error; err != nil {
			return err
		}
		return historyService.Record(tx,
			historyModel.EntityTrainingElement, el.ID, historyModel.ActionDeleted, modifiedBy, el, nil)
	})
}
