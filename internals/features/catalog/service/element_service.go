package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"labtraining_backend/internals/features/catalog/dto"
	"labtraining_backend/internals/features/catalog/model"
)

var (
	ErrElementNotFound = errors.New("training element not found")
	ErrNoElementFields = errors.New("no fields to update")
)

type ElementRepository interface {
	FindByID(ctx context.Context, id string) (*model.TrainingElementModel, error)
	CreateWithHistory(ctx context.Context, el *model.TrainingElementModel, modifiedBy string) error
	UpdateWithHistory(ctx context.Context, previous, next *model.TrainingElementModel, modifiedBy string) error
	DeleteWithHistory(ctx context.Context, el *model.TrainingElementModel, modifiedBy string) error
}

// ElementService wraps training-element mutations so each one lands together
// with exactly one audit row.
type ElementService struct {
	elements ElementRepository
}

func NewElementService(elements ElementRepository) *ElementService {
	return &ElementService{elements: elements}
}

func (s *ElementService) Create(ctx context.Context, el *model.TrainingElementModel, modifiedBy string) error {
	return s.elements.CreateWithHistory(ctx, el, modifiedBy)
}

// Update applies the set fields of req on top of the stored element; fields
// left nil keep their current value.
func (s *ElementService) Update(ctx context.Context, id string, req *dto.TrainingElementUpdateRequest, modifiedBy string) (*model.TrainingElementModel, error) {
	existing, err := s.elements.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrElementNotFound
		}
		return nil, err
	}

	if req.SubChapterID == nil && req.Name == nil && req.Description == nil &&
		req.ExternalLink == nil && req.Order == nil {
		return nil, ErrNoElementFields
	}

	previous := *existing
	next := *existing
	if req.SubChapterID != nil {
		next.SubChapterID = *req.SubChapterID
	}
	if req.Name != nil {
		next.Name = *req.Name
	}
	if req.Description != nil {
		next.Description = req.Description
	}
	if req.ExternalLink != nil {
		next.ExternalLink = req.ExternalLink
	}
	if req.Order != nil {
		next.Order = *req.Order
	}

	if err := s.elements.UpdateWithHistory(ctx, &previous, &next, modifiedBy); err != nil {
		return nil, err
	}
	return &next, nil
}

func (s *ElementService) Delete(ctx context.Context, id, modifiedBy string) error {
	existing, err := s.elements.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrElementNotFound
		}
		return err
	}
	return s.elements.DeleteWithHistory(ctx, existing, modifiedBy)
}
