package dto

import (
	"labtraining_backend/internals/features/catalog/model"
)

/* ===============================
   Instruments
=================================*/

type InstrumentRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

type InstrumentUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

func (r *InstrumentRequest) ToModel() *model.InstrumentModel {
	return &model.InstrumentModel{
		Name:        r.Name,
		Description: r.Description,
		Icon:        r.Icon,
	}
}

/* ===============================
   Chapters
=================================*/

type ChapterRequest struct {
	InstrumentID string `json:"instrumentId" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Order        int    `json:"order"`
}

type ChapterUpdateRequest struct {
	InstrumentID *string `json:"instrumentId"`
	Name         *string `json:"name"`
	Order        *int    `json:"order"`
}

func (r *ChapterRequest) ToModel() *model.ChapterModel {
	return &model.ChapterModel{
		InstrumentID: r.InstrumentID,
		Name:         r.Name,
		Order:        r.Order,
	}
}

/* ===============================
   Sub-chapters
=================================*/

type SubChapterRequest struct {
	ChapterID string `json:"chapterId" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Order     int    `json:"order"`
}

type SubChapterUpdateRequest struct {
	ChapterID *string `json:"chapterId"`
	Name      *string `json:"name"`
	Order     *int    `json:"order"`
}

func (r *SubChapterRequest) ToModel() *model.SubChapterModel {
	return &model.SubChapterModel{
		ChapterID: r.ChapterID,
		Name:      r.Name,
		Order:     r.Order,
	}
}

/* ===============================
   Training elements
=================================*/

type TrainingElementRequest struct {
	SubChapterID string  `json:"subChapterId" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Description  *string `json:"description"`
	ExternalLink *string `json:"externalLink"`
	Order        int     `json:"order"`
}

type TrainingElementUpdateRequest struct {
	SubChapterID *string `json:"subChapterId"`
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	ExternalLink *string `json:"externalLink"`
	Order        *int    `json:"order"`
}

func (r *TrainingElementRequest) ToModel() *model.TrainingElementModel {
	return &model.TrainingElementModel{
		SubChapterID: r.SubChapterID,
		Name:         r.Name,
		Description:  r.Description,
		ExternalLink: r.ExternalLink,
		Order:        r.Order,
	}
}
