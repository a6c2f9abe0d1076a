package dto

import (
	"labtraining_backend/internals/features/tracking/model"
)

// 🔹 Request for a trainer to validate a training element
type ValidationRequest struct {
	TraineeID         string  `json:"traineeId" validate:"required"`
	TrainingElementID string  `json:"trainingElementId" validate:"required"`
	TrainerID         string  `json:"trainerId" validate:"required"`
	TrainingLocation  *string `json:"trainingLocation"`
}

// 🔹 Request for a trainee to (re)rate comfort on an element
type ComfortRatingRequest struct {
	TraineeID         string `json:"traineeId" validate:"required"`
	TrainingElementID string `json:"trainingElementId" validate:"required"`
	Rating            int    `json:"rating" validate:"required,min=1,max=5"`
	IsRevision        bool   `json:"isRevision"`
}

// 🔹 Trainee progress summary
type TraineeProgressResponse struct {
	TotalElements     int64                      `json:"totalElements"`
	ValidatedElements int                        `json:"validatedElements"`
	RatedElements     int                        `json:"ratedElements"`
	Validations       []model.ValidationModel    `json:"validations"`
	ComfortRatings    []model.ComfortRatingModel `json:"comfortRatings"`
}

// 🔄 request → model
func (r *ValidationRequest) ToModel() *model.ValidationModel {
	return &model.ValidationModel{
		TraineeID:         r.TraineeID,
		TrainingElementID: r.TrainingElementID,
		TrainerID:         r.TrainerID,
		TrainingLocation:  r.TrainingLocation,
	}
}

// 🔄 request → model
func (r *ComfortRatingRequest) ToModel() *model.ComfortRatingModel {
	return &model.ComfortRatingModel{
		TraineeID:         r.TraineeID,
		TrainingElementID: r.TrainingElementID,
		Rating:            r.Rating,
		IsRevision:        r.IsRevision,
	}
}
