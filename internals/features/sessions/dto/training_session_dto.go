package dto

import (
	"github.com/lib/pq"

	"labtraining_backend/internals/features/sessions/model"
)

// 🔹 Request to save a trainer working-set
type TrainingSessionRequest struct {
	TrainerID     string   `json:"trainerId" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	TraineeIDs    []string `json:"traineeIds"`
	InstrumentIDs []string `json:"instrumentIds"`
	Location      *string  `json:"location"`
}

// 🔹 Request to patch a saved session (all fields optional)
type TrainingSessionUpdateRequest struct {
	Name          *string   `json:"name"`
	TraineeIDs    *[]string `json:"traineeIds"`
	InstrumentIDs *[]string `json:"instrumentIds"`
	Location      *string   `json:"location"`
}

// 🔄 request → model; nil id slices become empty arrays, never NULL
func (r *TrainingSessionRequest) ToModel() *model.TrainingSessionModel {
	trainees := r.TraineeIDs
	if trainees == nil {
		trainees = []string{}
	}
	instruments := r.InstrumentIDs
	if instruments == nil {
		instruments = []string{}
	}
	return &model.TrainingSessionModel{
		TrainerID:     r.TrainerID,
		Name:          r.Name,
		TraineeIDs:    pq.StringArray(trainees),
		InstrumentIDs: pq.StringArray(instruments),
		Location:      r.Location,
	}
}
