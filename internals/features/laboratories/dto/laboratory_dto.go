package dto

import (
	"labtraining_backend/internals/features/laboratories/model"
)

// 🔹 Request to create a laboratory
type LaboratoryRequest struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"required"`
}

// 🔹 Request to patch a laboratory (all fields optional)
type LaboratoryUpdateRequest struct {
	Name *string `json:"name"`
	Code *string `json:"code"`
}

// 🔹 Aggregated stats for one laboratory
type LaboratoryStatsResponse struct {
	Laboratory    model.LaboratoryModel `json:"laboratory"`
	UserCount     int                   `json:"userCount"`
	AvgComfort    float64               `json:"avgComfort"`
	TrainingCount int                   `json:"trainingCount"`
}

// 🔄 request → model
func (r *LaboratoryRequest) ToModel() *model.LaboratoryModel {
	return &model.LaboratoryModel{
		Name: r.Name,
		Code: r.Code,
	}
}
