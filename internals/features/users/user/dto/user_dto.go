package dto

import (
	"labtraining_backend/internals/features/users/user/model"
)

// 🔹 Request to create a user
type UserRequest struct {
	Username     string  `json:"username" validate:"required"`
	Password     string  `json:"password" validate:"required"`
	Role         string  `json:"role" validate:"required,oneof=trainer trainee admin"`
	LaboratoryID *string `json:"laboratoryId"`
	Name         string  `json:"name" validate:"required"`
	Email        *string `json:"email" validate:"omitempty,email"`
}

// 🔹 Request to patch a user (all fields optional)
type UserUpdateRequest struct {
	Username     *string `json:"username"`
	Password     *string `json:"password"`
	Role         *string `json:"role" validate:"omitempty,oneof=trainer trainee admin"`
	LaboratoryID *string `json:"laboratoryId"`
	Name         *string `json:"name"`
	Email        *string `json:"email" validate:"omitempty,email"`
}

// 🔄 request → model
func (r *UserRequest) ToModel() *model.UserModel {
	return &model.UserModel{
		Username:     r.Username,
		Password:     r.Password,
		Role:         r.Role,
		LaboratoryID: r.LaboratoryID,
		Name:         r.Name,
		Email:        r.Email,
	}
}
