package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "labtraining_backend/internals/helpers"
	labModel "labtraining_backend/internals/features/laboratories/model"
	"labtraining_backend/internals/features/users/auth/service"
	userModel "labtraining_backend/internals/features/users/user/model"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type loginRequest struct {
	Username string `json:"username"`
	LabCode  string `json:"labCode"`
}

// 🟢 POST /api/auth/login
// Username lookup, not real authentication: trainees attached to a
// laboratory must additionally present their lab code.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var user *userModel.UserModel
	var found userModel.UserModel
	err := ctrl.DB.Where("username = ?", req.Username).First(&found).Error
	switch {
	case err == nil:
		user = &found
	case !errors.Is(err, gorm.ErrRecordNotFound):
		log.Printf("[ERROR] Login lookup failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	var lab *labModel.LaboratoryModel
	if user != nil && user.LaboratoryID != nil {
		var l labModel.LaboratoryModel
		if err := ctrl.DB.Where("id = ?", *user.LaboratoryID).First(&l).Error; err == nil {
			lab = &l
		}
	}

	if err := service.EvaluateLogin(user, lab, req.Username, req.LabCode); err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameRequired):
			return helper.JsonError(c, fiber.StatusBadRequest, "Username is required")
		case errors.Is(err, service.ErrUnknownUser):
			return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
		case errors.Is(err, service.ErrLabCodeRequired):
			return helper.JsonError(c, fiber.StatusBadRequest, "Lab code is required for trainees")
		case errors.Is(err, service.ErrLabCodeMismatch):
			log.Printf("[WARN] Login rejected for %s: lab code mismatch", req.Username)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid lab code")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	return helper.JsonOK(c, "Login successful", user)
}
