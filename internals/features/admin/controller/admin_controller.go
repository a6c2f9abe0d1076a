package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	helper "labtraining_backend/internals/helpers"
	"labtraining_backend/internals/configs"
	"labtraining_backend/internals/constants"
	"labtraining_backend/internals/features/admin/service"
	labModel "labtraining_backend/internals/features/laboratories/model"
	trackingModel "labtraining_backend/internals/features/tracking/model"
	userModel "labtraining_backend/internals/features/users/user/model"
)

type AdminController struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewAdminController(db *gorm.DB, logger *zap.Logger) *AdminController {
	return &AdminController{DB: db, Log: logger}
}

// 🟢 GET /api/admin/metrics
// Loads the four collections and reduces them in memory; the dataset is small
// (hundreds of trainees) so one pass beats four aggregate queries.
func (ctrl *AdminController) GetMetrics(c *fiber.Ctx) error {
	var labs []labModel.LaboratoryModel
	if err := ctrl.DB.Find(&labs).Error; err != nil {
		log.Printf("[ERROR] Failed to fetch laboratories: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute metrics")
	}

	var trainees []userModel.UserModel
	if err := ctrl.DB.Where("role = ?", constants.RoleTrainee).Find(&trainees).Error; err != nil {
		log.Printf("[ERROR] Failed to fetch trainees: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute metrics")
	}

	var ratings []trackingModel.ComfortRatingModel
	if err := ctrl.DB.Find(&ratings).Error; err != nil {
		log.Printf("[ERROR] Failed to fetch comfort ratings: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute metrics")
	}

	var validations []trackingModel.ValidationModel
	if err := ctrl.DB.Find(&validations).Error; err != nil {
		log.Printf("[ERROR] Failed to fetch validations: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute metrics")
	}

	metrics := service.ComputeMetrics(labs, trainees, ratings, validations, configs.App.AlertThreshold)

	ctrl.Log.Info("admin metrics computed",
		zap.Int("labCount", metrics.LabCount),
		zap.Int("traineeCount", metrics.TraineeCount),
		zap.Int("alertCount", metrics.AlertCount),
	)
	return helper.JsonOK(c, "Metrics computed", metrics)
}
