package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminService "labtraining_backend/internals/features/admin/service"
	"labtraining_backend/internals/features/laboratories/dto"
	"labtraining_backend/internals/features/laboratories/model"
	trackingModel "labtraining_backend/internals/features/tracking/model"
	userModel "labtraining_backend/internals/features/users/user/model"
	"labtraining_backend/internals/configs"
	"labtraining_backend/internals/constants"
	helper "labtraining_backend/internals/helpers"
)

type LaboratoryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLaboratoryController(db *gorm.DB) *LaboratoryController {
	return &LaboratoryController{DB: db, Validator: validator.New()}
}

// 🟢 GET /api/laboratories
func (ctrl *LaboratoryController) GetAllLaboratories(c *fiber.Ctx) error {
	var labs []model.LaboratoryModel
	if err := ctrl.DB.Find(&labs).Error; err != nil {
		log.Printf("[ERROR] Failed to fetch laboratories: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch laboratories")
	}
	return helper.JsonList(c, "Laboratories fetched", labs, nil)
}

// 🟢 GET /api/laboratories/:id
func (ctrl *LaboratoryController) GetLaboratoryByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var lab model.LaboratoryModel
	if err := ctrl.DB.Where("id = ?", id).First(&lab).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Laboratory not found")
	}
	return helper.JsonOK(c, "Laboratory found", lab)
}

// 🟢 GET /api/laboratories/:id/stats
func (ctrl *LaboratoryController) GetLaboratoryStats(c *fiber.Ctx) error {
	id := c.Params("id")

	var lab model.LaboratoryModel
	if err := ctrl.DB.Where("id = ?", id).First(&lab).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Laboratory not found")
	}

	var trainees []userModel.UserModel
	if err := ctrl.DB.
		Where("role = ? AND laboratory_id = ?", constants.RoleTrainee, lab.ID).
		Find(&trainees).Error; err != nil {
		log.Printf("[ERROR] Failed to fetch trainees for lab stats: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch laboratory stats")
	}

	traineeIDs := make([]string, 0, len(trainees))
	for _, t := range trainees {
		traineeIDs = append(traineeIDs, t.ID)
	}

	var ratings []trackingModel.ComfortRatingModel
	var validations []trackingModel.ValidationModel
	if len(traineeIDs) > 0 {
		if err := ctrl.DB.Where("trainee_id IN ?", traineeIDs).Find(&ratings).Error; err != nil {
			log.Printf("[ERROR] Failed to fetch ratings for lab stats: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch laboratory stats")
		}
		if err := ctrl.DB.Where("trainee_id IN ?", traineeIDs).Find(&validations).Error; err != nil {
			log.Printf("[ERROR] Failed to fetch validations for lab stats: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch laboratory stats")
		}
	}

	metrics := adminService.ComputeMetrics(
		[]model.LaboratoryModel{lab}, trainees, ratings, validations,
		configs.App.AlertThreshold,
	)
	summary := metrics.Laboratories[0]

	return helper.JsonOK(c, "Laboratory stats computed", dto.LaboratoryStatsResponse{
		Laboratory:    lab,
		UserCount:     summary.UserCount,
		AvgComfort:    summary.AvgComfort,
		TrainingCount: summary.TrainingCount,
	})
}

// 🟢 POST /api/laboratories
func (ctrl *LaboratoryController) CreateLaboratory(c *fiber.Ctx) error {
	var req dto.LaboratoryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser failed: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	lab := req.ToModel()
	if err := ctrl.DB.Create(lab).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Laboratory code already in use")
		}
		log.Printf("[ERROR] Failed to create laboratory: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create laboratory")
	}
	return helper.JsonCreated(c, "Laboratory created", lab)
}

// 🟡 PATCH /api/laboratories/:id
func (ctrl *LaboratoryController) UpdateLaboratory(c *fiber.Ctx) error {
	id := c.Params("id")

	var lab model.LaboratoryModel
	if err := ctrl.DB.Where("id = ?", id).First(&lab).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Laboratory not found")
	}

	var req dto.LaboratoryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Code != nil {
		updates["code"] = *req.Code
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&lab).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Failed to update laboratory: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update laboratory")
	}

	if err := ctrl.DB.Where("id = ?", id).First(&lab).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload laboratory")
	}
	return helper.JsonUpdated(c, "Laboratory updated", lab)
}

// 🔴 DELETE /api/laboratories/:id
func (ctrl *LaboratoryController) DeleteLaboratory(c *fiber.Ctx) error {
	id := c.Params("id")

	var lab model.LaboratoryModel
	if err := ctrl.DB.Where("id = ?", id).First(&lab).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Laboratory not found")
	}

	if err := ctrl.DB.Delete(&lab).Error; err != nil {
		log.Printf("[ERROR] Failed to delete laboratory: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete laboratory")
	}
	return helper.JsonDeleted(c, "Laboratory deleted", fiber.Map{"id": id})
}
