package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	helper "labtraining_backend/internals/helpers"
	"labtraining_backend/internals/features/sessions/dto"
	"labtraining_backend/internals/features/sessions/model"
)

type TrainingSessionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTrainingSessionController(db *gorm.DB) *TrainingSessionController {
	return &TrainingSessionController{DB: db, Validator: validator.New()}
}

// 🟢 GET /api/training-sessions?trainerId=
func (ctrl *TrainingSessionController) GetTrainingSessions(c *fiber.Ctx) error {
	trainerID := c.Query("trainerId")
	if trainerID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "trainerId query parameter is required")
	}

	var sessions []model.TrainingSessionModel
	if err := ctrl.DB.Where("trainer_id = ?", trainerID).
		Order("updated_at DESC").
		Find(&sessions).Error; err != nil {
		log.Printf("[ERROR] Failed to fetch training sessions: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch training sessions")
	}
	return helper.JsonList(c, "Training sessions fetched", sessions, nil)
}

// 🟢 GET /api/training-sessions/:id
func (ctrl *TrainingSessionController) GetTrainingSessionByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var session model.TrainingSessionModel
	if err := ctrl.DB.Where("id = ?", id).First(&session).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Training session not found")
	}
	return helper.JsonOK(c, "Training session found", session)
}

// 🟢 POST /api/training-sessions
func (ctrl *TrainingSessionController) CreateTrainingSession(c *fiber.Ctx) error {
	var req dto.TrainingSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	session := req.ToModel()
	if err := ctrl.DB.Create(session).Error; err != nil {
		log.Printf("[ERROR] Failed to create training session: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create training session")
	}
	return helper.JsonCreated(c, "Training session created", session)
}

// 🟡 PATCH /api/training-sessions/:id
func (ctrl *TrainingSessionController) UpdateTrainingSession(c *fiber.Ctx) error {
	id := c.Params("id")

	var session model.TrainingSessionModel
	if err := ctrl.DB.Where("id = ?", id).First(&session).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Training session not found")
	}

	var req dto.TrainingSessionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.TraineeIDs != nil {
		updates["trainee_ids"] = pq.StringArray(*req.TraineeIDs)
	}
	if req.InstrumentIDs != nil {
		updates["instrument_ids"] = pq.StringArray(*req.InstrumentIDs)
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&session).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Failed to update training session: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update training session")
	}

	if err := ctrl.DB.Where("id = ?", id).First(&session).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload training session")
	}
	return helper.JsonUpdated(c, "Training session updated", session)
}

// 🔴 DELETE /api/training-sessions/:id
func (ctrl *TrainingSessionController) DeleteTrainingSession(c *fiber.Ctx) error {
	id := c.Params("id")

	var session model.TrainingSessionModel
	if err := ctrl.DB.Where("id = ?", id).First(&session).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Training session not found")
	}

	if err := ctrl.DB.Delete(&session).Error; err != nil {
		log.Printf("[ERROR] Failed to delete training session: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete training session")
	}
	return helper.JsonDeleted(c, "Training session deleted", fiber.Map{"id": id})
}
