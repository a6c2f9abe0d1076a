package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "labtraining_backend/internals/helpers"
	"labtraining_backend/internals/features/catalog/dto"
	"labtraining_backend/internals/features/catalog/model"
	"labtraining_backend/internals/features/catalog/repository"
	"labtraining_backend/internals/features/catalog/service"
)

type TrainingElementController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.ElementService
}

func NewTrainingElementController(db *gorm.DB) *TrainingElementController {
	return &TrainingElementController{
		DB:        db,
		Validator: validator.New(),
		Service:   service.NewElementService(repository.NewElementRepository(db)),
	}
}

// 🟢 GET /api/training-elements?subChapterId=
func (ctrl *TrainingElementController) GetTrainingElements(c *fiber.Ctx) error {
	query := ctrl.DB.Model(&model.TrainingElementModel{})
	if subChapterID := c.Query("subChapterId"); subChapterID != "" {
		query = query.Where("sub_chapter_id = ?", subChapterID)
	}

	var elements []model.TrainingElementModel
	if err := query.Order(`"order" ASC`).Find(&elements).Error; err != nil {
		log.Printf("[ERROR] Failed to fetch training elements: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch training elements")
	}
	return helper.JsonList(c, "Training elements fetched", elements, nil)
}

// 🟢 GET /api/training-elements/:id
func (ctrl *TrainingElementController) GetTrainingElementByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var element model.TrainingElementModel
	if err := ctrl.DB.Where("id = ?", id).First(&element).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Training element not found")
	}
	return helper.JsonOK(c, "Training element found", element)
}

// 🟢 POST /api/training-elements
// Element and its audit row commit in one transaction.
func (ctrl *TrainingElementController) CreateTrainingElement(c *fiber.Ctx) error {
	var req dto.TrainingElementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	element := req.ToModel()
	if err := ctrl.Service.Create(c.Context(), element, helper.ActorID(c)); err != nil {
		log.Printf("[ERROR] Failed to create training element: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create training element")
	}
	return helper.JsonCreated(c, "Training element created", element)
}

// 🟡 PATCH /api/training-elements/:id
func (ctrl *TrainingElementController) UpdateTrainingElement(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.TrainingElementUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	element, err := ctrl.Service.Update(c.Context(), id, &req, helper.ActorID(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrElementNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Training element not found")
		case errors.Is(err, service.ErrNoElementFields):
			return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
		}
		log.Printf("[ERROR] Failed to update training element: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update training element")
	}
	return helper.JsonUpdated(c, "Training element updated", element)
}

// 🔴 DELETE /api/training-elements/:id
func (ctrl *TrainingElementController) DeleteTrainingElement(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.Service.Delete(c.Context(), id, helper.ActorID(c)); err != nil {
		if errors.Is(err, service.ErrElementNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Training element not found")
		}
		log.Printf("[ERROR] Failed to delete training element: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete training element")
	}
	return helper.JsonDeleted(c, "Training element deleted", fiber.Map{"id": id})
}
