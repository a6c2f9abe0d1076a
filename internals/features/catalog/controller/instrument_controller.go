package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "labtraining_backend/internals/helpers"
	"labtraining_backend/internals/features/catalog/dto"
	"labtraining_backend/internals/features/catalog/model"
	"labtraining_backend/internals/features/catalog/service"
	trackingModel "labtraining_backend/internals/features/tracking/model"
)

type InstrumentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewInstrumentController(db *gorm.DB) *InstrumentController {
	return &InstrumentController{DB: db, Validator: validator.New()}
}

// 🟢 GET /api/instruments
func (ctrl *InstrumentController) GetAllInstruments(c *fiber.Ctx) error {
	var instruments []model.InstrumentModel
	if err := ctrl.DB.Find(&instruments).Error; err != nil {
		log.Printf("[ERROR] Failed to fetch instruments: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch instruments")
	}
	return helper.JsonList(c, "Instruments fetched", instruments, nil)
}

// 🟢 GET /api/instruments/:id
func (ctrl *InstrumentController) GetInstrumentByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var instrument model.InstrumentModel
	if err := ctrl.DB.Where("id = ?", id).First(&instrument).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Instrument not found")
	}
	return helper.JsonOK(c, "Instrument found", instrument)
}

// 🟢 GET /api/instruments/:id/full?traineeId=
// Materializes the whole chapter tree; with traineeId each element carries
// that trainee's validation/comfort rating when present.
func (ctrl *InstrumentController) GetInstrumentFull(c *fiber.Ctx) error {
	id := c.Params("id")
	traineeID := c.Query("traineeId")

	var instrument model.InstrumentModel
	if err := ctrl.DB.Where("id = ?", id).First(&instrument).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Instrument not found")
	}

	var chapters []model.ChapterModel
	if err := ctrl.DB.Where("instrument_id = ?", id).Order(`"order" ASC`).Find(&chapters).Error; err != nil {
		log.Printf("[ERROR] Failed to fetch chapters for instrument %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch instrument details")
	}

	chapterIDs := make([]string, 0, len(chapters))
	for _, ch := range chapters {
		chapterIDs = append(chapterIDs, ch.ID)
	}

	var subChapters []model.SubChapterModel
	var elements []model.TrainingElementModel
	if len(chapterIDs) > 0 {
		if err := ctrl.DB.Where("chapter_id IN ?", chapterIDs).Order(`"order" ASC`).Find(&subChapters).Error; err != nil {
			log.Printf("[ERROR] Failed to fetch sub-chapters for instrument %s: %v", id, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch instrument details")
		}

		subChapterIDs := make([]string, 0, len(subChapters))
		for _, sc := range subChapters {
			subChapterIDs = append(subChapterIDs, sc.ID)
		}
		if len(subChapterIDs) > 0 {
			if err := ctrl.DB.Where("sub_chapter_id IN ?", subChapterIDs).Order(`"order" ASC`).Find(&elements).Error; err != nil {
				log.Printf("[ERROR] Failed to fetch elements for instrument %s: %v", id, err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch instrument details")
			}
		}
	}

	var validations []trackingModel.ValidationModel
	var ratings []trackingModel.ComfortRatingModel
	if traineeID != "" {
		if err := ctrl.DB.Where("trainee_id = ?", traineeID).Find(&validations).Error; err != nil {
			log.Printf("[ERROR] Failed to fetch validations for trainee %s: %v", traineeID, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch instrument details")
		}
		if err := ctrl.DB.Where("trainee_id = ?", traineeID).Find(&ratings).Error; err != nil {
			log.Printf("[ERROR] Failed to fetch ratings for trainee %s: %v", traineeID, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch instrument details")
		}
	}

	tree := service.BuildInstrumentTree(instrument, chapters, subChapters, elements, validations, ratings)
	return helper.JsonOK(c, "Instrument tree assembled", tree)
}

// 🟢 POST /api/instruments
func (ctrl *InstrumentController) CreateInstrument(c *fiber.Ctx) error {
	var req dto.InstrumentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser failed: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	instrument := req.ToModel()
	if err := ctrl.DB.Create(instrument).Error; err != nil {
		log.Printf("[ERROR] Failed to create instrument: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create instrument")
	}
	return helper.JsonCreated(c, "Instrument created", instrument)
}

// 🟡 PATCH /api/instruments/:id
func (ctrl *InstrumentController) UpdateInstrument(c *fiber.Ctx) error {
	id := c.Params("id")

	var instrument model.InstrumentModel
	if err := ctrl.DB.Where("id = ?", id).First(&instrument).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Instrument not found")
	}

	var req dto.InstrumentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&instrument).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Failed to update instrument: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update instrument")
	}

	if err := ctrl.DB.Where("id = ?", id).First(&instrument).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload instrument")
	}
	return helper.JsonUpdated(c, "Instrument updated", instrument)
}

// 🔴 DELETE /api/instruments/:id
func (ctrl *InstrumentController) DeleteInstrument(c *fiber.Ctx) error {
	id := c.Params("id")

	var instrument model.InstrumentModel
	if err := ctrl.DB.Where("id = ?", id).First(&instrument).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Instrument not found")
	}

	if err := ctrl.DB.Delete(&instrument).Error; err != nil {
		log.Printf("[ERROR] Failed to delete instrument: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete instrument")
	}
	return helper.JsonDeleted(c, "Instrument deleted", fiber.Map{"id": id})
}
