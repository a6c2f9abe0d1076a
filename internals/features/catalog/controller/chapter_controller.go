package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "labtraining_backend/internals/helpers"
	"labtraining_backend/internals/features/catalog/dto"
	"labtraining_backend/internals/features/catalog/model"
)

type ChapterController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewChapterController(db *gorm.DB) *ChapterController {
	return &ChapterController{DB: db, Validator: validator.New()}
}

// 🟢 GET /api/chapters?instrumentId=
func (ctrl *ChapterController) GetChapters(c *fiber.Ctx) error {
	query := ctrl.DB.Model(&model.ChapterModel{})
	if instrumentID := c.Query("instrumentId"); instrumentID != "" {
		query = query.Where("instrument_id = ?", instrumentID)
	}

	var chapters []model.ChapterModel
	if err := query.Order(`"order" ASC`).Find(&chapters).Error; err != nil {
		log.Printf("[ERROR] Failed to fetch chapters: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch chapters")
	}
	return helper.JsonList(c, "Chapters fetched", chapters, nil)
}

// 🟢 GET /api/chapters/:id
func (ctrl *ChapterController) GetChapterByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var chapter model.ChapterModel
	if err := ctrl.DB.Where("id = ?", id).First(&chapter).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Chapter not found")
	}
	return helper.JsonOK(c, "Chapter found", chapter)
}

// 🟢 POST /api/chapters
func (ctrl *ChapterController) CreateChapter(c *fiber.Ctx) error {
	var req dto.ChapterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	chapter := req.ToModel()
	if err := ctrl.DB.Create(chapter).Error; err != nil {
		log.Printf("[ERROR] Failed to create chapter: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create chapter")
	}
	return helper.JsonCreated(c, "Chapter created", chapter)
}

// 🟡 PATCH /api/chapters/:id
func (ctrl *ChapterController) UpdateChapter(c *fiber.Ctx) error {
	id := c.Params("id")

	var chapter model.ChapterModel
	if err := ctrl.DB.Where("id = ?", id).First(&chapter).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Chapter not found")
	}

	var req dto.ChapterUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.InstrumentID != nil {
		updates["instrument_id"] = *req.InstrumentID
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Order != nil {
		updates["order"] = *req.Order
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&chapter).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Failed to update chapter: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update chapter")
	}

	if err := ctrl.DB.Where("id = ?", id).First(&chapter).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload chapter")
	}
	return helper.JsonUpdated(c, "Chapter updated", chapter)
}

// 🔴 DELETE /api/chapters/:id
func (ctrl *ChapterController) DeleteChapter(c *fiber.Ctx) error {
	id := c.Params("id")

	var chapter model.ChapterModel
	if err := ctrl.DB.Where("id = ?", id).First(&chapter).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Chapter not found")
	}

	if err := ctrl.DB.Delete(&chapter).Error; err != nil {
		log.Printf("[ERROR] Failed to delete chapter: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete chapter")
	}
	return helper.JsonDeleted(c, "Chapter deleted", fiber.Map{"id": id})
}
