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

type SubChapterController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSubChapterController(db *gorm.DB) *SubChapterController {
	return &SubChapterController{DB: db, Validator: validator.New()}
}

// 🟢 GET /api/sub-chapters?chapterId=
func (ctrl *SubChapterController) GetSubChapters(c *fiber.Ctx) error {
	query := ctrl.DB.Model(&model.SubChapterModel{})
	if chapterID := c.Query("chapterId"); chapterID != "" {
		query = query.Where("chapter_id = ?", chapterID)
	}

	var subChapters []model.SubChapterModel
	if err := query.Order(`"order" ASC`).Find(&subChapters).Error; err != nil {
		log.Printf("[ERROR] Failed to fetch sub-chapters: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch sub-chapters")
	}
	return helper.JsonList(c, "Sub-chapters fetched", subChapters, nil)
}

// 🟢 GET /api/sub-chapters/:id
func (ctrl *SubChapterController) GetSubChapterByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var subChapter model.SubChapterModel
	if err := ctrl.DB.Where("id = ?", id).First(&subChapter).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sub-chapter not found")
	}
	return helper.JsonOK(c, "Sub-chapter found", subChapter)
}

// 🟢 POST /api/sub-chapters
func (ctrl *SubChapterController) CreateSubChapter(c *fiber.Ctx) error {
	var req dto.SubChapterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	subChapter := req.ToModel()
	if err := ctrl.DB.Create(subChapter).Error; err != nil {
		log.Printf("[ERROR] Failed to create sub-chapter: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create sub-chapter")
	}
	return helper.JsonCreated(c, "Sub-chapter created", subChapter)
}

// 🟡 PATCH /api/sub-chapters/:id
func (ctrl *SubChapterController) UpdateSubChapter(c *fiber.Ctx) error {
	id := c.Params("id")

	var subChapter model.SubChapterModel
	if err := ctrl.DB.Where("id = ?", id).First(&subChapter).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sub-chapter not found")
	}

	var req dto.SubChapterUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.ChapterID != nil {
		updates["chapter_id"] = *req.ChapterID
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

	if err := ctrl.DB.Model(&subChapter).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Failed to update sub-chapter: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update sub-chapter")
	}

	if err := ctrl.DB.Where("id = ?", id).First(&subChapter).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload sub-chapter")
	}
	return helper.JsonUpdated(c, "Sub-chapter updated", subChapter)
}

// 🔴 DELETE /api/sub-chapters/:id
func (ctrl *SubChapterController) DeleteSubChapter(c *fiber.Ctx) error {
	id := c.Params("id")

	var subChapter model.SubChapterModel
	if err := ctrl.DB.Where("id = ?", id).First(&subChapter).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sub-chapter not found")
	}

	if err := ctrl.DB.Delete(&subChapter).Error; err != nil {
		log.Printf("[ERROR] Failed to delete sub-chapter: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete sub-chapter")
	}
	return helper.JsonDeleted(c, "Sub-chapter deleted", fiber.Map{"id": id})
}
