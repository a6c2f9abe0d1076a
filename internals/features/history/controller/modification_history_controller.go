package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "labtraining_backend/internals/helpers"
	"labtraining_backend/internals/features/history/model"
)

type ModificationHistoryController struct {
	DB *gorm.DB
}

func NewModificationHistoryController(db *gorm.DB) *ModificationHistoryController {
	return &ModificationHistoryController{DB: db}
}

// 🟢 GET /api/modification-history?entityType=&entityId=
// Both filters optional; entityId alone is ignored without its type.
func (ctrl *ModificationHistoryController) GetModificationHistory(c *fiber.Ctx) error {
	entityType := c.Query("entityType")
	entityID := c.Query("entityId")

	query := ctrl.DB.Model(&model.ModificationHistoryModel{})
	if entityType != "" {
		query = query.Where("entity_type = ?", entityType)
		if entityID != "" {
			query = query.Where("entity_id = ?", entityID)
		}
	}

	var entries []model.ModificationHistoryModel
	if err := query.Order("modified_at DESC").Find(&entries).Error; err != nil {
		log.Printf("[ERROR] Failed to fetch modification history: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch modification history")
	}
	return helper.JsonList(c, "Modification history fetched", entries, nil)
}

// 🟢 GET /api/modification-history/all?page=&per_page=
func (ctrl *ModificationHistoryController) GetAllModificationHistory(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	var total int64
	if err := ctrl.DB.Model(&model.ModificationHistoryModel{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] Failed to count modification history: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch modification history")
	}

	var entries []model.ModificationHistoryModel
	if err := ctrl.DB.Model(&model.ModificationHistoryModel{}).
		Order("modified_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&entries).Error; err != nil {
		log.Printf("[ERROR] Failed to fetch modification history: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch modification history")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Modification history fetched", entries, &pagination)
}
