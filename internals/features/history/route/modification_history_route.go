package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"labtraining_backend/internals/features/history/controller"
)

func ModificationHistoryRoutes(api fiber.Router, db *gorm.DB) {
	historyCtrl := controller.NewModificationHistoryController(db)

	history := api.Group("/modification-history")
	history.Get("/", historyCtrl.GetModificationHistory)
	history.Get("/all", historyCtrl.GetAllModificationHistory)
}
