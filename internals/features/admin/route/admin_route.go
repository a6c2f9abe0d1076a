package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"labtraining_backend/internals/features/admin/controller"
)

func AdminRoutes(api fiber.Router, db *gorm.DB, logger *zap.Logger) {
	adminCtrl := controller.NewAdminController(db, logger)

	admin := api.Group("/admin")
	admin.Get("/metrics", adminCtrl.GetMetrics)
}
