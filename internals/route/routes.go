package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	adminRoute "labtraining_backend/internals/features/admin/route"
	catalogRoute "labtraining_backend/internals/features/catalog/route"
	historyRoute "labtraining_backend/internals/features/history/route"
	labRoute "labtraining_backend/internals/features/laboratories/route"
	sessionRoute "labtraining_backend/internals/features/sessions/route"
	trackingRoute "labtraining_backend/internals/features/tracking/route"
	authRoute "labtraining_backend/internals/features/users/auth/route"
	userRoute "labtraining_backend/internals/features/users/user/route"
)

// SetupRoutes mounts every feature under /api.
func SetupRoutes(app *fiber.App, db *gorm.DB, logger *zap.Logger) {
	api := app.Group("/api")

	log.Println("[INFO] Setting up auth routes...")
	authRoute.AuthRoutes(api, db)

	log.Println("[INFO] Setting up laboratory routes...")
	labRoute.LaboratoryRoutes(api, db)

	log.Println("[INFO] Setting up user routes...")
	userRoute.UserRoutes(api, db)

	log.Println("[INFO] Setting up catalog routes...")
	catalogRoute.CatalogRoutes(api, db)

	log.Println("[INFO] Setting up tracking routes...")
	trackingRoute.TrackingRoutes(api, db, logger)

	log.Println("[INFO] Setting up training session routes...")
	sessionRoute.TrainingSessionRoutes(api, db)

	log.Println("[INFO] Setting up modification history routes...")
	historyRoute.ModificationHistoryRoutes(api, db)

	log.Println("[INFO] Setting up admin routes...")
	adminRoute.AdminRoutes(api, db, logger)

	log.Println("[INFO] ✅ All routes registered")
}
