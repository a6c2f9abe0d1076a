package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"labtraining_backend/internals/features/tracking/controller"
)

func TrackingRoutes(api fiber.Router, db *gorm.DB, logger *zap.Logger) {
	trackingCtrl := controller.NewTrackingController(db, logger)

	validation := api.Group("/validations")
	validation.Get("/", trackingCtrl.GetValidations)
	validation.Post("/", trackingCtrl.CreateValidation)
	validation.Delete("/:id", trackingCtrl.DeleteValidation)

	rating := api.Group("/comfort-ratings")
	rating.Get("/", trackingCtrl.GetComfortRatings)
	rating.Post("/", trackingCtrl.SubmitComfortRating)

	api.Get("/trainee/:id/progress", trackingCtrl.GetTraineeProgress)
}
