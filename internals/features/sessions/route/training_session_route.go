package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"labtraining_backend/internals/features/sessions/controller"
)

func TrainingSessionRoutes(api fiber.Router, db *gorm.DB) {
	sessionCtrl := controller.NewTrainingSessionController(db)

	session := api.Group("/training-sessions")
	session.Get("/", sessionCtrl.GetTrainingSessions)
	session.Get("/:id", sessionCtrl.GetTrainingSessionByID)
	session.Post("/", sessionCtrl.CreateTrainingSession)
	session.Patch("/:id", sessionCtrl.UpdateTrainingSession)
	session.Delete("/:id", sessionCtrl.DeleteTrainingSession)
}
