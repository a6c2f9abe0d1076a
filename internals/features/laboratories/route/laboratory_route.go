package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"labtraining_backend/internals/features/laboratories/controller"
)

func LaboratoryRoutes(api fiber.Router, db *gorm.DB) {
	labCtrl := controller.NewLaboratoryController(db)
	lab := api.Group("/laboratories")
	lab.Get("/", labCtrl.GetAllLaboratories)
	lab.Get("/:id", labCtrl.GetLaboratoryByID)
	lab.Get("/:id/stats", labCtrl.GetLaboratoryStats)
	lab.Post("/", labCtrl.CreateLaboratory)
	lab.Patch("/:id", labCtrl.UpdateLaboratory)
	lab.Delete("/:id", labCtrl.DeleteLaboratory)
}
