package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"labtraining_backend/internals/features/catalog/controller"
)

func CatalogRoutes(api fiber.Router, db *gorm.DB) {
	instrumentCtrl := controller.NewInstrumentController(db)
	chapterCtrl := controller.NewChapterController(db)
	subChapterCtrl := controller.NewSubChapterController(db)
	elementCtrl := controller.NewTrainingElementController(db)

	instrument := api.Group("/instruments")
	instrument.Get("/", instrumentCtrl.GetAllInstruments)
	instrument.Get("/:id", instrumentCtrl.GetInstrumentByID)
	instrument.Get("/:id/full", instrumentCtrl.GetInstrumentFull)
	instrument.Post("/", instrumentCtrl.CreateInstrument)
	instrument.Patch("/:id", instrumentCtrl.UpdateInstrument)
	instrument.Delete("/:id", instrumentCtrl.DeleteInstrument)

	chapter := api.Group("/chapters")
	chapter.Get("/", chapterCtrl.GetChapters)
	chapter.Get("/:id", chapterCtrl.GetChapterByID)
	chapter.Post("/", chapterCtrl.CreateChapter)
	chapter.Patch("/:id", chapterCtrl.UpdateChapter)
	chapter.Delete("/:id", chapterCtrl.DeleteChapter)

	subChapter := api.Group("/sub-chapters")
	subChapter.Get("/", subChapterCtrl.GetSubChapters)
	subChapter.Get("/:id", subChapterCtrl.GetSubChapterByID)
	subChapter.Post("/", subChapterCtrl.CreateSubChapter)
	subChapter.Patch("/:id", subChapterCtrl.UpdateSubChapter)
	subChapter.Delete("/:id", subChapterCtrl.DeleteSubChapter)

	element := api.Group("/training-elements")
	element.Get("/", elementCtrl.GetTrainingElements)
	element.Get("/:id", elementCtrl.GetTrainingElementByID)
	element.Post("/", elementCtrl.CreateTrainingElement)
	element.Patch("/:id", elementCtrl.UpdateTrainingElement)
	element.Delete("/:id", elementCtrl.DeleteTrainingElement)
}
