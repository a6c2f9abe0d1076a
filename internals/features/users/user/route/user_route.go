package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"labtraining_backend/internals/features/users/user/controller"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewUserController(db)
	user := api.Group("/users")
	user.Get("/", userCtrl.GetUsers)
	user.Get("/:id", userCtrl.GetUserByID)
	user.Post("/", userCtrl.CreateUser)
	user.Patch("/:id", userCtrl.UpdateUser)
	user.Delete("/:id", userCtrl.DeleteUser)
}
