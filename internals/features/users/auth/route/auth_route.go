package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"labtraining_backend/internals/features/users/auth/controller"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)
	auth := api.Group("/auth")
	auth.Post("/login", authCtrl.Login)
}
