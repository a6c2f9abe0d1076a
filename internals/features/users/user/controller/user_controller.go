package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "labtraining_backend/internals/helpers"
	"labtraining_backend/internals/features/users/user/dto"
	"labtraining_backend/internals/features/users/user/model"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validator: validator.New()}
}

// 🟢 GET /api/users?role=&laboratoryId=
func (ctrl *UserController) GetUsers(c *fiber.Ctx) error {
	role := c.Query("role")
	labID := c.Query("laboratoryId")

	query := ctrl.DB.Model(&model.UserModel{})
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if labID != "" {
		query = query.Where("laboratory_id = ?", labID)
	}

	var users []model.UserModel
	if err := query.Find(&users).Error; err != nil {
		log.Printf("[ERROR] Failed to fetch users: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}
	return helper.JsonList(c, "Users fetched", users, nil)
}

// 🟢 GET /api/users/:id
func (ctrl *UserController) GetUserByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var user model.UserModel
	if err := ctrl.DB.Where("id = ?", id).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonOK(c, "User found", user)
}

// 🟢 POST /api/users
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.UserRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser failed: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	user := req.ToModel()
	if err := ctrl.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Username already in use")
		}
		log.Printf("[ERROR] Failed to create user: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}
	return helper.JsonCreated(c, "User created", user)
}

// 🟡 PATCH /api/users/:id
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var user model.UserModel
	if err := ctrl.DB.Where("id = ?", id).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.Password != nil {
		updates["password"] = *req.Password
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.LaboratoryID != nil {
		updates["laboratory_id"] = *req.LaboratoryID
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&user).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Failed to update user: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	if err := ctrl.DB.Where("id = ?", id).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload user")
	}
	return helper.JsonUpdated(c, "User updated", user)
}

// 🔴 DELETE /api/users/:id
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var user model.UserModel
	if err := ctrl.DB.Where("id = ?", id).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	if err := ctrl.DB.Delete(&user).Error; err != nil {
		log.Printf("[ERROR] Failed to delete user: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	return helper.JsonDeleted(c, "User deleted", fiber.Map{"id": id})
}
