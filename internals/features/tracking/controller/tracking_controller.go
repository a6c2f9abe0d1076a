package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	helper "labtraining_backend/internals/helpers"
	"labtraining_backend/internals/features/tracking/dto"
	"labtraining_backend/internals/features/tracking/repository"
	"labtraining_backend/internals/features/tracking/service"
	userModel "labtraining_backend/internals/features/users/user/model"
)

type TrackingController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.TrackingService
}

func NewTrackingController(db *gorm.DB, logger *zap.Logger) *TrackingController {
	repo := repository.NewTrackingRepository(db)
	return &TrackingController{
		DB:        db,
		Validator: validator.New(),
		Service:   service.NewTrackingService(repo, repo.Ratings(), repo, logger),
	}
}

/* ===============================
   Validations
=================================*/

// 🟢 GET /api/validations?traineeId=&elementId=
// traineeId wins when both filters are present.
func (ctrl *TrackingController) GetValidations(c *fiber.Ctx) error {
	traineeID := c.Query("traineeId")
	elementID := c.Query("elementId")

	repo := repository.NewTrackingRepository(ctrl.DB)
	switch {
	case traineeID != "":
		list, err := repo.ListByTrainee(c.Context(), traineeID)
		if err != nil {
			log.Printf("[ERROR] Failed to fetch validations: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch validations")
		}
		return helper.JsonList(c, "Validations fetched", list, nil)
	case elementID != "":
		list, err := repo.ListByElement(c.Context(), elementID)
		if err != nil {
			log.Printf("[ERROR] Failed to fetch validations: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch validations")
		}
		return helper.JsonList(c, "Validations fetched", list, nil)
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "traineeId or elementId query parameter is required")
	}
}

// 🟢 POST /api/validations
func (ctrl *TrackingController) CreateValidation(c *fiber.Ctx) error {
	var req dto.ValidationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	v := req.ToModel()
	modifiedBy := helper.ActorID(c, req.TrainerID)
	if err := ctrl.Service.Validate(c.Context(), v, modifiedBy); err != nil {
		if errors.Is(err, service.ErrValidationExists) {
			return helper.JsonError(c, fiber.StatusConflict, "Element already validated for this trainee")
		}
		log.Printf("[ERROR] Failed to create validation: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create validation")
	}
	return helper.JsonCreated(c, "Validation recorded", v)
}

// 🔴 DELETE /api/validations/:id
func (ctrl *TrackingController) DeleteValidation(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.Service.DeleteValidation(c.Context(), id, helper.ActorID(c)); err != nil {
		if errors.Is(err, service.ErrValidationNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Validation not found")
		}
		log.Printf("[ERROR] Failed to delete validation: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete validation")
	}
	return helper.JsonDeleted(c, "Validation deleted", fiber.Map{"id": id})
}

/* ===============================
   Comfort ratings
=================================*/

// 🟢 GET /api/comfort-ratings?traineeId=
func (ctrl *TrackingController) GetComfortRatings(c *fiber.Ctx) error {
	traineeID := c.Query("traineeId")
	if traineeID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "traineeId query parameter is required")
	}

	list, err := repository.NewTrackingRepository(ctrl.DB).Ratings().ListByTrainee(c.Context(), traineeID)
	if err != nil {
		log.Printf("[ERROR] Failed to fetch comfort ratings: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch comfort ratings")
	}
	return helper.JsonList(c, "Comfort ratings fetched", list, nil)
}

// 🟢 POST /api/comfort-ratings
// Upsert: 201 on first rating for the pair, 200 when an existing rating is
// revised in place.
func (ctrl *TrackingController) SubmitComfortRating(c *fiber.Ctx) error {
	var req dto.ComfortRatingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	modifiedBy := helper.ActorID(c, req.TraineeID)
	rating, created, err := ctrl.Service.Rate(c.Context(), req.ToModel(), modifiedBy)
	if err != nil {
		log.Printf("[ERROR] Failed to submit comfort rating: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit comfort rating")
	}
	if created {
		return helper.JsonCreated(c, "Comfort rating recorded", rating)
	}
	return helper.JsonUpdated(c, "Comfort rating updated", rating)
}

/* ===============================
   Trainee progress
=================================*/

// 🟢 GET /api/trainee/:id/progress
func (ctrl *TrackingController) GetTraineeProgress(c *fiber.Ctx) error {
	id := c.Params("id")

	var trainee userModel.UserModel
	if err := ctrl.DB.Where("id = ?", id).First(&trainee).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Trainee not found")
	}

	progress, err := ctrl.Service.Progress(c.Context(), id)
	if err != nil {
		log.Printf("[ERROR] Failed to compute progress for trainee %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute trainee progress")
	}
	return helper.JsonOK(c, "Trainee progress computed", progress)
}
