package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Team-DAS/profile-cell/internal/profile/models"
	"github.com/Team-DAS/profile-cell/internal/profile/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/health", h.HealthCheck)

	profiles := app.Group("/profiles")
	profiles.Get("/:userId", h.GetProfile)
	profiles.Put("/:userId/personal-info", h.ReplacePersonalInfo)

	profiles.Post("/:userId/skills", h.AddSkill)
	profiles.Delete("/:userId/skills/:skillId", h.DeleteSkill)

	profiles.Post("/:userId/experience", h.AddExperience)
	profiles.Put("/:userId/experience/:experienceId", h.UpdateExperience)
	profiles.Delete("/:userId/experience/:experienceId", h.DeleteExperience)

	profiles.Post("/:userId/education", h.AddEducation)
	profiles.Put("/:userId/education/:educationId", h.UpdateEducation)
	profiles.Delete("/:userId/education/:educationId", h.DeleteEducation)

	profiles.Post("/:userId/portfolio", h.AddPortfolioItem)
	profiles.Put("/:userId/portfolio/:portfolioId", h.UpdatePortfolioItem)
	profiles.Delete("/:userId/portfolio/:portfolioId", h.DeletePortfolioItem)
}

func (h *ProfileHandler) HealthCheck(c fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "healthy",
		"service": "profile-service",
		"time":    time.Now().Format(time.RFC3339),
	})
}

func (h *ProfileHandler) GetProfile(c fiber.Ctx) error {
	userID := c.Params("userId")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	profile, err := h.profileService.GetProfile(ctx, userID)
	if err != nil {
		return h.fail(c, err, "Failed to get profile")
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *ProfileHandler) ReplacePersonalInfo(c fiber.Ctx) error {
	userID := c.Params("userId")

	var req models.PersonalInfoRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "Invalid request body", nil)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return badRequest(c, "Validation failed", errs)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	info, err := h.profileService.ReplacePersonalInfo(ctx, userID, &req)
	if err != nil {
		return h.fail(c, err, "Failed to update personal info")
	}

	return c.Status(fiber.StatusOK).JSON(info)
}

func (h *ProfileHandler) AddSkill(c fiber.Ctx) error {
	userID := c.Params("userId")

	var req models.SkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "Invalid request body", nil)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return badRequest(c, "Validation failed", errs)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	skill, err := h.profileService.AddSkill(ctx, userID, &req)
	if err != nil {
		return h.fail(c, err, "Failed to add skill")
	}

	return c.Status(fiber.StatusCreated).JSON(skill)
}

func (h *ProfileHandler) DeleteSkill(c fiber.Ctx) error {
	userID := c.Params("userId")
	skillID := c.Params("skillId")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.profileService.DeleteSkill(ctx, userID, skillID); err != nil {
		return h.fail(c, err, "Failed to delete skill")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProfileHandler) AddExperience(c fiber.Ctx) error {
	userID := c.Params("userId")

	var req models.ExperienceRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "Invalid request body", nil)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return badRequest(c, "Validation failed", errs)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exp, err := h.profileService.AddExperience(ctx, userID, &req)
	if err != nil {
		return h.fail(c, err, "Failed to add experience")
	}

	return c.Status(fiber.StatusCreated).JSON(exp)
}

func (h *ProfileHandler) UpdateExperience(c fiber.Ctx) error {
	userID := c.Params("userId")
	experienceID := c.Params("experienceId")

	var req models.ExperienceRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "Invalid request body", nil)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return badRequest(c, "Validation failed", errs)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exp, err := h.profileService.UpdateExperience(ctx, userID, experienceID, &req)
	if err != nil {
		return h.fail(c, err, "Failed to update experience")
	}

	return c.Status(fiber.StatusOK).JSON(exp)
}

func (h *ProfileHandler) DeleteExperience(c fiber.Ctx) error {
	userID := c.Params("userId")
	experienceID := c.Params("experienceId")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.profileService.DeleteExperience(ctx, userID, experienceID); err != nil {
		return h.fail(c, err, "Failed to delete experience")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProfileHandler) AddEducation(c fiber.Ctx) error {
	userID := c.Params("userId")

	var req models.EducationRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "Invalid request body", nil)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return badRequest(c, "Validation failed", errs)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	edu, err := h.profileService.AddEducation(ctx, userID, &req)
	if err != nil {
		return h.fail(c, err, "Failed to add education")
	}

	return c.Status(fiber.StatusCreated).JSON(edu)
}

func (h *ProfileHandler) UpdateEducation(c fiber.Ctx) error {
	userID := c.Params("userId")
	educationID := c.Params("educationId")

	var req models.EducationRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "Invalid request body", nil)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return badRequest(c, "Validation failed", errs)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	edu, err := h.profileService.UpdateEducation(ctx, userID, educationID, &req)
	if err != nil {
		return h.fail(c, err, "Failed to update education")
	}

	return c.Status(fiber.StatusOK).JSON(edu)
}

func (h *ProfileHandler) DeleteEducation(c fiber.Ctx) error {
	userID := c.Params("userId")
	educationID := c.Params("educationId")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.profileService.DeleteEducation(ctx, userID, educationID); err != nil {
		return h.fail(c, err, "Failed to delete education")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProfileHandler) AddPortfolioItem(c fiber.Ctx) error {
	userID := c.Params("userId")

	var req models.PortfolioRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "Invalid request body", nil)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return badRequest(c, "Validation failed", errs)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	item, err := h.profileService.AddPortfolioItem(ctx, userID, &req)
	if err != nil {
		return h.fail(c, err, "Failed to add portfolio item")
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *ProfileHandler) UpdatePortfolioItem(c fiber.Ctx) error {
	userID := c.Params("userId")
	portfolioID := c.Params("portfolioId")

	var req models.PortfolioRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(c, "Invalid request body", nil)
	}
	if errs := req.Validate(); len(errs) > 0 {
		return badRequest(c, "Validation failed", errs)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	item, err := h.profileService.UpdatePortfolioItem(ctx, userID, portfolioID, &req)
	if err != nil {
		return h.fail(c, err, "Failed to update portfolio item")
	}

	return c.Status(fiber.StatusOK).JSON(item)
}

func (h *ProfileHandler) DeletePortfolioItem(c fiber.Ctx) error {
	userID := c.Params("userId")
	portfolioID := c.Params("portfolioId")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := h.profileService.DeletePortfolioItem(ctx, userID, portfolioID); err != nil {
		return h.fail(c, err, "Failed to delete portfolio item")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// fail translates service errors into the shared error body. Not-found
// sentinels map to 404, everything else is a 500.
func (h *ProfileHandler) fail(c fiber.Ctx, err error, message string) error {
	if errors.Is(err, service.ErrProfileNotFound) || errors.Is(err, service.ErrResourceNotFound) {
		return writeError(c, fiber.StatusNotFound, err.Error(), nil)
	}

	log.Printf("%s: %v", message, err)
	return writeError(c, fiber.StatusInternalServerError, message, nil)
}

func badRequest(c fiber.Ctx, message string, errs []models.ValidationError) error {
	return writeError(c, fiber.StatusBadRequest, message, errs)
}

func writeError(c fiber.Ctx, status int, message string, errs []models.ValidationError) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:    status,
		Message:   message,
		Timestamp: time.Now(),
		Path:      c.Path(),
		Errors:    errs,
	})
}
