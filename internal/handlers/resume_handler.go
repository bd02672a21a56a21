package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/resumeforge/resumeforge-backend/internal/dto"
	"github.com/resumeforge/resumeforge-backend/internal/middleware"
	"github.com/resumeforge/resumeforge-backend/internal/models"
	"github.com/resumeforge/resumeforge-backend/internal/services"
	"github.com/resumeforge/resumeforge-backend/internal/validation"
)

type ResumeHandler struct {
	resumeService *services.ResumeService
}

func NewResumeHandler(resumeService *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService}
}

// Create handles POST /resumes.
func (h *ResumeHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resume, err := h.resumeService.Create(c.UserContext(), userID, &req)
	if err != nil {
		return resumeError(c, err, "Failed to create resume")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    resumeResponse(resume),
	})
}

// List handles GET /resumes - the caller's resumes, most recently updated
// first.
func (h *ResumeHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	resumes, err := h.resumeService.List(c.UserContext(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch resumes",
		})
	}

	responses := make([]dto.ResumeResponse, len(resumes))
	for i := range resumes {
		responses[i] = resumeResponse(&resumes[i])
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": dto.ResumeListResponse{
			Resumes: responses,
			Total:   len(responses),
		},
	})
}

// Get handles GET /resumes/:id.
func (h *ResumeHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	resumeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidResumeID(c)
	}

	resume, err := h.resumeService.Get(c.UserContext(), resumeID, userID)
	if err != nil {
		return resumeError(c, err, "Failed to fetch resume")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    resumeResponse(resume),
	})
}

// Update handles PUT /resumes/:id - a partial update; absent fields stay
// untouched.
func (h *ResumeHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	resumeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidResumeID(c)
	}

	var req dto.UpdateResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resume, err := h.resumeService.Update(c.UserContext(), resumeID, userID, &req)
	if err != nil {
		return resumeError(c, err, "Failed to update resume")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    resumeResponse(resume),
	})
}

// Delete handles DELETE /resumes/:id.
func (h *ResumeHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	resumeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidResumeID(c)
	}

	if err := h.resumeService.Delete(c.UserContext(), resumeID, userID); err != nil {
		return resumeError(c, err, "Failed to delete resume")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Resume deleted",
	})
}

// resumeError maps service errors onto statuses by tag. Validation
// failures carry their per-field violations into the response.
func resumeError(c *fiber.Ctx, err error, fallback string) error {
	var verrs *validation.Errors
	if errors.As(err, &verrs) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "Invalid input",
			Details: verrs.Violations,
		})
	}
	if errors.Is(err, services.ErrResumeNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Resume not found",
		})
	}
	if errors.Is(err, services.ErrResumeForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "You do not have access to this resume",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: fallback,
	})
}

func resumeResponse(r *models.Resume) dto.ResumeResponse {
	return dto.ResumeResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		Title:      r.Title,
		TemplateID: r.TemplateID,
		Data:       r.Data,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
		LastEdited: r.LastEdited,
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

func invalidResumeID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: "Invalid resume ID",
	})
}
