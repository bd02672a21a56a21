package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/resumeforge/resumeforge-backend/internal/dto"
	"github.com/resumeforge/resumeforge-backend/internal/models"
	"github.com/resumeforge/resumeforge-backend/internal/sanitize"
	"github.com/resumeforge/resumeforge-backend/internal/validation"
)

var (
	ErrResumeNotFound  = errors.New("resume not found")
	ErrResumeForbidden = errors.New("resume belongs to another user")
)

type ResumeService struct {
	db *gorm.DB
}

func NewResumeService(db *gorm.DB) *ResumeService {
	return &ResumeService{db: db}
}

// Create validates and sanitizes the request, then persists a new resume
// owned by userID.
func (s *ResumeService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateResumeRequest) (*models.Resume, error) {
	if err := validation.CreateResume(req); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(sanitizeResumeData(req.Data))
	if err != nil {
		return nil, fmt.Errorf("failed to encode resume data: %w", err)
	}

	now := time.Now()
	resume := models.Resume{
		ID:         uuid.New(),
		UserID:     userID,
		Title:      sanitize.Text(req.Title),
		TemplateID: sanitize.Text(req.TemplateID),
		Data:       datatypes.JSON(payload),
		LastEdited: now,
	}

	if err := s.db.WithContext(ctx).Create(&resume).Error; err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}

	return &resume, nil
}

// Get returns the resume only to its owner. Existence is checked before
// ownership, so a missing record is always NotFound regardless of caller.
func (s *ResumeService) Get(ctx context.Context, resumeID, userID uuid.UUID) (*models.Resume, error) {
	var resume models.Resume
	if err := s.db.WithContext(ctx).First(&resume, "id = ?", resumeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, fmt.Errorf("failed to fetch resume: %w", err)
	}

	if resume.UserID != userID {
		return nil, ErrResumeForbidden
	}

	return &resume, nil
}

// List returns every resume owned by userID, most recently updated first.
// An owner with no resumes gets an empty slice, not an error.
func (s *ResumeService) List(ctx context.Context, userID uuid.UUID) ([]models.Resume, error) {
	var resumes []models.Resume
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&resumes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	return resumes, nil
}

// Update applies a partial update after the same existence and ownership
// checks as Get. Only fields present in the request are touched; every
// update refreshes updated_at and last_edited.
func (s *ResumeService) Update(ctx context.Context, resumeID, userID uuid.UUID, req *dto.UpdateResumeRequest) (*models.Resume, error) {
	if err := validation.UpdateResume(req); err != nil {
		return nil, err
	}

	resume, err := s.Get(ctx, resumeID, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"last_edited": time.Now(),
	}
	if req.Title != nil {
		updates["title"] = sanitize.Text(*req.Title)
	}
	if req.TemplateID != nil {
		updates["template_id"] = sanitize.Text(*req.TemplateID)
	}
	if req.Data != nil {
		payload, err := json.Marshal(sanitizeResumeData(req.Data))
		if err != nil {
			return nil, fmt.Errorf("failed to encode resume data: %w", err)
		}
		updates["data"] = datatypes.JSON(payload)
	}

	if err := s.db.WithContext(ctx).Model(resume).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update resume: %w", err)
	}

	var updated models.Resume
	if err := s.db.WithContext(ctx).First(&updated, "id = ?", resumeID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload resume: %w", err)
	}
	return &updated, nil
}

// Delete removes the resume permanently. A delete of an already-deleted id
// reports NotFound, not success.
func (s *ResumeService) Delete(ctx context.Context, resumeID, userID uuid.UUID) error {
	if _, err := s.Get(ctx, resumeID, userID); err != nil {
		return err
	}

	result := s.db.WithContext(ctx).Delete(&models.Resume{}, "id = ?", resumeID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete resume: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrResumeNotFound
	}
	return nil
}
