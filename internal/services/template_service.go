package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/resumeforge/resumeforge-backend/internal/dto"
	"github.com/resumeforge/resumeforge-backend/internal/models"
	"github.com/resumeforge/resumeforge-backend/internal/sanitize"
)

var (
	ErrTemplateNotFound     = errors.New("template not found")
	ErrInvalidCategory      = errors.New("invalid template category")
	ErrTemplateNameRequired = errors.New("template name is required")
)

type TemplateService struct {
	db *gorm.DB
}

func NewTemplateService(db *gorm.DB) *TemplateService {
	return &TemplateService{db: db}
}

// List returns active templates, optionally filtered by category and
// ATS-friendliness.
func (s *TemplateService) List(ctx context.Context, category string, atsOnly bool) ([]models.Template, error) {
	query := s.db.WithContext(ctx).Where("is_active = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if atsOnly {
		query = query.Where("is_ats_friendly = ?", true)
	}

	var templates []models.Template
	if err := query.Order("name ASC").Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

func (s *TemplateService) Get(ctx context.Context, id uuid.UUID) (*models.Template, error) {
	var tmpl models.Template
	if err := s.db.WithContext(ctx).First(&tmpl, "id = ? AND is_active = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to fetch template: %w", err)
	}
	return &tmpl, nil
}

func (s *TemplateService) Create(ctx context.Context, req *dto.CreateTemplateRequest) (*models.Template, error) {
	name := sanitize.Text(req.Name)
	if name == "" {
		return nil, ErrTemplateNameRequired
	}
	if !validCategory(req.Category) {
		return nil, ErrInvalidCategory
	}

	tmpl := models.Template{
		ID:            uuid.New(),
		Name:          name,
		Description:   sanitize.Text(req.Description),
		PreviewImage:  sanitize.URL(req.PreviewImage),
		IsActive:      true,
		IsAtsFriendly: req.IsAtsFriendly,
		Category:      req.Category,
	}

	if err := s.db.WithContext(ctx).Create(&tmpl).Error; err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return &tmpl, nil
}

func (s *TemplateService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateTemplateRequest) (*models.Template, error) {
	var tmpl models.Template
	if err := s.db.WithContext(ctx).First(&tmpl, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to fetch template: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = sanitize.Text(*req.Name)
	}
	if req.Description != nil {
		updates["description"] = sanitize.Text(*req.Description)
	}
	if req.PreviewImage != nil {
		updates["preview_image"] = sanitize.URL(*req.PreviewImage)
	}
	if req.Category != nil {
		if !validCategory(*req.Category) {
			return nil, ErrInvalidCategory
		}
		updates["category"] = *req.Category
	}
	if req.IsAtsFriendly != nil {
		updates["is_ats_friendly"] = *req.IsAtsFriendly
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&tmpl).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update template: %w", err)
		}
	}
	return &tmpl, nil
}

// Deactivate retires a template from the public catalog without touching
// resumes that already reference it.
func (s *TemplateService) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Model(&models.Template{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate template: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

func validCategory(category string) bool {
	for _, c := range models.TemplateCategories {
		if c == category {
			return true
		}
	}
	return false
}
