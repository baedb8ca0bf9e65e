package handlers

import (
	"errors"
	"strings"

	"github.com/portfolio-dev/portfolio/internal/models"
	"github.com/portfolio-dev/portfolio/internal/store"
	"gorm.io/datatypes"
)

type ServicePayload struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Checklist   *[]string `json:"checklist"`
	Icon        *string   `json:"icon"`
	Color       *string   `json:"color"`
}

func NewServiceResource(repo store.Repository[models.Service]) *Resource[models.Service, ServicePayload] {
	return &Resource[models.Service, ServicePayload]{
		Label:  "Service",
		Slug:   "service",
		Plural: "services",
		Repo:   repo,
		Build:  buildService,
		Apply:  applyService,
	}
}

func buildService(p ServicePayload) (*models.Service, error) {
	if p.Title == nil || strings.TrimSpace(*p.Title) == "" {
		return nil, errors.New("Title is required")
	}

	if p.Description == nil || strings.TrimSpace(*p.Description) == "" {
		return nil, errors.New("Description is required")
	}

	m := models.Service{Checklist: datatypes.JSONSlice[string]{}}

	if err := applyService(&m, p); err != nil {
		return nil, err
	}

	return &m, nil
}

func applyService(m *models.Service, p ServicePayload) error {
	if p.Title != nil {
		if strings.TrimSpace(*p.Title) == "" {
			return errors.New("Title is required")
		}
		m.Title = strings.TrimSpace(*p.Title)
	}

	if p.Description != nil {
		if strings.TrimSpace(*p.Description) == "" {
			return errors.New("Description is required")
		}
		m.Description = strings.TrimSpace(*p.Description)
	}

	if p.Checklist != nil {
		m.Checklist = datatypes.JSONSlice[string](*p.Checklist)
	}

	if p.Icon != nil {
		m.Icon = strings.TrimSpace(*p.Icon)
	}

	if p.Color != nil {
		m.Color = strings.TrimSpace(*p.Color)
	}

	return nil
}
