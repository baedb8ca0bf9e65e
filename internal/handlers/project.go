package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/portfolio-dev/portfolio/internal/models"
	"github.com/portfolio-dev/portfolio/internal/store"
	"gorm.io/datatypes"
)

type ProjectPayload struct {
	Title       *string    `json:"title"`
	Summary     *string    `json:"summary"`
	Details     *string    `json:"details"`
	Images      *[]string  `json:"images"`
	Firstname   *string    `json:"firstname"`
	Lastname    *string    `json:"lastname"`
	Email       *string    `json:"email"`
	Completion  *time.Time `json:"completion"`
	Description *string    `json:"description"`
}

func NewProjectResource(repo store.Repository[models.Project]) *Resource[models.Project, ProjectPayload] {
	return &Resource[models.Project, ProjectPayload]{
		Label:  "Project",
		Slug:   "project",
		Plural: "projects",
		Repo:   repo,
		Build:  buildProject,
		Apply:  applyProject,
	}
}

func buildProject(p ProjectPayload) (*models.Project, error) {
	if p.Title == nil || strings.TrimSpace(*p.Title) == "" {
		return nil, errors.New("Title is required")
	}

	m := models.Project{Images: datatypes.JSONSlice[string]{}}

	if err := applyProject(&m, p); err != nil {
		return nil, err
	}

	return &m, nil
}

func applyProject(m *models.Project, p ProjectPayload) error {
	if p.Title != nil {
		if strings.TrimSpace(*p.Title) == "" {
			return errors.New("Title is required")
		}
		m.Title = strings.TrimSpace(*p.Title)
	}

	// Email is optional on projects, but must be well-formed when given.
	if p.Email != nil {
		if *p.Email != "" && !validEmail(*p.Email) {
			return errors.New("A valid email is required")
		}
		m.Email = strings.TrimSpace(*p.Email)
	}

	if p.Summary != nil {
		m.Summary = strings.TrimSpace(*p.Summary)
	}

	if p.Details != nil {
		m.Details = strings.TrimSpace(*p.Details)
	}

	if p.Images != nil {
		m.Images = datatypes.JSONSlice[string](*p.Images)
	}

	if p.Firstname != nil {
		m.Firstname = strings.TrimSpace(*p.Firstname)
	}

	if p.Lastname != nil {
		m.Lastname = strings.TrimSpace(*p.Lastname)
	}

	if p.Completion != nil {
		m.Completion = p.Completion
	}

	if p.Description != nil {
		m.Description = strings.TrimSpace(*p.Description)
	}

	return nil
}
