package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/portfolio-dev/portfolio/internal/models"
	"github.com/portfolio-dev/portfolio/internal/store"
)

type EducationPayload struct {
	Title       *string    `json:"title"`
	Firstname   *string    `json:"firstname"`
	Lastname    *string    `json:"lastname"`
	Email       *string    `json:"email"`
	Completion  *time.Time `json:"completion"`
	Description *string    `json:"description"`
}

// NewEducationResource serves the qualifications collection; education is
// the storage name, qualification the API-facing one.
func NewEducationResource(repo store.Repository[models.Education]) *Resource[models.Education, EducationPayload] {
	return &Resource[models.Education, EducationPayload]{
		Label:  "Qualification",
		Slug:   "qualification",
		Plural: "qualifications",
		Repo:   repo,
		Build:  buildEducation,
		Apply:  applyEducation,
	}
}

func buildEducation(p EducationPayload) (*models.Education, error) {
	if p.Title == nil || strings.TrimSpace(*p.Title) == "" {
		return nil, errors.New("Title is required")
	}

	if p.Email == nil || !validEmail(*p.Email) {
		return nil, errors.New("A valid email is required")
	}

	var m models.Education

	if err := applyEducation(&m, p); err != nil {
		return nil, err
	}

	return &m, nil
}

func applyEducation(m *models.Education, p EducationPayload) error {
	if p.Title != nil {
		if strings.TrimSpace(*p.Title) == "" {
			return errors.New("Title is required")
		}
		m.Title = strings.TrimSpace(*p.Title)
	}

	if p.Email != nil {
		if !validEmail(*p.Email) {
			return errors.New("A valid email is required")
		}
		m.Email = strings.TrimSpace(*p.Email)
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
