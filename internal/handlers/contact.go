package handlers

import (
	"errors"
	"strings"

	"github.com/portfolio-dev/portfolio/internal/models"
	"github.com/portfolio-dev/portfolio/internal/store"
)

type ContactPayload struct {
	Firstname     *string `json:"firstname"`
	Lastname      *string `json:"lastname"`
	Email         *string `json:"email"`
	ContactNumber *string `json:"contactNumber"`
	Message       *string `json:"message"`
}

func NewContactResource(repo store.Repository[models.Contact]) *Resource[models.Contact, ContactPayload] {
	return &Resource[models.Contact, ContactPayload]{
		Label:  "Contact",
		Slug:   "contact",
		Plural: "contacts",
		Repo:   repo,
		Build:  buildContact,
		Apply:  applyContact,
	}
}

func buildContact(p ContactPayload) (*models.Contact, error) {
	if p.Email == nil || !validEmail(*p.Email) {
		return nil, errors.New("A valid email is required")
	}

	var m models.Contact

	if err := applyContact(&m, p); err != nil {
		return nil, err
	}

	return &m, nil
}

func applyContact(m *models.Contact, p ContactPayload) error {
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

	if p.ContactNumber != nil {
		m.ContactNumber = strings.TrimSpace(*p.ContactNumber)
	}

	if p.Message != nil {
		m.Message = strings.TrimSpace(*p.Message)
	}

	return nil
}
