package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-dev/portfolio/internal/models"
	"github.com/portfolio-dev/portfolio/internal/store"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type PortfolioInfoPayload struct {
	Name      *string   `json:"name"`
	Headline  *string   `json:"headline"`
	Bio       *string   `json:"bio"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Location  *string   `json:"location"`
	Github    *string   `json:"github"`
	Linkedin  *string   `json:"linkedin"`
	ResumeUrl *string   `json:"resumeUrl"`
	AvatarUrl *string   `json:"avatarUrl"`
	Skills    *[]string `json:"skills"`
}

func buildPortfolioInfo(p PortfolioInfoPayload) (*models.PortfolioInfo, error) {
	if p.Name == nil || strings.TrimSpace(*p.Name) == "" {
		return nil, errors.New("Name is required")
	}

	m := models.PortfolioInfo{Skills: datatypes.JSONSlice[string]{}}

	if err := applyPortfolioInfo(&m, p); err != nil {
		return nil, err
	}

	return &m, nil
}

// applyPortfolioInfo copies the fields present in the payload onto the
// document. A supplied empty value clears the field; an absent field is
// left untouched.
func applyPortfolioInfo(m *models.PortfolioInfo, p PortfolioInfoPayload) error {
	if p.Name != nil {
		if strings.TrimSpace(*p.Name) == "" {
			return errors.New("Name is required")
		}
		m.Name = strings.TrimSpace(*p.Name)
	}

	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}

	set(&m.Headline, p.Headline)
	set(&m.Bio, p.Bio)
	set(&m.Email, p.Email)
	set(&m.Phone, p.Phone)
	set(&m.Location, p.Location)
	set(&m.Github, p.Github)
	set(&m.Linkedin, p.Linkedin)
	set(&m.ResumeUrl, p.ResumeUrl)
	set(&m.AvatarUrl, p.AvatarUrl)

	if p.Skills != nil {
		m.Skills = datatypes.JSONSlice[string](*p.Skills)
	}

	return nil
}

// NewPortfolioInfoResource serves the admin by-id CRUD over the collection.
func NewPortfolioInfoResource(repo store.Repository[models.PortfolioInfo]) *Resource[models.PortfolioInfo, PortfolioInfoPayload] {
	return &Resource[models.PortfolioInfo, PortfolioInfoPayload]{
		Label:  "Portfolio info",
		Slug:   "portfolio info",
		Plural: "portfolio infos",
		Repo:   repo,
		Build:  buildPortfolioInfo,
		Apply:  applyPortfolioInfo,
	}
}

// PortfolioInfoHandler holds the singleton operations: a public read of the
// first document and the admin upsert.
type PortfolioInfoHandler struct {
	Repo store.Repository[models.PortfolioInfo]
}

func (h *PortfolioInfoHandler) GetSingle(ctx *gin.Context) {
	info, err := h.Repo.First(ctx.Request.Context())

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Portfolio info not found"})
			return
		}
		log.Error().Err(err).Msg("Failed to fetch portfolio info")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to fetch portfolio info"})
		return
	}

	ctx.JSON(http.StatusOK, info)
}

// Upsert merges the payload into the singleton document, creating it when
// the collection is still empty.
func (h *PortfolioInfoHandler) Upsert(ctx *gin.Context) {
	var payload PortfolioInfoPayload

	if err := ctx.BindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	existing, err := h.Repo.First(ctx.Request.Context())

	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Error().Err(err).Msg("Failed to fetch portfolio info")
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to fetch portfolio info"})
			return
		}

		created, buildErr := buildPortfolioInfo(payload)

		if buildErr != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": buildErr.Error()})
			return
		}

		if err := h.Repo.Create(ctx.Request.Context(), created); err != nil {
			log.Error().Err(err).Msg("Failed to create portfolio info")
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create portfolio info"})
			return
		}

		ctx.JSON(http.StatusOK, created)
		return
	}

	if err := applyPortfolioInfo(existing, payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Repo.Save(ctx.Request.Context(), existing); err != nil {
		log.Error().Err(err).Msg("Failed to update portfolio info")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update portfolio info"})
		return
	}

	ctx.JSON(http.StatusOK, existing)
}
