package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-dev/portfolio/internal/middleware"
	"github.com/portfolio-dev/portfolio/internal/models"
	"github.com/portfolio-dev/portfolio/internal/store"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserPayload struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type UsersHandler struct {
	Store        store.Users
	CookieDomain string
}

// Signup creates a user account. It does not sign the caller in; the client
// must call signin separately.
func (h *UsersHandler) Signup(ctx *gin.Context) {
	var req SignupRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validEmail(email) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "A valid email is required"})
		return
	}

	if len(req.Password) < 6 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)

	if err != nil {
		log.Error().Err(err).Msg("Failed to hash password")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(passwordHash),
	}

	if err := h.Store.Create(ctx.Request.Context(), &user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}
		log.Error().Err(err).Msg("Failed to create user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Successfully signed up!",
		"user":    user,
	})
}

func (h *UsersHandler) List(ctx *gin.Context) {
	users, err := h.Store.List(ctx.Request.Context())

	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch users")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to fetch users"})
		return
	}

	if users == nil {
		users = []models.User{}
	}

	ctx.JSON(http.StatusOK, users)
}

func (h *UsersHandler) Read(ctx *gin.Context) {
	user, ok := h.fetch(ctx)

	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *UsersHandler) Update(ctx *gin.Context) {
	user, ok := h.fetch(ctx)

	if !ok {
		return
	}

	var payload UserPayload

	if err := ctx.BindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if payload.Name != nil {
		if strings.TrimSpace(*payload.Name) == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
			return
		}
		user.Name = strings.TrimSpace(*payload.Name)
	}

	if payload.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*payload.Email))

		if !validEmail(email) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "A valid email is required"})
			return
		}

		if email != user.Email {
			if existing, err := h.Store.FindByEmail(ctx.Request.Context(), email); err == nil && existing.ID != user.ID {
				ctx.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
				return
			}
		}

		user.Email = email
	}

	if payload.Password != nil {
		if len(*payload.Password) < 6 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
			return
		}

		passwordHash, err := bcrypt.GenerateFromPassword([]byte(*payload.Password), bcrypt.DefaultCost)

		if err != nil {
			log.Error().Err(err).Msg("Failed to hash password")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		user.PasswordHash = string(passwordHash)
	}

	if err := h.Store.Save(ctx.Request.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}
		log.Error().Err(err).Msg("Failed to update user")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *UsersHandler) Remove(ctx *gin.Context) {
	user, ok := h.fetch(ctx)

	if !ok {
		return
	}

	if err := h.Store.Delete(ctx.Request.Context(), user); err != nil {
		log.Error().Err(err).Msg("Failed to remove user")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to remove user"})
		return
	}

	// Deleting your own account also ends the session.
	if current, err := middleware.CurrentUser(ctx); err == nil && current.ID == user.ID {
		http.SetCookie(ctx.Writer, &http.Cookie{
			Name:     "token",
			Value:    "",
			Path:     "/",
			Domain:   h.CookieDomain,
			MaxAge:   -1,
			Secure:   true,
			HttpOnly: true,
			SameSite: http.SameSiteNoneMode,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "User removed"})
}

func (h *UsersHandler) RemoveAll(ctx *gin.Context) {
	deleted, err := h.Store.DeleteAll(ctx.Request.Context())

	if err != nil {
		log.Error().Err(err).Msg("Failed to remove users")
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to remove users"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":      "All users removed",
		"deletedCount": deleted,
	})
}

func (h *UsersHandler) fetch(ctx *gin.Context) (*models.User, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return nil, false
	}

	user, err := h.Store.Get(ctx.Request.Context(), uint(id))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			log.Error().Err(err).Msg("Failed to fetch user")
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Failed to fetch user"})
		}
		return nil, false
	}

	return user, true
}
