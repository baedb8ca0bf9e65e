package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-dev/portfolio/internal/store"
	"github.com/rs/zerolog/log"
)

var emailPattern = regexp.MustCompile(`.+@.+\..+`)

func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Resource implements the uniform CRUD contract for one collection. Required
// fields and format checks differ per entity, so they are injected as the
// Build (validate a create payload) and Apply (partial update) functions.
// Payload types use pointer fields: a nil field was absent from the request
// body and leaves the stored value untouched.
type Resource[M any, P any] struct {
	Label  string // message prefix, e.g. "Project"
	Slug   string // lower-case noun for id errors, e.g. "project"
	Plural string // lower-case plural for removeAll, e.g. "projects"

	Repo  store.Repository[M]
	Build func(P) (*M, error)
	Apply func(*M, P) error
}

func (r *Resource[M, P]) Create(ctx *gin.Context) {
	var payload P

	if err := ctx.BindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	m, err := r.Build(payload)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := r.Repo.Create(ctx.Request.Context(), m); err != nil {
		r.storeError(ctx, err, "Failed to create "+r.Slug)
		return
	}

	ctx.JSON(http.StatusCreated, m)
}

func (r *Resource[M, P]) List(ctx *gin.Context) {
	items, err := r.Repo.List(ctx.Request.Context())

	if err != nil {
		r.storeError(ctx, err, "Failed to fetch "+r.Plural)
		return
	}

	if items == nil {
		items = []M{}
	}

	ctx.JSON(http.StatusOK, items)
}

func (r *Resource[M, P]) Read(ctx *gin.Context) {
	m, ok := r.fetch(ctx)

	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, m)
}

func (r *Resource[M, P]) Update(ctx *gin.Context) {
	m, ok := r.fetch(ctx)

	if !ok {
		return
	}

	var payload P

	if err := ctx.BindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := r.Apply(m, payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := r.Repo.Save(ctx.Request.Context(), m); err != nil {
		r.storeError(ctx, err, "Failed to update "+r.Slug)
		return
	}

	ctx.JSON(http.StatusOK, m)
}

func (r *Resource[M, P]) Remove(ctx *gin.Context) {
	m, ok := r.fetch(ctx)

	if !ok {
		return
	}

	if err := r.Repo.Delete(ctx.Request.Context(), m); err != nil {
		r.storeError(ctx, err, "Failed to remove "+r.Slug)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": r.Label + " removed"})
}

func (r *Resource[M, P]) RemoveAll(ctx *gin.Context) {
	deleted, err := r.Repo.DeleteAll(ctx.Request.Context())

	if err != nil {
		r.storeError(ctx, err, "Failed to remove "+r.Plural)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":      "All " + r.Plural + " removed",
		"deletedCount": deleted,
	})
}

// fetch resolves the :id route parameter to a document, writing the error
// response itself when the id is malformed or the document is gone.
func (r *Resource[M, P]) fetch(ctx *gin.Context) (*M, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + r.Slug + " id"})
		return nil, false
	}

	m, err := r.Repo.Get(ctx.Request.Context(), uint(id))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": r.Label + " not found"})
		} else {
			r.storeError(ctx, err, "Failed to fetch "+r.Slug)
		}
		return nil, false
	}

	return m, true
}

func (r *Resource[M, P]) storeError(ctx *gin.Context, err error, fallback string) {
	if errors.Is(err, store.ErrDuplicate) {
		ctx.JSON(http.StatusConflict, gin.H{"error": r.Label + " already exists"})
		return
	}

	log.Error().Err(err).Str("resource", r.Slug).Msg(fallback)
	ctx.JSON(http.StatusBadRequest, gin.H{"error": fallback})
}
