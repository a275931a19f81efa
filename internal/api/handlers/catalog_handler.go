package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
)

// namedRepository is the slice of the repository contract the catalog
// endpoints need; every name-keyed entity repository satisfies it.
type namedRepository[T any] interface {
	GetByID(ctx context.Context, id int64) (*T, error)
	GetByName(ctx context.Context, name string) (*T, error)
	GetAll(ctx context.Context) ([]*T, error)
	Insert(ctx context.Context, e *T) error
	Update(ctx context.Context, e *T) error
	Delete(ctx context.Context, e *T) (*T, error)
}

// CatalogHandler serves the CRUD surface for the simple name-keyed entities
// (class rooms, departments, courses, groups). The four handlers used to be
// copies of each other; one parametric handler over the repository contract
// replaces them.
type CatalogHandler[T any] struct {
	noun  string
	repo  namedRepository[T]
	setID func(*T, int64)
}

func NewCatalogHandler[T any](noun string, repo namedRepository[T], setID func(*T, int64)) *CatalogHandler[T] {
	return &CatalogHandler[T]{noun: noun, repo: repo, setID: setID}
}

// Create handles POST /<noun>s
func (h *CatalogHandler[T]) Create(c *gin.Context) {
	var e T
	if err := c.ShouldBindJSON(&e); err != nil {
		respondBadRequest(c, "Invalid request format", err.Error())
		return
	}

	if err := h.repo.Insert(c.Request.Context(), &e); err != nil {
		respondError(c, "Failed to create "+h.noun, err)
		return
	}
	respondCreated(c, "Created "+h.noun, e)
}

// List handles GET /<noun>s
func (h *CatalogHandler[T]) List(c *gin.Context) {
	entities, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to list "+h.noun+"s", err)
		return
	}
	respondOK(c, "", entities)
}

// Get handles GET /<noun>s/:id
func (h *CatalogHandler[T]) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	e, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, "Failed to get "+h.noun, err)
		return
	}
	respondOK(c, "", e)
}

// GetByName handles GET /<noun>s/name/:name
func (h *CatalogHandler[T]) GetByName(c *gin.Context) {
	e, err := h.repo.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, "Failed to get "+h.noun, err)
		return
	}
	respondOK(c, "", e)
}

// Update handles PUT /<noun>s/:id
func (h *CatalogHandler[T]) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var e T
	if err := c.ShouldBindJSON(&e); err != nil {
		respondBadRequest(c, "Invalid request format", err.Error())
		return
	}
	h.setID(&e, id)

	if err := h.repo.Update(c.Request.Context(), &e); err != nil {
		respondError(c, "Failed to update "+h.noun, err)
		return
	}
	respondOK(c, "Updated "+h.noun, e)
}

// Delete handles DELETE /<noun>s/:id
func (h *CatalogHandler[T]) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var e T
	h.setID(&e, id)

	deleted, err := h.repo.Delete(c.Request.Context(), &e)
	if err != nil {
		respondError(c, "Failed to delete "+h.noun, err)
		return
	}
	respondOK(c, "Deleted "+h.noun, deleted)
}

// pathID parses the :id path parameter, answering 400 itself on garbage.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid id format", nil)
		return 0, false
	}
	return id, true
}
