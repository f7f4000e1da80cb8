// Package handlers provides HTTP request handlers.
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"scadaadmin/internal/core/apperror"
	"scadaadmin/internal/infrastructure/http/v1/dto"
	"scadaadmin/internal/metadata"
)

// ColumnBuilder creates grid columns for an entity type.
type ColumnBuilder interface {
	CreateColumns(ctx context.Context, entityType metadata.EntityType) []metadata.Column
}

// ConfigLoader refreshes the configuration database.
type ConfigLoader interface {
	Load(ctx context.Context) error
}

// MetadataHandler serves grid column schemas and configuration reloads.
type MetadataHandler struct {
	*BaseHandler
	builder ColumnBuilder
	loader  ConfigLoader
}

// NewMetadataHandler creates the handler. loader may be nil when the service
// runs without a database; reload requests then fail with 503.
func NewMetadataHandler(base *BaseHandler, builder ColumnBuilder, loader ConfigLoader) *MetadataHandler {
	return &MetadataHandler{
		BaseHandler: base,
		builder:     builder,
		loader:      loader,
	}
}

// ListTypes returns the entity types that have a column template.
// GET /api/v1/meta/types
func (h *MetadataHandler) ListTypes(c *gin.Context) {
	h.OK(c, dto.TypesResponse{Types: metadata.KnownTypes()})
}

// GetColumns returns the grid columns of an entity type.
// Unknown types are not an error: the column list is empty.
// GET /api/v1/meta/columns/:entityType
func (h *MetadataHandler) GetColumns(c *gin.Context) {
	entityType := metadata.EntityType(c.Param("entityType"))
	columns := h.builder.CreateColumns(c.Request.Context(), entityType)
	h.OK(c, dto.NewColumnsResponse(entityType, columns))
}

// Reload re-reads the configuration database.
// POST /api/v1/meta/reload
func (h *MetadataHandler) Reload(c *gin.Context) {
	if h.loader == nil {
		h.Error(c, apperror.NewUnavailable("configuration database is not configured"))
		return
	}
	if err := h.loader.Load(c.Request.Context()); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "configuration reloaded")
}
