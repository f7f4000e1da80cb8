package dto

import "scadaadmin/internal/metadata"

// ColumnsResponse is the grid schema of one entity type.
// Columns is empty, never null, for types without a template.
type ColumnsResponse struct {
	EntityType metadata.EntityType `json:"entityType"`
	Known      bool                `json:"known"`
	Columns    []metadata.Column   `json:"columns"`
}

// NewColumnsResponse builds the response for entityType.
func NewColumnsResponse(entityType metadata.EntityType, columns []metadata.Column) ColumnsResponse {
	if columns == nil {
		columns = []metadata.Column{}
	}
	return ColumnsResponse{
		EntityType: entityType,
		Known:      entityType.IsKnown(),
		Columns:    columns,
	}
}

// TypesResponse lists entity types with column templates.
type TypesResponse struct {
	Types []metadata.EntityType `json:"types"`
}
