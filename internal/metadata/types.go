// Package metadata builds display schemas for the configuration tables:
// ordered column descriptors for a grid, with reference columns resolved
// into sorted lookup lists and headers translated where phrases exist.
package metadata

// EntityType identifies a configuration table whose grid layout is known.
type EntityType string

const (
	TypeObject EntityType = "Object"
	TypeDevice EntityType = "Device"
)

// KnownTypes lists every entity type that has a column template, in a stable order.
func KnownTypes() []EntityType {
	return []EntityType{TypeObject, TypeDevice}
}

// IsKnown reports whether t has a column template.
func (t EntityType) IsKnown() bool {
	switch t {
	case TypeObject, TypeDevice:
		return true
	}
	return false
}

// ColumnKind defines how a column's cells are edited.
type ColumnKind string

const (
	KindPlain     ColumnKind = "plain"     // free text
	KindReference ColumnKind = "reference" // value picked from a lookup list
)

// Column describes one grid column.
type Column struct {
	Name      string     `json:"name"`
	Header    string     `json:"header"`
	Kind      ColumnKind `json:"kind"`
	DataField string     `json:"dataField"`

	// Reference columns only.
	ValueField   string `json:"valueField,omitempty"`
	DisplayField string `json:"displayField,omitempty"`
	Source       Source `json:"source,omitempty"`

	Sortable bool `json:"sortable,omitempty"`
	// DisplayCurrentCellOnly shows the drop-down in the edited cell only.
	DisplayCurrentCellOnly bool `json:"displayCurrentCellOnly,omitempty"`
}

// IsReference reports whether the column is bound to a lookup list.
func (c Column) IsReference() bool {
	return c.Kind == KindReference
}

// Entry is one selectable value of a reference column.
type Entry struct {
	Value   any `json:"value"`
	Display any `json:"display"`
}

// IsBlank reports whether e is the "no selection" entry.
func (e Entry) IsBlank() bool {
	return e.Value == nil && e.Display == BlankDisplay
}

// Source is the ordered lookup list of a reference column.
type Source []Entry
