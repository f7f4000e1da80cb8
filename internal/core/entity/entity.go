// Package entity provides the rows of the SCADA configuration database.
// Field names match the column names the configuration tables expose, so the
// same identifiers are used for grid columns and reference lookups.
package entity

// Field names shared by the configuration tables.
const (
	FieldName  = "Name"
	FieldDescr = "Descr"

	FieldObjNum      = "ObjNum"
	FieldCommLineNum = "CommLineNum"
	FieldKPTypeID    = "KPTypeID"
	FieldDllFileName = "DllFileName"
	FieldKPNum       = "KPNum"
	FieldAddress     = "Address"
	FieldCallNum     = "CallNum"
)

// Record exposes named fields of a configuration row.
// The boolean is false when the row has no field with that name.
type Record interface {
	Field(name string) (any, bool)
}

// optional unwraps a nullable column so that NULL surfaces as an untyped nil.
func optional[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}
