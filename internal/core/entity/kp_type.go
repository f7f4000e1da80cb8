package entity

// KPType is a device type (Тип КП) bound to a driver library.
type KPType struct {
	KPTypeID    int     `db:"kp_type_id" json:"kpTypeId"`
	Name        string  `db:"name" json:"name"`
	DllFileName *string `db:"dll_file_name" json:"dllFileName,omitempty"`
	Descr       *string `db:"descr" json:"descr,omitempty"`
}

// Field implements Record.
func (k KPType) Field(name string) (any, bool) {
	switch name {
	case FieldKPTypeID:
		return k.KPTypeID, true
	case FieldName:
		return k.Name, true
	case FieldDllFileName:
		return optional(k.DllFileName), true
	case FieldDescr:
		return optional(k.Descr), true
	}
	return nil, false
}
