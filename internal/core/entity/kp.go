package entity

// KP is a controlled point (КП), i.e. a field device.
// KPTypeID and CommLineNum reference KPType and CommLine rows.
type KP struct {
	KPNum       int     `db:"kp_num" json:"kpNum"`
	Name        string  `db:"name" json:"name"`
	KPTypeID    int     `db:"kp_type_id" json:"kpTypeId"`
	Address     *int    `db:"address" json:"address,omitempty"`
	CallNum     *string `db:"call_num" json:"callNum,omitempty"`
	CommLineNum *int    `db:"comm_line_num" json:"commLineNum,omitempty"`
	Descr       *string `db:"descr" json:"descr,omitempty"`
}

// Field implements Record.
func (k KP) Field(name string) (any, bool) {
	switch name {
	case FieldKPNum:
		return k.KPNum, true
	case FieldName:
		return k.Name, true
	case FieldKPTypeID:
		return k.KPTypeID, true
	case FieldAddress:
		return optional(k.Address), true
	case FieldCallNum:
		return optional(k.CallNum), true
	case FieldCommLineNum:
		return optional(k.CommLineNum), true
	case FieldDescr:
		return optional(k.Descr), true
	}
	return nil, false
}
