package entity

// CommLine is a communication line (Линия связи) that devices are polled through.
type CommLine struct {
	CommLineNum int     `db:"comm_line_num" json:"commLineNum"`
	Name        string  `db:"name" json:"name"`
	Descr       *string `db:"descr" json:"descr,omitempty"`
}

// Field implements Record.
func (c CommLine) Field(name string) (any, bool) {
	switch name {
	case FieldCommLineNum:
		return c.CommLineNum, true
	case FieldName:
		return c.Name, true
	case FieldDescr:
		return optional(c.Descr), true
	}
	return nil, false
}
