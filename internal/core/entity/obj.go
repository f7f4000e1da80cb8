package entity

// Obj is a monitored object (Объект): a site or installation that groups channels.
type Obj struct {
	ObjNum int     `db:"obj_num" json:"objNum"`
	Name   string  `db:"name" json:"name"`
	Descr  *string `db:"descr" json:"descr,omitempty"`
}

// Field implements Record.
func (o Obj) Field(name string) (any, bool) {
	switch name {
	case FieldObjNum:
		return o.ObjNum, true
	case FieldName:
		return o.Name, true
	case FieldDescr:
		return optional(o.Descr), true
	}
	return nil, false
}
