package metadata

// PlainColumn creates a free-text column bound to the field of the same name.
func PlainColumn(name string) Column {
	return Column{
		Name:      name,
		Header:    name,
		Kind:      KindPlain,
		DataField: name,
	}
}

// ReferenceColumn creates a column whose cells pick a value from source.
// The source is not inspected; an empty one yields a column with nothing to select.
func ReferenceColumn(name, valueField, displayField string, source Source) Column {
	if source == nil {
		source = Source{}
	}
	return Column{
		Name:                   name,
		Header:                 name,
		Kind:                   KindReference,
		DataField:              name,
		ValueField:             valueField,
		DisplayField:           displayField,
		Source:                 source,
		Sortable:               true,
		DisplayCurrentCellOnly: true,
	}
}
