package metadata

// HeaderSet maps a table id to translated column headers keyed by field name.
// A nil HeaderSet is valid and translates nothing.
type HeaderSet map[string]map[string]string

// Phrases returns the phrase table for tableID.
func (h HeaderSet) Phrases(tableID string) (map[string]string, bool) {
	phrases, ok := h[tableID]
	return phrases, ok
}

// Apply rewrites column headers in place using the phrases of tableID.
// Columns without a phrase keep their current header; a missing table leaves
// all of them untouched. Empty phrases count as missing.
func (h HeaderSet) Apply(tableID string, columns []Column) []Column {
	phrases, ok := h.Phrases(tableID)
	if !ok {
		return columns
	}

	for i := range columns {
		if header := phrases[columns[i].Name]; header != "" {
			columns[i].Header = header
		}
	}
	return columns
}
