package metadata

import (
	"fmt"
	"math"
	"math/big"
	"slices"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"scadaadmin/internal/core/entity"
)

// BlankDisplay is the display text of the "no selection" entry.
const BlankDisplay = " "

// DefaultLanguage drives string collation when no language is configured.
var DefaultLanguage = language.Russian

// BuildSource turns items into a lookup list using DefaultLanguage collation.
func BuildSource[T entity.Record](items []T, valueField, displayField string, includeBlank bool) Source {
	return BuildSourceIn(DefaultLanguage, items, valueField, displayField, includeBlank)
}

// BuildSourceIn turns items into a lookup list sorted by display value.
//
// Every item yields exactly one entry. Sorting is stable, so equal display
// values keep their input order. Missing values sort first, numbers follow in
// numeric order, and everything else is collated as text in lang. When
// includeBlank is set, a {nil, " "} entry is placed first.
func BuildSourceIn[T entity.Record](lang language.Tag, items []T, valueField, displayField string, includeBlank bool) Source {
	src := make(Source, 0, len(items)+1)
	for _, item := range items {
		value, _ := item.Field(valueField)
		display, _ := item.Field(displayField)
		src = append(src, Entry{Value: value, Display: display})
	}

	cmp := newDisplayComparer(lang)
	slices.SortStableFunc(src, func(a, b Entry) int {
		return cmp.compare(a.Display, b.Display)
	})

	if includeBlank {
		src = slices.Insert(src, 0, Entry{Value: nil, Display: BlankDisplay})
	}
	return src
}

// displayComparer orders display values. Not safe for concurrent use.
type displayComparer struct {
	coll *collate.Collator
}

func newDisplayComparer(lang language.Tag) *displayComparer {
	return &displayComparer{coll: collate.New(lang)}
}

// Display kinds, in sort order.
const (
	kindMissing = iota
	kindNumber
	kindText
)

// compare orders missing values first, then numbers by value, then
// everything else by collated text.
func (c *displayComparer) compare(a, b any) int {
	ka, da := classify(a)
	kb, db := classify(b)
	if ka != kb {
		return ka - kb
	}

	switch ka {
	case kindMissing:
		return 0
	case kindNumber:
		return da.Cmp(db)
	}
	return c.coll.CompareString(displayText(a), displayText(b))
}

func classify(v any) (int, decimal.Decimal) {
	if v == nil {
		return kindMissing, decimal.Decimal{}
	}
	if d, ok := asDecimal(v); ok {
		return kindNumber, d
	}
	return kindText, decimal.Decimal{}
}

// asDecimal converts numeric display values. NaN and infinities are not numbers here.
func asDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int8:
		return decimal.NewFromInt(int64(n)), true
	case int16:
		return decimal.NewFromInt(int64(n)), true
	case int32:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case uint:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(n)), 0), true
	case uint8:
		return decimal.NewFromInt(int64(n)), true
	case uint16:
		return decimal.NewFromInt(int64(n)), true
	case uint32:
		return decimal.NewFromInt(int64(n)), true
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(n), 0), true
	case float32:
		if math.IsNaN(float64(n)) || math.IsInf(float64(n), 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat32(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat(n), true
	}
	return decimal.Decimal{}, false
}

func displayText(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	}
	return fmt.Sprint(v)
}
