package metadata

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"scadaadmin/internal/core/entity"
)

// row is a minimal Record for lookup-list tests.
type row map[string]any

func (r row) Field(name string) (any, bool) {
	v, ok := r[name]
	return v, ok
}

func displays(src Source) []any {
	out := make([]any, len(src))
	for i, e := range src {
		out[i] = e.Display
	}
	return out
}

func TestBuildSource_BlankFirstThenByDisplay(t *testing.T) {
	lines := []entity.CommLine{
		{CommLineNum: 1, Name: "Line B"},
		{CommLineNum: 2, Name: "Line A"},
	}

	src := BuildSource(lines, entity.FieldCommLineNum, entity.FieldName, true)

	assert.Equal(t, Source{
		{Value: nil, Display: " "},
		{Value: 2, Display: "Line A"},
		{Value: 1, Display: "Line B"},
	}, src)
	assert.True(t, src[0].IsBlank())
	assert.False(t, src[1].IsBlank())
}

func TestBuildSource_Empty(t *testing.T) {
	src := BuildSource([]entity.KPType{}, "id", "name", false)

	require.NotNil(t, src)
	assert.Empty(t, src)

	col := ReferenceColumn(entity.FieldKPTypeID, "id", "name", src)
	assert.Len(t, col.Source, 0)
}

func TestBuildSource_EmptyWithBlank(t *testing.T) {
	src := BuildSource([]entity.CommLine(nil), entity.FieldCommLineNum, entity.FieldName, true)

	assert.Equal(t, Source{{Value: nil, Display: BlankDisplay}}, src)
}

func TestBuildSource_KeepsDuplicatesInInputOrder(t *testing.T) {
	items := []row{
		{"id": 1, "name": "Same"},
		{"id": 2, "name": "Other"},
		{"id": 3, "name": "Same"},
	}

	src := BuildSource(items, "id", "name", false)

	require.Len(t, src, 3)
	assert.Equal(t, []any{2, 1, 3}, []any{src[0].Value, src[1].Value, src[2].Value})
}

func TestBuildSource_CollatesByLanguage(t *testing.T) {
	items := []row{
		{"id": 1, "name": "жук"},
		{"id": 2, "name": "ёж"},
		{"id": 3, "name": "еда"},
	}

	src := BuildSourceIn(language.Russian, items, "id", "name", false)

	assert.Equal(t, []any{"еда", "ёж", "жук"}, displays(src))
}

func TestBuildSource_CollationIgnoresCodePointOrder(t *testing.T) {
	items := []row{
		{"id": 1, "name": "Banana"},
		{"id": 2, "name": "apple"},
	}

	src := BuildSourceIn(language.English, items, "id", "name", false)

	assert.Equal(t, []any{"apple", "Banana"}, displays(src))
}

func TestBuildSource_NumericDisplay(t *testing.T) {
	items := []row{
		{"id": "a", "num": 10},
		{"id": "b", "num": 9},
		{"id": "c", "num": int64(100)},
		{"id": "d", "num": decimal.RequireFromString("9.5")},
		{"id": "e", "num": 2.25},
	}

	src := BuildSource(items, "id", "num", false)

	assert.Equal(t, []any{"e", "b", "d", "a", "c"},
		[]any{src[0].Value, src[1].Value, src[2].Value, src[3].Value, src[4].Value})
}

func TestBuildSource_MixedDisplayKindsOrderIndependent(t *testing.T) {
	orders := [][]any{
		{9, 10, "1a"},
		{9, "1a", 10},
		{10, 9, "1a"},
		{10, "1a", 9},
		{"1a", 9, 10},
		{"1a", 10, 9},
	}

	for _, order := range orders {
		items := make([]row, len(order))
		for i, d := range order {
			items[i] = row{"id": i, "num": d}
		}

		src := BuildSource(items, "id", "num", false)

		assert.Equal(t, []any{9, 10, "1a"}, displays(src), "input %v", order)
	}
}

func TestCompare_KindsRankBeforeValues(t *testing.T) {
	c := newDisplayComparer(language.English)

	tests := []struct {
		name string
		a, b any
		want int
	}{
		{"missing before number", nil, 5, -1},
		{"number before text", 100, "1", -1},
		{"text after number", "0", 3.5, 1},
		{"numbers by value", int64(10), decimal.RequireFromString("9.99"), 1},
		{"non-finite float is text", 1.0 / zero(), 1, 1},
		{"missing equal", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.compare(tt.a, tt.b)
			switch {
			case tt.want < 0:
				assert.Negative(t, got)
			case tt.want > 0:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}

func TestBuildSource_MissingFieldsSortFirst(t *testing.T) {
	items := []row{
		{"id": 1, "name": "Named"},
		{"id": 2},
	}

	src := BuildSource(items, "id", "name", true)

	require.Len(t, src, 3)
	assert.True(t, src[0].IsBlank())
	assert.Equal(t, Entry{Value: 2, Display: nil}, src[1])
	assert.Equal(t, Entry{Value: 1, Display: "Named"}, src[2])
}

func TestBuildSource_DoesNotMutateInput(t *testing.T) {
	lines := []entity.CommLine{
		{CommLineNum: 1, Name: "B"},
		{CommLineNum: 2, Name: "A"},
	}

	first := BuildSource(lines, entity.FieldCommLineNum, entity.FieldName, true)
	second := BuildSource(lines, entity.FieldCommLineNum, entity.FieldName, true)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, lines[0].CommLineNum)
	assert.Equal(t, 2, lines[1].CommLineNum)
}

func TestCompare_NonFiniteFloatsFallBackToText(t *testing.T) {
	_, ok := asDecimal(1.0 / zero())
	assert.False(t, ok)
}

func zero() float64 { return 0 }
