package metadata

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scadaadmin/internal/configbase"
	"scadaadmin/internal/core/apperror"
	"scadaadmin/internal/core/entity"
	"scadaadmin/pkg/logger"
)

func newTestBase() *configbase.Base {
	base := configbase.New()
	base.KPTypeTable.Replace([]entity.KPType{
		{KPTypeID: 2, Name: "Modbus"},
		{KPTypeID: 1, Name: "IEC 104"},
	})
	base.CommLineTable.Replace([]entity.CommLine{
		{CommLineNum: 1, Name: "Line B"},
		{CommLineNum: 2, Name: "Line A"},
	})
	return base
}

func newTestBuilder(t *testing.T, base ConfigBase, opts ...Option) *Builder {
	t.Helper()
	b, err := NewBuilder(base, append([]Option{WithLogger(logger.Nop())}, opts...)...)
	require.NoError(t, err)
	return b
}

func names(cols []Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Name
	}
	return out
}

func TestNewBuilder_RequiresConfigBase(t *testing.T) {
	b, err := NewBuilder(nil)

	assert.Nil(t, b)
	assert.True(t, apperror.IsPrecondition(err))
}

func TestCreateColumns_Object(t *testing.T) {
	b := newTestBuilder(t, newTestBase())

	cols := b.CreateColumns(context.Background(), TypeObject)

	require.Len(t, cols, 3)
	assert.Equal(t, []string{"ObjNum", "Name", "Descr"}, names(cols))
	for _, c := range cols {
		assert.Equal(t, KindPlain, c.Kind)
		assert.Equal(t, c.Name, c.Header)
	}
}

func TestCreateColumns_Device(t *testing.T) {
	b := newTestBuilder(t, newTestBase())

	cols := b.CreateColumns(context.Background(), TypeDevice)

	require.Len(t, cols, 7)
	assert.Equal(t,
		[]string{"KPNum", "Name", "KPTypeID", "Address", "CallNum", "CommLineNum", "Descr"},
		names(cols))

	for i, c := range cols {
		if i == 2 || i == 5 {
			assert.Equal(t, KindReference, c.Kind, c.Name)
		} else {
			assert.Equal(t, KindPlain, c.Kind, c.Name)
		}
	}

	kpType := cols[2]
	assert.Equal(t, "KPTypeID", kpType.ValueField)
	assert.Equal(t, "Name", kpType.DisplayField)
	assert.Equal(t, Source{
		{Value: 1, Display: "IEC 104"},
		{Value: 2, Display: "Modbus"},
	}, kpType.Source)

	commLine := cols[5]
	assert.Equal(t, "CommLineNum", commLine.ValueField)
	assert.Equal(t, Source{
		{Value: nil, Display: " "},
		{Value: 2, Display: "Line A"},
		{Value: 1, Display: "Line B"},
	}, commLine.Source)
}

func TestCreateColumns_DeviceCommLineColumn(t *testing.T) {
	b := newTestBuilder(t, newTestBase(), WithHeaders(HeaderSet{
		"Device": {"CommLineNum": "Линия связи"},
	}))

	cols := b.CreateColumns(context.Background(), TypeDevice)
	require.Len(t, cols, 7)

	want := Column{
		Name:         "CommLineNum",
		Header:       "Линия связи",
		Kind:         KindReference,
		DataField:    "CommLineNum",
		ValueField:   "CommLineNum",
		DisplayField: "Name",
		Source: Source{
			{Value: nil, Display: BlankDisplay},
			{Value: 2, Display: "Line A"},
			{Value: 1, Display: "Line B"},
		},
		Sortable:               true,
		DisplayCurrentCellOnly: true,
	}
	if diff := cmp.Diff(want, cols[5]); diff != "" {
		t.Errorf("comm line column mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateColumns_UnknownType(t *testing.T) {
	b := newTestBuilder(t, newTestBase())

	for _, typ := range []EntityType{"Channel", "", "object"} {
		cols := b.CreateColumns(context.Background(), typ)
		assert.NotNil(t, cols)
		assert.Empty(t, cols)
	}
}

func TestCreateColumns_LocalizedHeaders(t *testing.T) {
	b := newTestBuilder(t, newTestBase(), WithHeaders(HeaderSet{
		"Device": {"Address": "Адрес"},
	}))

	cols := b.CreateColumns(context.Background(), TypeDevice)

	for _, c := range cols {
		if c.Name == "Address" {
			assert.Equal(t, "Адрес", c.Header)
		} else {
			assert.Equal(t, c.Name, c.Header)
		}
	}

	// Object headers have no phrase table and stay as they are.
	for _, c := range b.CreateColumns(context.Background(), TypeObject) {
		assert.Equal(t, c.Name, c.Header)
	}
}

func TestCreateColumns_Idempotent(t *testing.T) {
	b := newTestBuilder(t, newTestBase())
	ctx := context.Background()

	for _, typ := range KnownTypes() {
		assert.Equal(t, b.CreateColumns(ctx, typ), b.CreateColumns(ctx, typ), typ)
	}
}

func TestCreateColumns_ReflectsCurrentData(t *testing.T) {
	base := newTestBase()
	b := newTestBuilder(t, base)
	ctx := context.Background()

	before := b.CreateColumns(ctx, TypeDevice)
	base.CommLineTable.Add(entity.CommLine{CommLineNum: 3, Name: "Line C"})
	after := b.CreateColumns(ctx, TypeDevice)

	assert.Len(t, before[5].Source, 3)
	assert.Len(t, after[5].Source, 4)
	assert.Equal(t, Entry{Value: 3, Display: "Line C"}, after[5].Source[3])
}

func TestCreateColumns_ResultOwnedByCaller(t *testing.T) {
	b := newTestBuilder(t, newTestBase(), WithHeaders(HeaderSet{"Object": {"Name": "Наименование"}}))
	ctx := context.Background()

	first := b.CreateColumns(ctx, TypeObject)
	first[1].Header = "edited"

	assert.Equal(t, "Наименование", b.CreateColumns(ctx, TypeObject)[1].Header)
}

func TestKnownTypes(t *testing.T) {
	for _, typ := range KnownTypes() {
		assert.True(t, typ.IsKnown())
	}
	assert.False(t, EntityType("KP").IsKnown())
}
