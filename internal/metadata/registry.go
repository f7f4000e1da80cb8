package metadata

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/language"

	"scadaadmin/internal/configbase"
	"scadaadmin/internal/core/apperror"
	"scadaadmin/internal/core/entity"
	"scadaadmin/pkg/logger"
)

var tracer = otel.Tracer("scadaadmin/metadata")

// ConfigBase is the read side of the configuration database that reference
// columns are resolved against. Snapshot must return current data on every
// call, with all tables taken at the same moment.
type ConfigBase interface {
	Snapshot() configbase.Snapshot
}

// Option configures a Builder.
type Option func(*Builder)

// WithHeaders sets the translated headers.
func WithHeaders(headers HeaderSet) Option {
	return func(b *Builder) {
		b.headers = headers
	}
}

// WithLanguage sets the collation language for lookup lists.
func WithLanguage(tag language.Tag) Option {
	return func(b *Builder) {
		b.lang = tag
	}
}

// WithLogger sets the logger.
func WithLogger(log *logger.Logger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}

// Builder creates grid columns for configuration tables.
// It keeps no state between calls: lookup lists are rebuilt from the
// configuration database each time.
type Builder struct {
	base    ConfigBase
	headers HeaderSet
	lang    language.Tag
	log     *logger.Logger
}

// NewBuilder creates a Builder. The configuration database is required.
func NewBuilder(base ConfigBase, opts ...Option) (*Builder, error) {
	if base == nil {
		return nil, apperror.NewPrecondition("config base is required")
	}

	b := &Builder{
		base: base,
		lang: DefaultLanguage,
		log:  logger.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.log = b.log.WithComponent("metadata")

	return b, nil
}

// CreateColumns returns the columns of the given entity type in display order.
// Unknown types yield an empty list.
func (b *Builder) CreateColumns(ctx context.Context, entityType EntityType) []Column {
	ctx, span := tracer.Start(ctx, "metadata.create_columns",
		trace.WithAttributes(
			attribute.String("entity.type", string(entityType)),
		))
	defer span.End()

	var columns []Column
	switch entityType {
	case TypeObject:
		columns = b.objColumns()
	case TypeDevice:
		columns = b.kpColumns(b.base.Snapshot())
	default:
		b.log.WithContext(ctx).Debugw("no column template", "entity_type", entityType)
		return []Column{}
	}

	span.SetAttributes(attribute.Int("columns.count", len(columns)))
	return b.headers.Apply(string(entityType), columns)
}

func (b *Builder) objColumns() []Column {
	return []Column{
		PlainColumn(entity.FieldObjNum),
		PlainColumn(entity.FieldName),
		PlainColumn(entity.FieldDescr),
	}
}

func (b *Builder) kpColumns(snap configbase.Snapshot) []Column {
	return []Column{
		PlainColumn(entity.FieldKPNum),
		PlainColumn(entity.FieldName),
		referenceColumn(b.lang, entity.FieldKPTypeID, entity.FieldName, snap.KPTypes, false),
		PlainColumn(entity.FieldAddress),
		PlainColumn(entity.FieldCallNum),
		referenceColumn(b.lang, entity.FieldCommLineNum, entity.FieldName, snap.CommLines, true),
		PlainColumn(entity.FieldDescr),
	}
}

// referenceColumn binds a column to items whose key field has the column's name.
func referenceColumn[T entity.Record](lang language.Tag, name, displayField string, items []T, includeBlank bool) Column {
	return ReferenceColumn(name, name, displayField,
		BuildSourceIn(lang, items, name, displayField, includeBlank))
}
