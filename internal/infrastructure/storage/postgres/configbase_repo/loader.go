// Package configbase_repo loads the configuration database from PostgreSQL.
package configbase_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"go.opentelemetry.io/otel"

	"scadaadmin/internal/configbase"
	"scadaadmin/internal/core/apperror"
	"scadaadmin/internal/core/entity"
	"scadaadmin/internal/infrastructure/storage/postgres"
	"scadaadmin/pkg/logger"
)

var tracer = otel.Tracer("scadaadmin/configbase")

// tableQuery describes how one configuration table is read.
type tableQuery struct {
	table   string
	columns []string
	orderBy string
}

var (
	objQuery      = tableQuery{configbase.ObjTableName, postgres.ExtractDBColumns[entity.Obj](), "obj_num"}
	commLineQuery = tableQuery{configbase.CommLineTableName, postgres.ExtractDBColumns[entity.CommLine](), "comm_line_num"}
	kpTypeQuery   = tableQuery{configbase.KPTypeTableName, postgres.ExtractDBColumns[entity.KPType](), "kp_type_id"}
	kpQuery       = tableQuery{configbase.KPTableName, postgres.ExtractDBColumns[entity.KP](), "kp_num"}
)

// SnapshotReader runs fn against a consistent view of the database.
// postgres.TxManager implements it.
type SnapshotReader interface {
	ReadSnapshot(ctx context.Context, fn func(ctx context.Context, q pgxscan.Querier) error) error
}

// Loader reads all configuration tables and replaces the contents of a Base.
type Loader struct {
	db   SnapshotReader
	base *configbase.Base
}

// NewLoader creates a loader that fills base from db.
func NewLoader(db SnapshotReader, base *configbase.Base) *Loader {
	return &Loader{
		db:   db,
		base: base,
	}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (l *Loader) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (l *Loader) selectQuery(q tableQuery) squirrel.SelectBuilder {
	return l.Builder().
		Select(q.columns...).
		From(q.table).
		OrderBy(q.orderBy)
}

// Load reads every table in one snapshot and only then swaps them in, so a
// failed read leaves the current contents untouched.
func (l *Loader) Load(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "configbase.load")
	defer span.End()

	var snap configbase.Snapshot

	err := l.db.ReadSnapshot(ctx, func(ctx context.Context, q pgxscan.Querier) error {
		var err error
		if snap.Objs, err = selectRows[entity.Obj](ctx, q, l.selectQuery(objQuery), objQuery.table); err != nil {
			return err
		}
		if snap.CommLines, err = selectRows[entity.CommLine](ctx, q, l.selectQuery(commLineQuery), commLineQuery.table); err != nil {
			return err
		}
		if snap.KPTypes, err = selectRows[entity.KPType](ctx, q, l.selectQuery(kpTypeQuery), kpTypeQuery.table); err != nil {
			return err
		}
		snap.KPs, err = selectRows[entity.KP](ctx, q, l.selectQuery(kpQuery), kpQuery.table)
		return err
	})
	if err != nil {
		if apperror.IsAppError(err) {
			return err
		}
		return apperror.NewDatabase("read snapshot", err)
	}

	l.base.ReplaceAll(snap)

	logger.Info(ctx, "config base loaded",
		"objects", len(snap.Objs),
		"comm_lines", len(snap.CommLines),
		"kp_types", len(snap.KPTypes),
		"kps", len(snap.KPs),
	)
	return nil
}

func selectRows[T any](ctx context.Context, db pgxscan.Querier, q squirrel.SelectBuilder, table string) ([]T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query for %s: %w", table, err)
	}

	var rows []T
	if err := pgxscan.Select(ctx, db, &rows, sql, args...); err != nil {
		return nil, apperror.NewDatabase("select "+table, err)
	}
	return rows, nil
}
