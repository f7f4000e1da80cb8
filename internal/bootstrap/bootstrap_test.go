package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scadaadmin/internal/config"
	"scadaadmin/internal/core/entity"
	"scadaadmin/internal/metadata"
	"scadaadmin/pkg/logger"
)

func TestOpenConfigBase_WithoutDatabase(t *testing.T) {
	ctx := logger.WithLogger(context.Background(), logger.Nop())

	cb, err := OpenConfigBase(ctx, config.Config{})
	require.NoError(t, err)
	defer cb.Close()

	assert.Nil(t, cb.Pool)
	assert.Nil(t, cb.Loader)
	assert.Zero(t, cb.Base.KPTable.Len())
}

func TestOpenConfigBase_BadURL(t *testing.T) {
	ctx := logger.WithLogger(context.Background(), logger.Nop())

	_, err := OpenConfigBase(ctx, config.Config{Database: config.DatabaseConfig{URL: "postgres://scada@localhost:notaport/config"}})
	assert.Error(t, err)
}

func TestNewColumnBuilder(t *testing.T) {
	cfg := config.Config{
		Display: config.DisplayConfig{Locale: "ru"},
		Headers: []config.HeaderPhrase{
			{Table: "Device", Field: "CommLineNum", Text: "Линия связи"},
		},
	}
	ctx := logger.WithLogger(context.Background(), logger.Nop())
	cb, err := OpenConfigBase(ctx, config.Config{})
	require.NoError(t, err)
	cb.Base.CommLineTable.Add(entity.CommLine{CommLineNum: 1, Name: "Линия 1"})

	builder, err := NewColumnBuilder(cfg, cb.Base, logger.Nop())
	require.NoError(t, err)

	cols := builder.CreateColumns(context.Background(), metadata.TypeDevice)
	require.Len(t, cols, 7)
	assert.Equal(t, "Линия связи", cols[5].Header)
	assert.Len(t, cols[5].Source, 2)
}

func TestNewColumnBuilder_BadLocale(t *testing.T) {
	cfg := config.Config{Display: config.DisplayConfig{Locale: "???"}}

	_, err := NewColumnBuilder(cfg, nil, logger.Nop())
	assert.Error(t, err)
}
