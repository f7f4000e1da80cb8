// Command columns prints the grid schema of one or more entity types as JSON.
//
//	columns Device
//	columns Object Device
//
// With no arguments every known entity type is printed.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"scadaadmin/internal/bootstrap"
	"scadaadmin/internal/config"
	"scadaadmin/internal/metadata"
	"scadaadmin/pkg/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "columns: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: true,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	ctx := logger.WithLogger(context.Background(), log)

	cb, err := bootstrap.OpenConfigBase(ctx, cfg)
	if err != nil {
		return err
	}
	defer cb.Close()

	builder, err := bootstrap.NewColumnBuilder(cfg, cb.Base, log)
	if err != nil {
		return err
	}

	types := metadata.KnownTypes()
	if len(args) > 0 {
		types = make([]metadata.EntityType, 0, len(args))
		for _, a := range args {
			types = append(types, metadata.EntityType(a))
		}
	}

	schemas := make(map[metadata.EntityType][]metadata.Column, len(types))
	for _, t := range types {
		schemas[t] = builder.CreateColumns(ctx, t)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(schemas)
}
