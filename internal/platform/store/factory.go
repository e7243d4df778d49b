package store

import (
	"context"
	"fmt"
)

// Options selects and configures a store driver.
type Options struct {
	Driver      string // memory, fs, sqlite, postgres
	DataDir     string // fs driver
	SQLitePath  string // sqlite driver
	DatabaseURL string // postgres driver
}

// Open builds the store named by opts.Driver.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case "memory":
		return NewMemoryStore(), nil
	case "fs":
		return NewFileStore(opts.DataDir)
	case "sqlite":
		return NewSQLiteStore(opts.SQLitePath)
	case "postgres":
		return NewPostgresStore(ctx, opts.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}
