// Command migrate applies the statement archive schema migrations.
//
//	migrate [-path db/migrations] up|down|steps N|version
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"autoledger/internal/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	path := flag.String("path", "db/migrations", "migrations directory")
	flag.Parse()

	if flag.NArg() < 1 {
		return fmt.Errorf("usage: migrate [-path dir] up|down|steps N|version")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	m, err := migrate.New("file://"+*path, cfg.DB.DSN())
	if err != nil {
		return fmt.Errorf("opening migrations at %s: %w", *path, err)
	}
	defer func() { _, _ = m.Close() }()

	switch cmd := flag.Arg(0); cmd {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("applying migrations: %w", err)
		}
		log.Println("migrate: schema is up to date")

	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("reverting migrations: %w", err)
		}
		log.Println("migrate: all migrations reverted")

	case "steps":
		if flag.NArg() < 2 {
			return fmt.Errorf("steps requires a count")
		}
		n, err := strconv.Atoi(flag.Arg(1))
		if err != nil {
			return fmt.Errorf("invalid step count %q: %w", flag.Arg(1), err)
		}
		if err := m.Steps(n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("stepping migrations: %w", err)
		}
		log.Printf("migrate: moved %d steps", n)

	case "version":
		v, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			log.Println("migrate: no migrations applied yet")
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading version: %w", err)
		}
		log.Printf("migrate: at version %d (dirty=%v)", v, dirty)

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}
