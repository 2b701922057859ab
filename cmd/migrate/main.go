package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/andino-energia/wellwatch/internal/config"
	"github.com/andino-energia/wellwatch/internal/database"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	action := flag.String("action", "up", "up, down, version or force")
	target := flag.Int("target", 0, "schema version for the force action")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// golang-migrate works over database/sql, not the pgx pool
	db, err := database.OpenSQL(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	migrator, err := database.NewMigrator(db, cfg.DatabaseName)
	if err != nil {
		return err
	}
	defer func() { _ = migrator.Close() }()

	switch *action {
	case "up":
		if err := migrator.Up(); err != nil {
			return err
		}
		log.Println("migrations applied")

	case "down":
		if err := migrator.Down(); err != nil {
			return err
		}
		log.Println("last migration rolled back")

	case "version":
		version, dirty, err := migrator.Version()
		if err != nil {
			return err
		}
		if dirty {
			log.Printf("schema version %d (dirty, fix with -action force)", version)
		} else {
			log.Printf("schema version %d", version)
		}

	case "force":
		if *target == 0 {
			return fmt.Errorf("force requires -target")
		}
		if err := migrator.Force(*target); err != nil {
			return err
		}
		log.Printf("schema version forced to %d", *target)

	default:
		return fmt.Errorf("unknown action %q (up, down, version, force)", *action)
	}

	return nil
}
