package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/JaimeStill/registry-admin/internal/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const EnvDatabaseDSN = "DATABASE_DSN"

func main() {
	var (
		dsn      = flag.String("dsn", "", "Database connection string")
		all      = flag.Bool("all", false, "Run all seeders")
		vouchers = flag.Bool("vouchers", false, "Seed vouchers")
		file     = flag.String("file", "", "External seed file (overrides embedded)")
		list     = flag.Bool("list", false, "List available seeders")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	if *dsn == "" {
		*dsn = os.Getenv(EnvDatabaseDSN)
	}
	if *dsn == "" {
		log.Fatalf("database connection string required: use -dsn flag or %s env var", EnvDatabaseDSN)
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := migrations.Up(*dsn, slog.Default()); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	ctx := context.Background()

	switch {
	case *all:
		if err := runAllSeeders(ctx, db); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("all seeders completed successfully")

	case *vouchers:
		if *file != "" {
			if seeder, ok := getSeeder("vouchers"); ok {
				seeder.(*VoucherSeeder).SetFile(*file)
			}
		}
		if err := runSeeder(ctx, db, "vouchers"); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("vouchers seeded successfully")

	default:
		fmt.Println("usage: seed -dsn <connection-string> [-all|-vouchers] [-file <path>] [-list]")
		flag.PrintDefaults()
	}
}
