// Command seeder fills an empty database with a demo congregation: a bishop,
// leaders with their groups, members, weekly events and attendance history.
// It is intended for local development, not as part of the main server.
//
// Flags:
//
//	--dry-run        log what would be inserted without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/shepherd-backend/internal/adapter/postgres"
	"github.com/heartmarshall/shepherd-backend/internal/adapter/postgres/attendance"
	"github.com/heartmarshall/shepherd-backend/internal/adapter/postgres/event"
	"github.com/heartmarshall/shepherd-backend/internal/adapter/postgres/group"
	"github.com/heartmarshall/shepherd-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/shepherd-backend/internal/app"
	"github.com/heartmarshall/shepherd-backend/internal/app/seeder"
	"github.com/heartmarshall/shepherd-backend/internal/auth"
	"github.com/heartmarshall/shepherd-backend/internal/config"
)

func main() {
	dryRunFlag := flag.Bool("dry-run", false, "log planned rows without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for DB connection).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if appCfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			logger.Error("migrate", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	repos := seeder.Repos{
		Users:      user.New(pool),
		Groups:     group.New(pool),
		Events:     event.New(pool),
		Attendance: attendance.New(pool),
	}
	pipeline := seeder.NewPipeline(logger, repos, postgres.NewTxManager(pool), auth.NewHasher(appCfg.Auth.BcryptCost), *seederCfg)
	if err := pipeline.Run(ctx); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding completed", slog.String("bishop_email", "bishop@"+seederCfg.EmailDomain))
}
