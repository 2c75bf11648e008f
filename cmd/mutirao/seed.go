package main

import (
	"context"
	"fmt"

	"mutirao/internal/db"
	"mutirao/internal/seed"
	"mutirao/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with sample data",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		volunteersRepo := store.NewVolunteerRepository(pool)
		areasRepo := store.NewAreaRepository(pool)
		donationsRepo := store.NewDonationRepository(pool)

		logrus.Info("Seeding sample data...")
		if err := seed.Seed(ctx, volunteersRepo, areasRepo, donationsRepo); err != nil {
			return fmt.Errorf("failed to seed data: %w", err)
		}

		logrus.Info("Sample data seeded successfully")

		return nil
	},
}
