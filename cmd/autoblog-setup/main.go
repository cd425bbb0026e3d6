// autoblog-setup bootstraps the database: it creates the schema, seeds the
// admin user, and optionally seeds the sample posts. Safe to run repeatedly.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dfryer1193/autoblog/shared/db"
	"github.com/dfryer1193/autoblog/shared/db/postgres"
	"github.com/dfryer1193/autoblog/shared/logging"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const setupTimeout = 60 * time.Second

func main() {
	_ = godotenv.Load()
	logging.Setup()

	var (
		adminUser     string
		adminPassword string
		seedPosts     bool
	)

	rootCmd := &cobra.Command{
		Use:   "autoblog-setup",
		Short: "Create the autoblog schema and seed data",
		Long: `Creates the users and blog_posts tables if they do not exist, seeds the
admin user, and optionally seeds the sample posts into an empty table.

Database configuration is resolved from the environment the same way the
server resolves it (DATABASE_URL and friends, or the discrete POSTGRES_*
fields). Unlike the server, this tool fails loudly when no configuration
is present.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if adminPassword == "" {
				adminPassword = os.Getenv("ADMIN_PASSWORD")
			}
			return run(cmd.Context(), adminUser, adminPassword, seedPosts)
		},
	}

	rootCmd.Flags().StringVar(&adminUser, "admin-user", "admin", "username for the seeded admin account")
	rootCmd.Flags().StringVar(&adminPassword, "admin-password", "", "password for the seeded admin account (defaults to ADMIN_PASSWORD)")
	rootCmd.Flags().BoolVar(&seedPosts, "seed-posts", false, "seed the sample posts when blog_posts is empty")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("Setup failed")
	}
}

func run(ctx context.Context, adminUser, adminPassword string, seedPosts bool) error {
	if adminPassword == "" {
		return fmt.Errorf("no admin password given; set --admin-password or ADMIN_PASSWORD")
	}

	descriptor, ok := db.NewConfigResolver().Resolve()
	if !ok {
		return fmt.Errorf("no database configuration found; set DATABASE_URL or the discrete POSTGRES_* variables")
	}

	ctx, cancel := context.WithTimeout(ctx, setupTimeout)
	defer cancel()

	log.Info().Msg("Connecting to database...")
	handle, err := postgres.Open(ctx, descriptor)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer handle.Close()

	log.Info().Msg("Creating tables and seed data...")
	err = postgres.Bootstrap(ctx, handle, postgres.BootstrapOptions{
		AdminUsername: adminUser,
		AdminPassword: adminPassword,
		SeedPosts:     seedPosts,
	})
	if err != nil {
		return err
	}

	log.Info().Msg("Database setup complete")
	return nil
}
