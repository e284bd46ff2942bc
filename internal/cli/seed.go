package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/cmlabs-hris/nomina-backend-go/internal/fixtures"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/nomina-backend-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/nomina-backend-go/migrations"
	"github.com/spf13/cobra"
)

// SeedOptions holds flags for the seed command.
type SeedOptions struct {
	DatabaseURL string
	SkipMigrate bool
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the fixtures dataset into PostgreSQL",
		Long: `Apply the schema migrations and insert the fixtures dataset in a single
transaction. The target tables must be empty.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.DatabaseURL == "" {
				return errors.New("--database-url or DATABASE_URL is required")
			}

			ds, err := fixtures.Load(rootOpts.Fixtures)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			db, err := database.NewPostgreSQLDB(ctx, opts.DatabaseURL)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer db.Close()

			if !opts.SkipMigrate {
				if err := migrations.Apply(ctx, db); err != nil {
					return fmt.Errorf("failed to apply migrations: %w", err)
				}
			}
			if err := postgresql.Seed(ctx, db, ds); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d branches, %d employees, %d users, %d incidents\n",
				len(ds.Branches), len(ds.Employees), len(ds.Users), len(ds.Incidents))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.DatabaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
	cmd.Flags().BoolVar(&opts.SkipMigrate, "skip-migrate", false, "do not apply schema migrations first")

	return cmd
}
