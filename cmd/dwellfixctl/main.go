// cmd/dwellfixctl/main.go
package main

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	dwellfix "github.com/dwellfix/dwellfix"
	"github.com/dwellfix/dwellfix/internal/auth"
	"github.com/dwellfix/dwellfix/internal/config"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

const version = "0.3.0"

var (
	tokenName  string
	tokenEmail string
)

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)

	tokenCmd.Flags().StringVar(&tokenName, "name", "", "Display name embedded in the token")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "Email address embedded in the token")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "dwellfixctl",
	Short: "dwellfixctl manages a dwellfix deployment",
	Long:  `dwellfixctl runs schema migrations and mints development identity tokens.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Run: func(cmd *cobra.Command, args []string) {
		m, db := newMigrator()
		defer db.Close()

		if err := m.Up(); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				fmt.Println("schema already up to date")
				return
			}
			log.Fatalf("Failed to apply migrations: %v", err)
		}
		fmt.Println("migrations applied")
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	Run: func(cmd *cobra.Command, args []string) {
		m, db := newMigrator()
		defer db.Close()

		if err := m.Steps(-1); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				fmt.Println("nothing to roll back")
				return
			}
			log.Fatalf("Failed to roll back migration: %v", err)
		}
		fmt.Println("rolled back one migration")
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token [profile-id]",
	Short: "Mint a development identity token",
	Long: `Mint a signed bearer token for the given profile id, using the locally
configured identity secret. Intended for development and testing only.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		if cfg.IsProduction() {
			log.Fatal("refusing to mint tokens in production")
		}

		verifier := auth.NewVerifier(cfg.Identity.Secret, cfg.Identity.Issuer, cfg.Identity.ExpiryPeriod)
		token, err := verifier.Mint(args[0], tokenName, tokenEmail)
		if err != nil {
			log.Fatalf("Failed to mint token: %v", err)
		}
		fmt.Println(token)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dwellfixctl v%s\n", version)
	},
}

// newMigrator opens the configured database and wraps it with the embedded
// migration source. The caller closes the returned *sql.DB.
func newMigrator() (*migrate.Migrate, *sql.DB) {
	cfg := config.Load()

	source, err := iofs.New(fs.FS(dwellfix.MigrationsFS), "db/migrations")
	if err != nil {
		log.Fatalf("Failed to load embedded migrations: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatalf("Failed to prepare migration driver: %v", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, cfg.Database.Name, driver)
	if err != nil {
		log.Fatalf("Failed to create migrator: %v", err)
	}
	return m, db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
