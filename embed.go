package dwellfix

import "embed"

// EmailFS holds the email templates shipped with the binary.
//
//go:embed templates/emails
var EmailFS embed.FS

// MigrationsFS holds the SQL schema and reference-data migrations.
//
//go:embed db/migrations
var MigrationsFS embed.FS
