// Package migrations embeds the SQL schema migrations for both service
// databases so the binaries can run them at startup.
package migrations

import "embed"

//go:embed user/*.sql
var UserFS embed.FS

//go:embed appointment/*.sql
var AppointmentFS embed.FS
