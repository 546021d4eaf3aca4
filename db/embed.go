package db

import "embed"

// Migrations holds the SQL migration files applied at startup
//
//go:embed migrations/*.sql
var Migrations embed.FS
