// Package db embeds the storefront schema applied at startup.
package db

import _ "embed"

// Schema creates every table and index idempotently.
//
//go:embed migrations/001_schema.sql
var Schema string
