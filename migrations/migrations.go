// Package migrations содержит SQL-миграции goose для каждого поддерживаемого диалекта.
package migrations

import "embed"

// FS хранит миграции, каталог совпадает с именем диалекта goose
//
//go:embed postgres/*.sql sqlite3/*.sql
var FS embed.FS
