// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the stores translate into service errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// pgErrCode extracts the PostgreSQL error code, or "" for other errors.
//
// The façade checks slugs and references before writing, but two racing
// creates can both pass that check; the schema's UNIQUE and FOREIGN KEY
// constraints are the backstop, and translating their violations keeps the
// race surfacing as the same user-addressable Conflict.
func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
