package repository

import "database/sql"

// Helpers shared by repositories that project LEFT JOIN columns.  A missing
// joined row scans as NULL and must surface to the client as JSON null, so
// nullable columns travel as pointers rather than being dropped.

func nullID(v sql.NullInt64) *uint64 {
	if !v.Valid {
		return nil
	}
	id := uint64(v.Int64)
	return &id
}

func nullStr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullCount(v sql.NullInt64) *uint32 {
	if !v.Valid {
		return nil
	}
	n := uint32(v.Int64)
	return &n
}
