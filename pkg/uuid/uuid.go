// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid generates the identifiers of library books.

Version 7 values are used so ids sort by creation time, which keeps the
primary key index of library.book append-mostly.
*/
package uuid

import "github.com/google/uuid"

// New returns a new UUIDv7 string. It panics only if the system entropy
// source fails.
func New() string {
	return uuid.Must(uuid.NewV7()).String()
}
