// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToPgx5DSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@db:5432/shelf", "pgx5://u:p@db:5432/shelf"},
		{"postgresql://u:p@db/shelf?sslmode=disable", "pgx5://u:p@db/shelf?sslmode=disable"},
		{"pgx5://u:p@db/shelf", "pgx5://u:p@db/shelf"},
		{"host=db user=u", "host=db user=u"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, convertToPgx5DSN(tt.in))
		})
	}
}
