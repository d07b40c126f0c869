// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/artcine/internal/platform/database/schema"
)

func TestColumns_AreUniqueAndComplete(t *testing.T) {
	for name, columns := range map[string][]string{
		schema.UserAccount.Table: schema.UserAccount.Columns(),
		schema.CoreMovie.Table:   schema.CoreMovie.Columns(),
	} {
		t.Run(name, func(t *testing.T) {
			seen := map[string]bool{}
			for _, column := range columns {
				assert.NotEmpty(t, column)
				assert.False(t, seen[column], "duplicate column %q", column)
				seen[column] = true
			}
		})
	}

	assert.Len(t, schema.UserAccount.Columns(), 8)
	assert.Len(t, schema.CoreMovie.Columns(), 7)
}
