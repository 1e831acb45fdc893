package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetBuilder(t *testing.T) {
	b := &setBuilder{}
	b.add("name", "Alice")
	b.add("age", 30)

	query, args := b.build("patients", 7)

	assert.Equal(t,
		"UPDATE patients SET name = $1, age = $2, updated_at = $3 WHERE id = $4",
		query,
	)
	require.Len(t, args, 4)
	assert.Equal(t, "Alice", args[0])
	assert.Equal(t, 30, args[1])
	assert.Equal(t, int64(7), args[3])
}

func TestSetBuilderOnlyTimestamp(t *testing.T) {
	// An update with no explicit columns still stamps updated_at.
	b := &setBuilder{}
	query, args := b.build("doctors", 1)

	assert.Equal(t, "UPDATE doctors SET updated_at = $1 WHERE id = $2", query)
	assert.Len(t, args, 2)
}
