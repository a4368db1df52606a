package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSourceFlags(t *testing.T) {
	assert.NoError(t, validateSourceFlags("my-bucket", ""))
	assert.NoError(t, validateSourceFlags("", "./data"))
	assert.Error(t, validateSourceFlags("my-bucket", "./data"))
	assert.Error(t, validateSourceFlags("", ""))
}

func TestResolveReference(t *testing.T) {
	ref, err := resolveReference("2025-10-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC), ref)

	// Default is today.
	ref, err = resolveReference("")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ref, time.Minute)
}

func TestResolveReferenceInvalid(t *testing.T) {
	for _, value := range []string{"2025-13-01", "15-10-2025", "yesterday"} {
		_, err := resolveReference(value)
		require.Error(t, err, value)
		assert.Contains(t, err.Error(), "expected YYYY-MM-DD")
	}
}
