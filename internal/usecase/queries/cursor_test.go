//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"event-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor(t *testing.T) {
	at := time.Date(2030, 1, 10, 9, 0, 0, 123456789, time.UTC)
	id := uuid.New()

	gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))

	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Equal(t, at.Truncate(time.Microsecond), gotAt)
}

func TestDecodeAfterCursor_Rejects(t *testing.T) {
	enc := func(s string) string { return base64.URLEncoding.EncodeToString([]byte(s)) }

	for name, cursor := range map[string]string{
		"empty":         "",
		"not base64":    "***",
		"wrong version": enc("v0:1-" + uuid.NewString()),
		"missing id":    enc("v1:12345"),
		"bad timestamp": enc("v1:abc-" + uuid.NewString()),
		"bad uuid":      enc("v1:12345-nope"),
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-3))
	assert.Equal(t, 50, queries.ValidateLimit(50))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(1000))
}
