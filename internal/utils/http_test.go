package utils

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	recorder := httptest.NewRecorder()

	written, err := WriteJSON(recorder, map[string]string{"status": "ok"}, 200)

	require.NoError(t, err)
	assert.Positive(t, written)
	assert.Equal(t, 200, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	recorder := httptest.NewRecorder()

	_, err := WriteJSON(recorder, func() {}, 200)

	require.Error(t, err)
	assert.Equal(t, 500, recorder.Code)
}

func TestGetAccountIDFromContext(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		ctx := context.WithValue(req.Context(), AccountIDCtxKey, int64(42))

		accountID, ok := GetAccountIDFromContext(ctx)

		require.True(t, ok)
		assert.Equal(t, int64(42), accountID)
	})

	t.Run("missing", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)

		_, ok := GetAccountIDFromContext(req.Context())

		assert.False(t, ok)
	})
}
