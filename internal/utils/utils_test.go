package utils

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserContext(t *testing.T) {
	t.Run("SetUserContext and GetUserIDFromContext", func(t *testing.T) {
		ctx := context.Background()
		userID := uint(100)
		email := "user@example.com"
		role := "customer"

		ctx = SetUserContext(ctx, userID, email, role)
		assert.NotNil(t, ctx)

		id, ok := GetUserIDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, userID, id)

		assert.Equal(t, email, GetUserEmailFromContext(ctx))
		assert.Equal(t, role, GetUserRoleFromContext(ctx))
	})

	t.Run("GetUserIDFromContext with empty context", func(t *testing.T) {
		_, ok := GetUserIDFromContext(context.Background())
		assert.False(t, ok)
	})
}

func TestToUint(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  uint
		expectErr bool
	}{
		{name: "Valid number", input: "123", expected: 123},
		{name: "Zero", input: "0", expected: 0},
		{name: "Negative number", input: "-1", expectErr: true},
		{name: "Not a number", input: "abc", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToUint(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestStringPointers(t *testing.T) {
	s := "hello"
	assert.Equal(t, &s, StrPtr("hello"))
	assert.Equal(t, "hello", PtrString(&s))
	assert.Equal(t, "", PtrString(nil))
}

func TestWriteJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSONError(w, "Product not found", 404)

	assert.Equal(t, 404, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Product not found", body["error"])
}
