package shared_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joinboard/joinboard-api/internal/api/shared"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()

		ctx := shared.SetTraceID(context.Background())
		traceID := shared.GetTraceID(ctx)
		assert.Len(t, traceID, shared.TraceIDLength*2)
	})

	t.Run("unset context", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, shared.GetTraceID(context.Background()))
	})

	t.Run("IDs are unique", func(t *testing.T) {
		t.Parallel()

		a := shared.GetTraceID(shared.SetTraceID(context.Background()))
		b := shared.GetTraceID(shared.SetTraceID(context.Background()))
		assert.NotEqual(t, a, b)
	})
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	type payload struct {
		Email string `validate:"required,email"`
	}

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, shared.ValidateRequest(&payload{Email: "maria@example.com"}))
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, shared.ValidateRequest(&payload{Email: "nope"}))
	})
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/task/", nil)
	req = req.WithContext(shared.SetTraceID(req.Context()))
	w := httptest.NewRecorder()

	shared.RespondWithError(w, req, http.StatusNotFound, "Task not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Task not found", resp.Error)
	assert.NotEmpty(t, resp.TraceID)

	// The numeric code is for logs only.
	assert.NotContains(t, w.Body.String(), `"code"`)
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"maria"}`))
	var p payload
	require.NoError(t, shared.DecodeJSON(req, &p))
	assert.Equal(t, "maria", p.Name)
}
