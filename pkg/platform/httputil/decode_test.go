package httputil

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "aquaria/pkg/domain"
	dErrors "aquaria/pkg/domain-errors"
	"aquaria/pkg/requestcontext"
)

type nameRequest struct {
	Name string `json:"name"`
}

func (r *nameRequest) Normalize() { r.Name = strings.TrimSpace(r.Name) }

func (r *nameRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.Name == "taken" {
		return dErrors.New(dErrors.CodeConflict, "name already used")
	}
	return nil
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func decode(body string) (*nameRequest, *httptest.ResponseRecorder, bool) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req, ok := DecodeAndPrepare[nameRequest](w, r, discard, context.Background(), "req-1")
	return req, w, ok
}

func TestDecodeAndPrepare(t *testing.T) {
	t.Run("normalizes and validates", func(t *testing.T) {
		req, _, ok := decode(`{"name":"  Reef  "}`)
		require.True(t, ok)
		assert.Equal(t, "Reef", req.Name)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, w, ok := decode(`{"name":`)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"bad_request","error_description":"invalid request body"}`, w.Body.String())
	})

	t.Run("plain validation error", func(t *testing.T) {
		_, w, ok := decode(`{"name":"   "}`)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"validation_failed","error_description":"name is required"}`, w.Body.String())
	})

	t.Run("domain error keeps its code", func(t *testing.T) {
		_, w, ok := decode(`{"name":"taken"}`)
		assert.False(t, ok)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestWriteError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{dErrors.New(dErrors.CodeValidation, "bad"), http.StatusBadRequest},
		{dErrors.New(dErrors.CodeBadRequest, "bad"), http.StatusBadRequest},
		{dErrors.New(dErrors.CodeUnauthorized, "who"), http.StatusUnauthorized},
		{dErrors.New(dErrors.CodeOwnership, "mine"), http.StatusForbidden},
		{dErrors.New(dErrors.CodeNotFound, "gone"), http.StatusNotFound},
		{dErrors.New(dErrors.CodeConflict, "clash"), http.StatusConflict},
		{dErrors.New(dErrors.CodeTooManyRequests, "slow down"), http.StatusTooManyRequests},
		{dErrors.New(dErrors.CodeInvalidTransition, "no"), http.StatusConflict},
		{dErrors.Wrap(errors.New("db"), dErrors.CodeInternal, "oops"), http.StatusInternalServerError},
		{errors.New("raw"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		WriteError(w, tc.err)
		assert.Equal(t, tc.status, w.Code, tc.err.Error())
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	}
}

func TestRequireOwnerID(t *testing.T) {
	ownerID := id.OwnerID(uuid.New())
	got, err := RequireOwnerID(requestcontext.WithOwnerID(context.Background(), ownerID), discard, "req")
	require.NoError(t, err)
	assert.Equal(t, ownerID, got)

	_, err = RequireOwnerID(context.Background(), discard, "req")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
}
