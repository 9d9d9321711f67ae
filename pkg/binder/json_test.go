package binder_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indishmarketer/simple-form-app/pkg/binder"
)

type contactJSON struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newJSONRequest(body, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()

		var got contactJSON
		err := binder.JSON()(newJSONRequest(`{"name":"Jane","email":"jane@example.com"}`, "application/json"), &got)
		require.NoError(t, err)
		assert.Equal(t, contactJSON{Name: "Jane", Email: "jane@example.com"}, got)
	})

	t.Run("charset parameter", func(t *testing.T) {
		t.Parallel()

		var got contactJSON
		err := binder.JSON()(newJSONRequest(`{"name":"Jane"}`, "application/json; charset=utf-8"), &got)
		require.NoError(t, err)
		assert.Equal(t, "Jane", got.Name)
	})

	t.Run("unknown fields are ignored", func(t *testing.T) {
		t.Parallel()

		var got contactJSON
		err := binder.JSON()(newJSONRequest(`{"name":"Jane","email":"jane@example.com","newsletter":true}`, "application/json"), &got)
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", got.Email)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		var got contactJSON
		err := binder.JSON()(newJSONRequest(`{"name":`, "application/json"), &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
		assert.NotErrorIs(t, err, binder.ErrBinderNotApplicable)
	})

	t.Run("wrong value type", func(t *testing.T) {
		t.Parallel()

		var got contactJSON
		err := binder.JSON()(newJSONRequest(`{"name":42}`, "application/json"), &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		var got contactJSON
		err := binder.JSON()(newJSONRequest("", "application/json"), &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
		assert.Contains(t, err.Error(), "empty body")
	})

	t.Run("trailing data", func(t *testing.T) {
		t.Parallel()

		var got contactJSON
		err := binder.JSON()(newJSONRequest(`{"name":"a"}{"name":"b"}`, "application/json"), &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("body too large", func(t *testing.T) {
		t.Parallel()

		big := `{"name":"` + strings.Repeat("a", binder.DefaultMaxJSONSize) + `"}`
		var got contactJSON
		err := binder.JSON()(newJSONRequest(big, "application/json"), &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
		assert.Contains(t, err.Error(), "too large")
	})

	t.Run("cancelled request context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req := newJSONRequest(`{"name":"Jane"}`, "application/json").WithContext(ctx)

		var got contactJSON
		assert.ErrorIs(t, binder.JSON()(req, &got), binder.ErrFailedToParseJSON)
	})

	t.Run("not applicable to other content types", func(t *testing.T) {
		t.Parallel()

		var got contactJSON
		err := binder.JSON()(newJSONRequest("name=Jane", "application/x-www-form-urlencoded"), &got)
		assert.ErrorIs(t, err, binder.ErrBinderNotApplicable)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)

		err = binder.JSON()(newJSONRequest(`{"name":"Jane"}`, ""), &got)
		assert.ErrorIs(t, err, binder.ErrBinderNotApplicable)
		assert.ErrorIs(t, err, binder.ErrMissingContentType)
		assert.Empty(t, got.Name)
	})
}
