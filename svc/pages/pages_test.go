package pages_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indishmarketer/simple-form-app/svc/pages"
)

func serve(t *testing.T, h http.HandlerFunc, method string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(method, "/", nil))
	return w
}

func TestLoad_Embedded(t *testing.T) {
	t.Parallel()

	p, err := pages.Load("")
	require.NoError(t, err)

	form := serve(t, p.Form(), http.MethodGet)
	assert.Equal(t, http.StatusOK, form.Code)
	assert.Equal(t, "text/html; charset=utf-8", form.Header().Get("Content-Type"))
	assert.Contains(t, form.Body.String(), `action="/submit"`)
	assert.Contains(t, form.Body.String(), `name="name"`)
	assert.Contains(t, form.Body.String(), `name="email"`)

	thanks := serve(t, p.ThankYou(), http.MethodGet)
	assert.Equal(t, http.StatusOK, thanks.Code)
	assert.Contains(t, thanks.Body.String(), "Thank you")
}

func TestLoad_Directory(t *testing.T) {
	t.Parallel()

	p, err := pages.Load(filepath.Join("testdata", "views"))
	require.NoError(t, err)

	assert.Equal(t, "<h1>custom form</h1>\n", serve(t, p.Form(), http.MethodGet).Body.String())
	assert.Equal(t, "<h1>custom thanks</h1>\n", serve(t, p.ThankYou(), http.MethodGet).Body.String())
}

func TestLoad_MissingPage(t *testing.T) {
	t.Parallel()

	_, err := pages.Load(filepath.Join("testdata", "partial"))
	assert.ErrorIs(t, err, pages.ErrPageNotFound)
	assert.Contains(t, err.Error(), pages.ThankYouFile)
}

func TestLoad_MissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := pages.Load(filepath.Join("testdata", "does-not-exist"))
	assert.ErrorIs(t, err, pages.ErrReadPage)
}

func TestLoad_NotADirectory(t *testing.T) {
	t.Parallel()

	_, err := pages.Load(filepath.Join("testdata", "views", pages.FormFile))
	assert.ErrorIs(t, err, pages.ErrReadPage)
}

func TestLoadFS_ServesFromMemory(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		pages.FormFile:     {Data: []byte("form v1")},
		pages.ThankYouFile: {Data: []byte("thanks v1")},
	}
	p, err := pages.LoadFS(fsys)
	require.NoError(t, err)

	// Changing the source after load does not affect responses.
	fsys[pages.FormFile] = &fstest.MapFile{Data: []byte("form v2")}
	delete(fsys, pages.ThankYouFile)

	assert.Equal(t, "form v1", serve(t, p.Form(), http.MethodGet).Body.String())
	assert.Equal(t, "thanks v1", serve(t, p.ThankYou(), http.MethodGet).Body.String())
}

func TestPages_Head(t *testing.T) {
	t.Parallel()

	p, err := pages.Load("")
	require.NoError(t, err)

	w := serve(t, p.Form(), http.MethodHead)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestMustLoad(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { pages.MustLoad("") })
	assert.Panics(t, func() { pages.MustLoad(filepath.Join("testdata", "partial")) })
}
