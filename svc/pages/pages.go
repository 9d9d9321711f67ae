// Package pages serves the static form and thank-you HTML documents.
//
// Both documents are read once when Pages is built, either from the
// views embedded in the binary or from a directory on disk. Requests are
// answered from memory.
package pages

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/indishmarketer/simple-form-app/handler"
)

// File names looked up in the views directory.
const (
	FormFile     = "form.html"
	ThankYouFile = "thank-you.html"
)

//go:embed views/*.html
var embedded embed.FS

// Pages holds the rendered documents.
type Pages struct {
	form     []byte
	thankYou []byte
}

// Load reads the pages from dir, or from the embedded views when dir is empty.
func Load(dir string) (*Pages, error) {
	if dir == "" {
		return LoadFS(Embedded())
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Join(ErrReadPage, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrReadPage, dir)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads both pages from the root of fsys.
func LoadFS(fsys fs.FS) (*Pages, error) {
	form, err := readPage(fsys, FormFile)
	if err != nil {
		return nil, err
	}
	thankYou, err := readPage(fsys, ThankYouFile)
	if err != nil {
		return nil, err
	}
	return &Pages{form: form, thankYou: thankYou}, nil
}

// MustLoad works like Load but panics on error.
func MustLoad(dir string) *Pages {
	p, err := Load(dir)
	if err != nil {
		panic(err)
	}
	return p
}

// Embedded returns the views compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "views")
	if err != nil {
		panic("pages: embedded views are missing: " + err.Error())
	}
	return sub
}

func readPage(fsys fs.FS, name string) ([]byte, error) {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadPage, name, err)
	}
	return data, nil
}

// Form serves the submission form.
func (p *Pages) Form() http.HandlerFunc {
	return page(p.form)
}

// ThankYou serves the page shown after a successful submission.
func (p *Pages) ThankYou() http.HandlerFunc {
	return page(p.thankYou)
}

func page(body []byte) http.HandlerFunc {
	return handler.Wrap(func(ctx handler.Context, _ struct{}) handler.Response {
		return handler.HTML(http.StatusOK, body)
	})
}
