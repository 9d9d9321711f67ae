package handler

import "net/http"

type textResponse struct {
	status int
	body   string
}

func (t textResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(t.status)
	_, err := w.Write([]byte(t.body))
	return err
}

// Text creates a plain-text response with the given status code.
func Text(status int, body string) Response {
	return textResponse{status: status, body: body}
}

type htmlResponse struct {
	status int
	body   []byte
}

func (h htmlResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(h.status)
	if r.Method == http.MethodHead {
		return nil
	}
	_, err := w.Write(h.body)
	return err
}

// HTML creates a response from pre-rendered HTML. The slice is written as
// is and must not be modified afterwards.
func HTML(status int, body []byte) Response {
	return htmlResponse{status: status, body: body}
}

type redirectResponse struct {
	url  string
	code int
}

func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	http.Redirect(w, req, r.url, r.code)
	return nil
}

// Redirect creates a 302 Found redirect response.
//
// Example:
//
//	return handler.Redirect("/thank-you")
func Redirect(url string) Response {
	return redirectResponse{url: url, code: http.StatusFound}
}
