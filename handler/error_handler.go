package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/indishmarketer/simple-form-app/pkg/logger"
)

// errorInfo is what the client sees for a failed request.
type errorInfo struct {
	StatusCode int
	Message    string
	LogLevel   slog.Level
}

func classifyError(err error) errorInfo {
	info := errorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    http.StatusText(http.StatusInternalServerError),
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Message
	}

	info.LogLevel = slog.LevelError
	if info.StatusCode >= http.StatusBadRequest && info.StatusCode < http.StatusInternalServerError {
		info.LogLevel = slog.LevelWarn
	}
	return info
}

// NewErrorHandler creates the default error handler. It logs the full error
// and answers with a plain-text body carrying only the client-facing message.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := classifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Error(err),
			logger.Status(info.StatusCode),
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.Component("error_handler"),
		)

		if err := Text(info.StatusCode, info.Message).Render(ctx.ResponseWriter(), r); err != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "failed to write error response",
				logger.Error(err),
				logger.Component("error_handler"),
			)
		}
	}
}
