// Package clientip resolves the originating address of a form submitter when
// the server runs behind a reverse proxy or a PaaS router.
//
// Headers are checked in order and the first parseable address wins:
//
//	CF-Connecting-IP, X-Forwarded-For (first valid entry), X-Real-IP, RemoteAddr
//
// Middleware stores the resolved address in the request context and
// LoggerExtractor adds it to every request-scoped log line as "client_ip":
//
//	r.Use(clientip.Middleware)
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
package clientip
