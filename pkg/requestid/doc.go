// Package requestid tags every HTTP request with a correlation identifier.
//
// Middleware reuses a well-formed "X-Request-ID" header sent by the client (or
// a fronting proxy) and otherwise generates a UUIDv4. The ID is stored in the
// request context and echoed back in the response header so that a failed form
// submission reported by a user can be matched with the server log line that
// carries the transport error.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//
// Invalid or oversized client IDs are silently replaced.
package requestid
