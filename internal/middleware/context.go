package middleware

// ContextKeyRequestID stores the per-request trace identifier.
const ContextKeyRequestID = "request_id"

// HeaderRequestID is the header used to propagate the identifier.
const HeaderRequestID = "X-Request-ID"
