package core

// MountRoutes registers the global middleware chain and all routes provided
// by the application entry point via RouteRegistrars.
//
// Middleware ordering rationale:
//  1. Recoverer        - Catches panics; outermost to catch all failures.
//  2. RequestID        - Generates/propagates correlation ID for tracing.
//  3. SecurityHeaders  - Ensures all responses include security headers.
//  4. RequestLogger    - Structured logging with request correlation.
//  5. CORS             - Browser security headers; answers preflights.
//  6. Metrics          - Request latency and count recording.
func (s *Server) MountRoutes() {
	s.router.Use(s.Recoverer)
	s.router.Use(RequestIDMiddleware)
	s.router.Use(s.SecurityHeadersMiddleware)
	s.router.Use(RequestLogger(s.Logger))
	s.router.Use(NewCORSMiddleware(s.corsAllowedOrigins()))
	s.router.Use(s.MetricsMiddleware)

	for _, registrar := range s.RouteRegistrars {
		registrar(s.router)
	}
}

// corsAllowedOrigins returns the CORS allowed origins from configuration.
func (s *Server) corsAllowedOrigins() []string {
	if s.Config != nil && len(s.Config.Security.CorsAllowedOrigins) > 0 {
		return s.Config.Security.CorsAllowedOrigins
	}
	return []string{"*"}
}
