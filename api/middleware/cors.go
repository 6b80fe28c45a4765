package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns middleware for the browser-facing storefront UI. The API is
// unauthenticated, so any origin may read it.
func CORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With"},
		MaxAge:         300,
	}).Handler
}
