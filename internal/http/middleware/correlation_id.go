package middleware

import (
	"net/http"

	"github.com/tuanvumaihuynh/inventory-pos/pkg/correlationid"
)

// maxCorrelationIDLen bounds client supplied ids.
const maxCorrelationIDLen = 128

// CorrelationID stores the request's correlation id in its context and echoes
// it back. A fresh id is generated when the client sends none.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(correlationid.Header)
			if id == "" || len(id) > maxCorrelationIDLen {
				id = correlationid.New()
			}

			w.Header().Set(correlationid.Header, id)
			next.ServeHTTP(w, r.WithContext(correlationid.NewContext(r.Context(), id)))
		})
	}
}
