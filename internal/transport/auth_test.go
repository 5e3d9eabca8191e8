package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name   string
		key    string
		header string
		want   int
	}{
		{name: "disabled", key: "", header: "", want: http.StatusNoContent},
		{name: "missing token", key: "secret", header: "", want: http.StatusUnauthorized},
		{name: "wrong token", key: "secret", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "valid token", key: "secret", header: "Bearer secret", want: http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			AuthMiddleware(tt.key)(next).ServeHTTP(rec, req)
			require.Equal(t, tt.want, rec.Code)
		})
	}
}
