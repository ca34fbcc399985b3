package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware(t *testing.T) {
	clientID := uuid.NewString()

	tests := []struct {
		name      string
		status    int
		body      string
		header    string
		wantLevel zapcore.Level
		keepID    bool
	}{
		{name: "ok", status: http.StatusOK, body: "hello", wantLevel: zapcore.InfoLevel},
		{name: "client error", status: http.StatusNotFound, body: "nope", wantLevel: zapcore.WarnLevel},
		{name: "server error", status: http.StatusInternalServerError, body: "error", wantLevel: zapcore.ErrorLevel},
		{name: "client request id kept", status: http.StatusOK, body: "hello", header: clientID, wantLevel: zapcore.InfoLevel, keepID: true},
		{name: "malformed request id replaced", status: http.StatusOK, body: "hello", header: "abc", wantLevel: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.DebugLevel)

			var ctxReqID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxReqID = RequestIDFromContext(r.Context())
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/genres", nil)
			if tt.header != "" {
				req.Header.Set(HeaderRequestID, tt.header)
			}
			rr := httptest.NewRecorder()

			LoggingMiddleware(zap.New(core).Sugar())(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.body, rr.Body.String())

			reqID := rr.Header().Get(HeaderRequestID)
			_, err := uuid.Parse(reqID)
			require.NoError(t, err)
			assert.Equal(t, reqID, ctxReqID)
			if tt.keepID {
				assert.Equal(t, clientID, reqID)
			}

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, "http request", entries[0].Message)
			assert.Equal(t, tt.wantLevel, entries[0].Level)

			fields := entries[0].ContextMap()
			assert.Equal(t, reqID, fields["request_id"])
			assert.Equal(t, "/api/genres", fields["uri"])
			assert.Equal(t, int64(tt.status), fields["status"])
			assert.Equal(t, int64(len(tt.body)), fields["bytes"])
		})
	}
}
