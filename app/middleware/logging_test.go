package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"reembolso-api/global"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingRecordsRequestFields(t *testing.T) {
	var buf bytes.Buffer
	prev := global.Logger
	global.Logger = zerolog.New(&buf)
	defer func() { global.Logger = prev }()

	handler := Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/expenses/pendentes?role=socio", nil))

	line := buf.String()
	assert.Contains(t, line, `"method":"GET"`)
	assert.Contains(t, line, `"path":"/expenses/pendentes"`)
	assert.Contains(t, line, `"query":"role=socio"`)
	assert.Contains(t, line, `"status":400`)
}

func TestLoggingOmitsEmptyQuery(t *testing.T) {
	var buf bytes.Buffer
	prev := global.Logger
	global.Logger = zerolog.New(&buf)
	defer func() { global.Logger = prev }()

	handler := Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/expenses", nil))

	assert.NotContains(t, buf.String(), `"query"`)
}
