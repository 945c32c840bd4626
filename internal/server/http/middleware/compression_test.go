package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestDecompressRequest(t *testing.T) {
	engine := gin.New()
	engine.POST("/ingest", DecompressRequest(), func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, string(body))
	})

	t.Run("gzip body is decoded", func(t *testing.T) {
		var buf bytes.Buffer
		gz := gzip.NewWriter(&buf)
		if _, err := gz.Write([]byte(`{"total":100}`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := gz.Close(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		req := httptest.NewRequest(http.MethodPost, "/ingest", &buf)
		req.Header.Set("Content-Encoding", "gzip")
		recorder := httptest.NewRecorder()
		engine.ServeHTTP(recorder, req)

		if recorder.Code != http.StatusOK {
			t.Fatalf("unexpected status %d", recorder.Code)
		}
		if recorder.Body.String() != `{"total":100}` {
			t.Fatalf("unexpected body %q", recorder.Body.String())
		}
	})

	t.Run("plain body passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/ingest", strings.NewReader("plain"))
		recorder := httptest.NewRecorder()
		engine.ServeHTTP(recorder, req)

		if recorder.Code != http.StatusOK || recorder.Body.String() != "plain" {
			t.Fatalf("unexpected response %d %q", recorder.Code, recorder.Body.String())
		}
	})

	t.Run("unknown encoding is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/ingest", strings.NewReader("data"))
		req.Header.Set("Content-Encoding", "br")
		recorder := httptest.NewRecorder()
		engine.ServeHTTP(recorder, req)

		if recorder.Code != http.StatusUnsupportedMediaType {
			t.Fatalf("unexpected status %d", recorder.Code)
		}
	})

	t.Run("corrupt gzip is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/ingest", strings.NewReader("not gzip"))
		req.Header.Set("Content-Encoding", "gzip")
		recorder := httptest.NewRecorder()
		engine.ServeHTTP(recorder, req)

		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("unexpected status %d", recorder.Code)
		}
	})
}
