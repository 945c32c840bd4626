package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DecompressRequest unpacks gzip request bodies so handlers always see the
// plain payload. Content encodings other than gzip and identity are rejected.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		encoding := strings.TrimSpace(c.GetHeader("Content-Encoding"))
		switch {
		case encoding == "" || strings.EqualFold(encoding, "identity"):
			c.Next()
			return
		case strings.EqualFold(encoding, "gzip"):
		default:
			c.AbortWithStatus(http.StatusUnsupportedMediaType)
			return
		}

		body := c.Request.Body
		reader, err := gzip.NewReader(body)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		defer reader.Close()
		defer body.Close()

		c.Request.Body = io.NopCloser(reader)
		c.Request.Header.Del("Content-Encoding")
		c.Next()
	}
}
