package server

import (
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/blake2b"
)

// ETag returns a strong entity tag for body.
func ETag(body []byte) string {
	sum := blake2b.Sum256(body)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

// matchesETag reports whether an If-None-Match header value names etag.
func matchesETag(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		candidate = strings.TrimPrefix(candidate, "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}

// respond writes body with an ETag. A successful response whose tag the
// client already has becomes 304 Not Modified.
func respond(c *gin.Context, status int, contentType string, body []byte) {
	if status != http.StatusOK {
		c.Data(status, contentType, body)
		return
	}
	etag := ETag(body)
	c.Header("ETag", etag)
	c.Header("Cache-Control", "no-cache")
	if inm := c.GetHeader("If-None-Match"); inm != "" && matchesETag(inm, etag) {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(status, contentType, body)
}
