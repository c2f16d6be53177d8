package mw

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// KeepSubmission is the context key a handler sets to true when a request
// answered with an error still stored data, so its key must not be released.
const KeepSubmission = "dedupe.keep"

// Dedupe rejects a write whose client, route and body match one accepted
// within window, so a double-clicked form is stored once. The key is
// released when the first request does not succeed, allowing a retry,
// unless the handler set KeepSubmission.
func Dedupe(store *cache.Cache, window time.Duration, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unable to read request body"})
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		key := submissionKey(c.ClientIP(), c.Request.Method, c.Request.URL.Path, body)
		if err := store.Add(key, struct{}{}, window); err != nil {
			log.Info("duplicate submission rejected",
				zap.String("client_ip", c.ClientIP()),
				zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error": "identical request already submitted, wait before retrying",
				"kind":  "duplicate_submission",
			})
			return
		}

		c.Next()

		if status := c.Writer.Status(); status < 200 || status >= 300 {
			if !c.GetBool(KeepSubmission) {
				store.Delete(key)
			}
		}
	}
}

func submissionKey(ip, method, path string, body []byte) string {
	sum := sha256.Sum256(body)
	return ip + " " + method + " " + path + " " + hex.EncodeToString(sum[:])
}
