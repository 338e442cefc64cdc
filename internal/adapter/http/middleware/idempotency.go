package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"oficina_insufilm/internal/usecase/interfaces"
	"oficina_insufilm/pkg"

	"github.com/gin-gonic/gin"
)

const HeaderIdempotencyKey = "Idempotency-Key"

var errDuplicateRequest = pkg.NewDomainErrorSimple("DUPLICATE_REQUEST", "A request with this Idempotency-Key was already processed", http.StatusConflict)

// Idempotency rejects a repeated POST that carries an Idempotency-Key already
// seen within ttl. Failed requests release their key so the client can retry.
// A nil store disables the check.
func Idempotency(store interfaces.IIdempotencyStore, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		key := strings.TrimSpace(c.GetHeader(HeaderIdempotencyKey))
		if key == "" {
			c.Next()
			return
		}
		key = c.Request.Method + ":" + c.Request.URL.Path + ":" + key

		ctx := c.Request.Context()
		reserved, err := store.Reserve(ctx, key, ttl)
		if err != nil {
			log.Printf("[idempotency][middleware] reserve failed, continuing key=%s err=%v", key, err)
			c.Next()
			return
		}
		if !reserved {
			log.Printf("[idempotency][middleware] duplicate request key=%s", key)
			c.AbortWithStatusJSON(errDuplicateRequest.HTTPStatus, errDuplicateRequest.ToHTTPError())
			return
		}

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			if err := store.Release(ctx, key); err != nil {
				log.Printf("[idempotency][middleware] release failed key=%s err=%v", key, err)
			}
		}
	}
}
