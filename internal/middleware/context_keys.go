package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// ownerIDKey is the key used to store the authenticated owner's ID.
const ownerIDKey = contextKey("ownerID")

// WithOwnerID returns a copy of ctx carrying the owner ID.
func WithOwnerID(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerIDKey, ownerID)
}

// GetOwnerIDFromContext retrieves the authenticated owner ID set by AuthMiddleware.
// It returns the owner ID and a boolean indicating if it was found.
func GetOwnerIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(ownerIDKey)); exists {
		ownerID, ok := v.(string)
		return ownerID, ok && ownerID != ""
	}
	ownerID, ok := c.Request.Context().Value(ownerIDKey).(string)
	return ownerID, ok && ownerID != ""
}
