package middleware

import (
	"context"
	"net/http"
	"strings"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/pedidos/backend/internal/interfaces/http/dto"
)

// ContextUIDKey is the context key holding the authenticated operator UID
const ContextUIDKey = "auth_uid"

// TokenVerifier verifies a Firebase ID token; *firebaseauth.Client satisfies it
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// FirebaseAuth rejects requests without a valid Firebase ID token in the
// Authorization header and stores the operator UID in the request context
func FirebaseAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Missing Authorization header")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			abortUnauthorized(c, "Authorization header must be 'Bearer <token>'")
			return
		}

		token, err := verifier.VerifyIDToken(c.Request.Context(), parts[1])
		if err != nil {
			abortUnauthorized(c, "Invalid or expired ID token")
			return
		}

		c.Set(ContextUIDKey, token.UID)
		c.Next()
	}
}

// GetUID returns the authenticated operator UID, empty when unauthenticated
func GetUID(c *gin.Context) string {
	return c.GetString(ContextUIDKey)
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrCodeUnauthorized, message))
}
