package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AWLL-inc/work-management-sub003/internal/query"
	"github.com/AWLL-inc/work-management-sub003/internal/service"
)

const principalKey = "principal"

// AuthMiddleware validates JWT tokens and sets the principal in the
// request context. Every error short-circuits with the uniform envelope
// before any scope resolution or validation runs.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Printf("❌ [Auth] Missing Authorization header - Path: %s", c.Request.URL.Path)
			abortUnauthorized(c, "Authorization header required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			log.Printf("❌ [Auth] Invalid header format - Path: %s", c.Request.URL.Path)
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		token, err := authService.ValidateToken(parts[1])
		if err != nil || !token.Valid {
			log.Printf("❌ [Auth] Invalid token - Path: %s, Error: %v", c.Request.URL.Path, err)
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		principal, err := authService.PrincipalFromToken(token)
		if err != nil {
			log.Printf("❌ [Auth] Failed to extract principal - Path: %s, Error: %v", c.Request.URL.Path, err)
			abortUnauthorized(c, "Invalid token claims")
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequestLogger logs all incoming requests with details
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		statusEmoji := "✅"
		if status >= 400 && status < 500 {
			statusEmoji = "⚠️"
		} else if status >= 500 {
			statusEmoji = "❌"
		}

		log.Printf("%s [%s] %s %d - %v", statusEmoji, method, path, status, duration)
	}
}

// GetPrincipal extracts the authenticated principal from the gin context
func GetPrincipal(c *gin.Context) (query.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return query.Principal{}, false
	}
	principal, ok := value.(query.Principal)
	return principal, ok
}

// RequirePrincipal aborts with the uniform envelope when no principal is set
func RequirePrincipal(c *gin.Context) (query.Principal, bool) {
	principal, ok := GetPrincipal(c)
	if !ok {
		log.Printf("❌ [Auth] User not authenticated - Path: %s", c.Request.URL.Path)
		abortUnauthorized(c, "User not authenticated")
		return query.Principal{}, false
	}
	return principal, true
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
	c.Abort()
}
