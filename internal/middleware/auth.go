package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"popsicles-assistant/internal/model"
	"popsicles-assistant/pkg/response"
)

const scopeKey = "scope"

// Auth authenticates the request and stores a model.Scope in the gin context.
//
// Two modes are supported:
//   - Bearer JWT (HS256, "user_id" claim) when an Authorization header is
//     present. Rejected tokens abort with 401.
//   - X-Session-ID header for anonymous sessions when no JWT secret is
//     configured or no Authorization header is sent.
//
// Requests with neither identity are rejected.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			sc, err := m.scopeFromBearer(authHeader)
			if err != nil {
				m.l.Warnf(c.Request.Context(), "middleware.Auth: %v", err)
				response.Unauthorized(c)
				c.Abort()
				return
			}
			c.Set(scopeKey, sc)
			c.Next()
			return
		}

		if sessionID := c.GetHeader("X-Session-ID"); sessionID != "" {
			c.Set(scopeKey, model.Scope{
				UserID:    sessionID,
				SessionID: sessionID,
			})
			c.Next()
			return
		}

		response.Unauthorized(c)
		c.Abort()
	}
}

func (m Middleware) scopeFromBearer(authHeader string) (model.Scope, error) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return model.Scope{}, errInvalidAuthHeader
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedSigningMethod
		}
		return []byte(m.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return model.Scope{}, errInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.Scope{}, errInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return model.Scope{}, errInvalidToken
	}

	sessionID := userID
	if sid, ok := claims["session_id"].(string); ok && sid != "" {
		sessionID = sid
	}

	return model.Scope{UserID: userID, SessionID: sessionID}, nil
}

// GetScope retrieves the Scope set by Auth. The zero Scope is returned for
// unauthenticated contexts (e.g. handlers mounted without Auth).
func GetScope(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, ok := v.(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
