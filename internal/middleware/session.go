package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"task-board/internal/model"
)

const (
	// SessionHeader carries the board id between requests of one UI session.
	SessionHeader = "X-Session-ID"

	scopeKey = "scope"
)

// Session resolves the caller's board. A missing or malformed session id
// starts a new session; the id in use is always echoed back.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.New().String()
			m.l.Debugf(c.Request.Context(), "middleware.Session: new session %s", sessionID)
		}

		c.Set(scopeKey, model.Scope{SessionID: sessionID})
		c.Header(SessionHeader, sessionID)
		c.Next()
	}
}

// GetScope returns the scope stored by Session, or a zero Scope.
func GetScope(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, _ := v.(model.Scope)
	return sc
}
