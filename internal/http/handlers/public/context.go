package public

import (
	"github.com/fastbite/fastbite/internal/http/response"
	"github.com/fastbite/fastbite/internal/models"

	"github.com/gin-gonic/gin"
)

// getSession reads the session placed on the context by the session
// middleware. Missing means the middleware did not run; that is a wiring bug,
// not a client error.
func getSession(c *gin.Context) (*models.Session, bool) {
	value, ok := c.Get("session")
	if !ok {
		response.Error(c, response.CodeInternal, "session missing from request context")
		return nil, false
	}
	session, ok := value.(*models.Session)
	if !ok || session == nil {
		response.Error(c, response.CodeInternal, "session has unexpected type")
		return nil, false
	}
	return session, true
}
