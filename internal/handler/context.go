package handler

import "github.com/gin-gonic/gin"

// Context keys set by the JWT middleware.
const (
	CtxUserID   = "user_id"
	CtxTenantID = "tenant_id"
)

// currentUser reads the authenticated identity from the gin context. The JWT
// middleware guarantees both values are present on protected routes.
func currentUser(c *gin.Context) (userID, tenantID uint) {
	return c.GetUint(CtxUserID), c.GetUint(CtxTenantID)
}
