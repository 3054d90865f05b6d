package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vendora/vendora-backend/internal/platform/ctxutil"
)

// vendorID reads the authenticated vendor set by the auth middleware.
// Routes calling this are always mounted behind RequireAuth, so a zero id
// never reaches a service in practice.
func vendorID(c *gin.Context) uuid.UUID {
	if rd := ctxutil.GetRequestData(c.Request.Context()); rd != nil {
		return rd.VendorID
	}
	return uuid.Nil
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	return id, err == nil
}

func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
