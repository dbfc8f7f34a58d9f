package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studio-navalha/agenda-api/internal/middleware"
)

func ctxUserID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}

func ctxBarbershopID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextBarbershopID).(uint)
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}
