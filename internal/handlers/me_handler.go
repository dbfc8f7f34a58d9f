package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studio-navalha/agenda-api/internal/httperr"
	"github.com/studio-navalha/agenda-api/internal/httpresp"
	"github.com/studio-navalha/agenda-api/internal/models"
)

type MeHandler struct {
	DB *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{DB: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	var user models.User
	err := h.DB.WithContext(c.Request.Context()).
		First(&user, ctxUserID(c)).Error
	if err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado")
		return
	}

	httpresp.OK(c, user)
}
