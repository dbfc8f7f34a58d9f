package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studio-navalha/agenda-api/internal/httperr"
	"github.com/studio-navalha/agenda-api/internal/httpresp"
	"github.com/studio-navalha/agenda-api/internal/models"
)

type ClientHandler struct {
	DB *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{DB: db}
}

func (h *ClientHandler) List(c *gin.Context) {
	query := h.DB.WithContext(c.Request.Context()).
		Where("barbershop_id = ?", ctxBarbershopID(c))

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR phone LIKE ?", like, like)
	}

	var clients []models.Client
	if err := query.Order("name asc").Find(&clients).Error; err != nil {
		httperr.Internal(c, "list_error", "Erro ao listar clientes")
		return
	}

	httpresp.List(c, clients)
}
