package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studio-navalha/agenda-api/internal/httperr"
	"github.com/studio-navalha/agenda-api/internal/httpresp"
	"github.com/studio-navalha/agenda-api/internal/models"
)

type BarbershopHandler struct {
	DB *gorm.DB
}

func NewBarbershopHandler(db *gorm.DB) *BarbershopHandler {
	return &BarbershopHandler{DB: db}
}

func (h *BarbershopHandler) GetMeBarbershop(c *gin.Context) {
	var shop models.Barbershop
	err := h.DB.WithContext(c.Request.Context()).
		First(&shop, ctxBarbershopID(c)).Error
	if err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada")
		return
	}

	httpresp.OK(c, shop)
}

type updateBarbershopInput struct {
	Name              *string `json:"name"`
	Phone             *string `json:"phone"`
	Address           *string `json:"address"`
	MinAdvanceMinutes *int    `json:"min_advance_minutes"`
}

func (h *BarbershopHandler) UpdateMeBarbershop(c *gin.Context) {
	var in updateBarbershopInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Dados inválidos")
		return
	}

	var shop models.Barbershop
	db := h.DB.WithContext(c.Request.Context())
	if err := db.First(&shop, ctxBarbershopID(c)).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada")
		return
	}

	if in.Name != nil {
		shop.Name = *in.Name
	}
	if in.Phone != nil {
		shop.Phone = *in.Phone
	}
	if in.Address != nil {
		shop.Address = *in.Address
	}
	if in.MinAdvanceMinutes != nil {
		if *in.MinAdvanceMinutes < 0 {
			httperr.BadRequest(c, "invalid_min_advance", "Antecedência mínima inválida")
			return
		}
		shop.MinAdvanceMinutes = *in.MinAdvanceMinutes
	}

	if err := db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "update_error", "Erro ao atualizar barbearia")
		return
	}

	httpresp.OK(c, shop)
}
