package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studio-navalha/agenda-api/internal/httperr"
	"github.com/studio-navalha/agenda-api/internal/httpresp"
	"github.com/studio-navalha/agenda-api/internal/models"
)

// ======================================================
// SERVICE HANDLER (catálogo de serviços da barbearia)
// ======================================================

type ServiceHandler struct {
	DB *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{DB: db}
}

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	err := h.DB.WithContext(c.Request.Context()).
		Where("barbershop_id = ?", ctxBarbershopID(c)).
		Order("name asc").
		Find(&services).Error
	if err != nil {
		httperr.Internal(c, "list_error", "Erro ao listar serviços")
		return
	}

	httpresp.List(c, services)
}

type serviceInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min" binding:"required,gt=0"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Active      *bool   `json:"active"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var in serviceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Dados inválidos")
		return
	}

	service := models.Service{
		BarbershopID: ctxBarbershopID(c),
		Name:         in.Name,
		Description:  in.Description,
		DurationMin:  in.DurationMin,
		Price:        in.Price,
		Category:     in.Category,
		Active:       true,
	}
	if in.Active != nil {
		service.Active = *in.Active
	}

	if err := h.DB.WithContext(c.Request.Context()).Create(&service).Error; err != nil {
		httperr.Internal(c, "create_error", "Erro ao criar serviço")
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido")
		return
	}

	var in serviceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Dados inválidos")
		return
	}

	db := h.DB.WithContext(c.Request.Context())

	var service models.Service
	err := db.Where("id = ? AND barbershop_id = ?", id, ctxBarbershopID(c)).
		First(&service).Error
	if err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado")
		return
	}

	service.Name = in.Name
	service.Description = in.Description
	service.DurationMin = in.DurationMin
	service.Price = in.Price
	service.Category = in.Category
	if in.Active != nil {
		service.Active = *in.Active
	}

	if err := db.Save(&service).Error; err != nil {
		httperr.Internal(c, "update_error", "Erro ao atualizar serviço")
		return
	}

	httpresp.OK(c, service)
}

// Delete deactivates instead of removing: past appointments keep
// their service reference.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido")
		return
	}

	res := h.DB.WithContext(c.Request.Context()).
		Model(&models.Service{}).
		Where("id = ? AND barbershop_id = ?", id, ctxBarbershopID(c)).
		Update("active", false)
	if res.Error != nil {
		httperr.Internal(c, "delete_error", "Erro ao remover serviço")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado")
		return
	}

	c.Status(http.StatusNoContent)
}
