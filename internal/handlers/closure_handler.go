package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studio-navalha/agenda-api/internal/domain/schedule"
	"github.com/studio-navalha/agenda-api/internal/httperr"
	"github.com/studio-navalha/agenda-api/internal/httpresp"
	"github.com/studio-navalha/agenda-api/internal/models"
)

// ======================================================
// CLOSURE HANDLER (fechamentos pontuais da loja)
// ======================================================

type ClosureHandler struct {
	DB *gorm.DB
}

func NewClosureHandler(db *gorm.DB) *ClosureHandler {
	return &ClosureHandler{DB: db}
}

type dayWindowInput struct {
	Date      string  `json:"date" binding:"required"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Reason    string  `json:"reason"`
}

// validateDayWindow checks the date and the optional partial window.
// Returning a half-set pair is rejected here so storage only ever
// holds none-or-both.
func validateDayWindow(in dayWindowInput) (string, bool) {
	if _, err := schedule.ParseDateUTC(in.Date); err != nil {
		return "invalid_date", false
	}

	if (in.StartTime == nil) != (in.EndTime == nil) {
		return "half_set_window", false
	}

	if in.StartTime != nil {
		start := schedule.ParseTimeToMinutes(*in.StartTime)
		end := schedule.ParseTimeToMinutes(*in.EndTime)
		if start >= end {
			return "invalid_window", false
		}
	}

	return "", true
}

func (h *ClosureHandler) List(c *gin.Context) {
	query := h.DB.WithContext(c.Request.Context()).
		Where("barbershop_id = ?", ctxBarbershopID(c))

	if from := c.Query("from"); from != "" {
		query = query.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("date <= ?", to)
	}

	var closures []models.Closure
	if err := query.Order("date asc").Find(&closures).Error; err != nil {
		httperr.Internal(c, "list_error", "Erro ao listar fechamentos")
		return
	}

	httpresp.List(c, closures)
}

func (h *ClosureHandler) Create(c *gin.Context) {
	var in dayWindowInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Dados inválidos")
		return
	}

	if code, ok := validateDayWindow(in); !ok {
		httperr.BadRequest(c, code, "Fechamento inválido")
		return
	}

	date, _ := schedule.ParseDateUTC(in.Date)
	closure := models.Closure{
		BarbershopID: ctxBarbershopID(c),
		Date:         date,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		Reason:       in.Reason,
	}

	if err := h.DB.WithContext(c.Request.Context()).Create(&closure).Error; err != nil {
		httperr.Internal(c, "create_error", "Erro ao criar fechamento")
		return
	}

	c.JSON(http.StatusCreated, closure)
}

func (h *ClosureHandler) Delete(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido")
		return
	}

	res := h.DB.WithContext(c.Request.Context()).
		Where("id = ? AND barbershop_id = ?", id, ctxBarbershopID(c)).
		Delete(&models.Closure{})
	if res.Error != nil {
		httperr.Internal(c, "delete_error", "Erro ao remover fechamento")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "closure_not_found", "Fechamento não encontrado")
		return
	}

	c.Status(http.StatusNoContent)
}
