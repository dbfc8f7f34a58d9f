package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studio-navalha/agenda-api/internal/cache"
	"github.com/studio-navalha/agenda-api/internal/domain/schedule"
	"github.com/studio-navalha/agenda-api/internal/httperr"
	"github.com/studio-navalha/agenda-api/internal/httpresp"
	"github.com/studio-navalha/agenda-api/internal/models"
)

// ======================================================
// ABSENCE HANDLER (ausências pontuais de um barbeiro)
// ======================================================

type AbsenceHandler struct {
	DB    *gorm.DB
	Cache *cache.AvailabilityCache
}

func NewAbsenceHandler(db *gorm.DB, availabilityCache *cache.AvailabilityCache) *AbsenceHandler {
	return &AbsenceHandler{DB: db, Cache: availabilityCache}
}

// barber resolves :id to a barber of the caller's shop.
func (h *AbsenceHandler) barber(c *gin.Context) (uint, bool) {
	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido")
		return 0, false
	}

	var barber models.User
	err := h.DB.WithContext(c.Request.Context()).
		Where("id = ? AND barbershop_id = ?", id, ctxBarbershopID(c)).
		First(&barber).Error
	if err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado")
		return 0, false
	}

	return barber.ID, true
}

func (h *AbsenceHandler) List(c *gin.Context) {
	barberID, ok := h.barber(c)
	if !ok {
		return
	}

	query := h.DB.WithContext(c.Request.Context()).
		Where("barber_id = ?", barberID)

	if from := c.Query("from"); from != "" {
		query = query.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("date <= ?", to)
	}

	var absences []models.Absence
	if err := query.Order("date asc").Find(&absences).Error; err != nil {
		httperr.Internal(c, "list_error", "Erro ao listar ausências")
		return
	}

	httpresp.List(c, absences)
}

func (h *AbsenceHandler) Create(c *gin.Context) {
	barberID, ok := h.barber(c)
	if !ok {
		return
	}

	var in dayWindowInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Dados inválidos")
		return
	}

	if code, ok := validateDayWindow(in); !ok {
		httperr.BadRequest(c, code, "Ausência inválida")
		return
	}

	date, _ := schedule.ParseDateUTC(in.Date)
	absence := models.Absence{
		BarberID:  barberID,
		Date:      date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Reason:    in.Reason,
	}

	if err := h.DB.WithContext(c.Request.Context()).Create(&absence).Error; err != nil {
		httperr.Internal(c, "create_error", "Erro ao criar ausência")
		return
	}

	h.Cache.Invalidate(c.Request.Context(), barberID, in.Date)

	c.JSON(http.StatusCreated, absence)
}

func (h *AbsenceHandler) Delete(c *gin.Context) {
	barberID, ok := h.barber(c)
	if !ok {
		return
	}

	absenceID, ok := paramUint(c, "absenceId")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido")
		return
	}

	db := h.DB.WithContext(c.Request.Context())

	var absence models.Absence
	err := db.Where("id = ? AND barber_id = ?", absenceID, barberID).
		First(&absence).Error
	if err != nil {
		httperr.NotFound(c, "absence_not_found", "Ausência não encontrada")
		return
	}

	if err := db.Delete(&absence).Error; err != nil {
		httperr.Internal(c, "delete_error", "Erro ao remover ausência")
		return
	}

	h.Cache.Invalidate(c.Request.Context(), barberID, schedule.FormatCivilDate(absence.Date))

	c.Status(http.StatusNoContent)
}
