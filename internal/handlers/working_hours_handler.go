package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studio-navalha/agenda-api/internal/domain/schedule"
	"github.com/studio-navalha/agenda-api/internal/httperr"
	"github.com/studio-navalha/agenda-api/internal/httpresp"
	"github.com/studio-navalha/agenda-api/internal/models"
)

// ======================================================
// WORKING HOURS HANDLER (template semanal, loja e barbeiro)
// ======================================================

type WorkingHoursHandler struct {
	DB *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{DB: db}
}

type workingDayInput struct {
	Weekday    int    `json:"weekday"`
	IsOpen     bool   `json:"is_open"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
}

// ------------------------------------------------------
// SHOP TEMPLATE
// ------------------------------------------------------

func (h *WorkingHoursHandler) GetShop(c *gin.Context) {
	h.list(c, models.OwnerShop, ctxBarbershopID(c))
}

func (h *WorkingHoursHandler) UpdateShop(c *gin.Context) {
	h.replace(c, models.OwnerShop, ctxBarbershopID(c))
}

// ------------------------------------------------------
// BARBER TEMPLATE
// ------------------------------------------------------

func (h *WorkingHoursHandler) GetBarber(c *gin.Context) {
	barberID, ok := h.shopBarber(c)
	if !ok {
		return
	}
	h.list(c, models.OwnerBarber, barberID)
}

func (h *WorkingHoursHandler) UpdateBarber(c *gin.Context) {
	barberID, ok := h.shopBarber(c)
	if !ok {
		return
	}
	h.replace(c, models.OwnerBarber, barberID)
}

// shopBarber resolves the :id path param to a barber of the caller's
// shop, or writes the error response.
func (h *WorkingHoursHandler) shopBarber(c *gin.Context) (uint, bool) {
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

// ------------------------------------------------------
// SHARED
// ------------------------------------------------------

func (h *WorkingHoursHandler) list(c *gin.Context, ownerType string, ownerID uint) {
	var hours []models.WorkingHours
	err := h.DB.WithContext(c.Request.Context()).
		Where("owner_type = ? AND owner_id = ?", ownerType, ownerID).
		Order("weekday asc").
		Find(&hours).Error
	if err != nil {
		httperr.Internal(c, "list_error", "Erro ao listar horários")
		return
	}

	httpresp.List(c, hours)
}

// replace swaps the full weekly template in one transaction, the same
// way the schedule is edited in the UI: all seven days at once.
func (h *WorkingHoursHandler) replace(c *gin.Context, ownerType string, ownerID uint) {
	var in []workingDayInput
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Dados inválidos")
		return
	}

	seen := map[int]bool{}
	for _, day := range in {
		if day.Weekday < 0 || day.Weekday > 6 || seen[day.Weekday] {
			httperr.BadRequest(c, "invalid_weekday", "Dia da semana inválido ou repetido")
			return
		}
		seen[day.Weekday] = true

		if day.IsOpen {
			start := schedule.ParseTimeToMinutes(day.StartTime)
			end := schedule.ParseTimeToMinutes(day.EndTime)
			if day.StartTime == "" || day.EndTime == "" || start >= end {
				httperr.BadRequest(c, "invalid_window", "Janela de funcionamento inválida")
				return
			}
		}
	}

	err := h.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("owner_type = ? AND owner_id = ?", ownerType, ownerID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		for _, day := range in {
			row := models.WorkingHours{
				OwnerType:  ownerType,
				OwnerID:    ownerID,
				Weekday:    day.Weekday,
				IsOpen:     day.IsOpen,
				StartTime:  day.StartTime,
				EndTime:    day.EndTime,
				BreakStart: day.BreakStart,
				BreakEnd:   day.BreakEnd,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "update_error", "Erro ao salvar horários")
		return
	}

	h.list(c, ownerType, ownerID)
}
