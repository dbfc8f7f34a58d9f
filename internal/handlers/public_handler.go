package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/studio-navalha/agenda-api/internal/domain/appointment"
	"github.com/studio-navalha/agenda-api/internal/httperr"
	"github.com/studio-navalha/agenda-api/internal/httpresp"
	"github.com/studio-navalha/agenda-api/internal/models"
	ucappointment "github.com/studio-navalha/agenda-api/internal/usecase/appointment"
)

// ======================================================
// PUBLIC HANDLER (página de agendamento, por slug)
// ======================================================

type PublicHandler struct {
	DB           *gorm.DB
	Availability *ucappointment.GetAvailability
	Create       *ucappointment.CreateAppointment
}

func NewPublicHandler(
	db *gorm.DB,
	availability *ucappointment.GetAvailability,
	create *ucappointment.CreateAppointment,
) *PublicHandler {
	return &PublicHandler{
		DB:           db,
		Availability: availability,
		Create:       create,
	}
}

// shopBySlug resolves the :slug path param or writes 404.
func (h *PublicHandler) shopBySlug(c *gin.Context) (*models.Barbershop, bool) {
	var shop models.Barbershop
	err := h.DB.WithContext(c.Request.Context()).
		Where("slug = ?", c.Param("slug")).
		First(&shop).Error
	if err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada")
		return nil, false
	}
	return &shop, true
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	var services []models.Service
	err := h.DB.WithContext(c.Request.Context()).
		Where("barbershop_id = ? AND active = ?", shop.ID, true).
		Order("name asc").
		Find(&services).Error
	if err != nil {
		httperr.Internal(c, "list_error", "Erro ao listar serviços")
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	var barbers []models.User
	err := h.DB.WithContext(c.Request.Context()).
		Select("id", "name").
		Where("barbershop_id = ?", shop.ID).
		Order("name asc").
		Find(&barbers).Error
	if err != nil {
		httperr.Internal(c, "list_error", "Erro ao listar barbeiros")
		return
	}

	type publicBarber struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	out := make([]publicBarber, 0, len(barbers))
	for _, b := range barbers {
		out = append(out, publicBarber{ID: b.ID, Name: b.Name})
	}

	httpresp.List(c, out)
}

// GetAvailability answers the booking page's core question: which
// slots can this barber still take on this date for this service.
func (h *PublicHandler) GetAvailability(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	barberID, errB := strconv.ParseUint(c.Query("barber_id"), 10, 64)
	serviceID, errS := strconv.ParseUint(c.Query("service_id"), 10, 64)
	date := c.Query("date")
	if errB != nil || errS != nil {
		httperr.BadRequest(c, "invalid_query", "Parâmetros inválidos")
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida")
		return
	}

	slots, err := h.Availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarbershopID: shop.ID,
		BarberID:     uint(barberID),
		ServiceID:    uint(serviceID),
		Date:         date,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"date":  date,
		"slots": slots,
	})
}

type publicBookingBody struct {
	BarberID    uint   `json:"barber_id" binding:"required"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	var in publicBookingBody
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Dados inválidos")
		return
	}

	ap, err := h.Create.Execute(c.Request.Context(), ucappointment.CreateAppointmentInput{
		BarbershopID: shop.ID,
		BarberID:     in.BarberID,
		ServiceID:    in.ServiceID,
		ClientName:   in.ClientName,
		ClientPhone:  in.ClientPhone,
		ClientEmail:  in.ClientEmail,
		Date:         in.Date,
		Time:         in.Time,
		Notes:        in.Notes,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	// the confirmation screen only needs the public reference
	c.JSON(http.StatusCreated, gin.H{
		"public_code": ap.PublicCode,
		"date":        in.Date,
		"start_time":  ap.StartTime,
		"end_time":    ap.EndTime,
	})
}
