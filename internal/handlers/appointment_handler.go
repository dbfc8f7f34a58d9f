package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studio-navalha/agenda-api/internal/httperr"
	"github.com/studio-navalha/agenda-api/internal/httpresp"
	ucappointment "github.com/studio-navalha/agenda-api/internal/usecase/appointment"
)

// ======================================================
// APPOINTMENT HANDLER (agenda do barbeiro autenticado)
// ======================================================

type AppointmentHandler struct {
	Create      *ucappointment.CreateAppointment
	ListByDate  *ucappointment.ListAppointmentsByDate
	ListByMonth *ucappointment.ListAppointmentsByMonth
	Cancel      *ucappointment.CancelAppointment
	Complete    *ucappointment.CompleteAppointment
	NoShow      *ucappointment.MarkNoShow
}

// mapBookingError translates business codes into HTTP responses. The
// policy block reasons come back verbatim so clients can tell WHY a
// slot was refused.
func mapBookingError(c *gin.Context, err error) {
	switch code := httperr.BusinessCode(err); code {
	case "invalid_date", "invalid_date_or_time":
		httperr.BadRequest(c, code, "Data ou horário inválido")
	case "too_soon":
		httperr.BadRequest(c, code, "Horário abaixo da antecedência mínima")
	case "SHOP_CLOSED":
		httperr.BadRequest(c, code, "A barbearia está fechada neste horário")
	case "BARBER_UNAVAILABLE":
		httperr.BadRequest(c, code, "O barbeiro não atende neste horário")
	case "SLOT_UNAVAILABLE":
		httperr.BadRequest(c, code, "Horário fora da grade de atendimento")
	case "slot_taken":
		httperr.Conflict(c, code, "Horário já reservado")
	case "invalid_state":
		httperr.Conflict(c, code, "Agendamento não permite esta operação")
	case "service_not_found":
		httperr.NotFound(c, code, "Serviço não encontrado")
	case "barber_not_found":
		httperr.NotFound(c, code, "Barbeiro não encontrado")
	case "appointment_not_found":
		httperr.NotFound(c, code, "Agendamento não encontrado")
	default:
		httperr.Internal(c, "internal_error", "Erro interno")
	}
}

// ------------------------------------------------------
// CREATE (barbeiro agenda um cliente de balcão)
// ------------------------------------------------------

type createAppointmentBody struct {
	BarberID    uint   `json:"barber_id" binding:"required"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone"`
	ClientEmail string `json:"client_email"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var in createAppointmentBody
	if err := c.ShouldBindJSON(&in); err != nil {
		httperr.BadRequest(c, "invalid_payload", "Dados inválidos")
		return
	}

	ap, err := h.Create.Execute(c.Request.Context(), ucappointment.CreateAppointmentInput{
		BarbershopID: ctxBarbershopID(c),
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

	c.JSON(http.StatusCreated, ap)
}

// ------------------------------------------------------
// LISTS
// ------------------------------------------------------

func (h *AppointmentHandler) ListForDate(c *gin.Context) {
	date := c.Query("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida")
		return
	}

	items, err := h.ListByDate.Execute(c.Request.Context(), ctxUserID(c), date)
	if err != nil {
		httperr.Internal(c, "list_error", "Erro ao listar agendamentos")
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) ListForMonth(c *gin.Context) {
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Ano ou mês inválido")
		return
	}

	items, err := h.ListByMonth.Execute(c.Request.Context(), ctxUserID(c), year, time.Month(month))
	if err != nil {
		httperr.Internal(c, "list_error", "Erro ao listar agendamentos")
		return
	}

	httpresp.List(c, items)
}

// ------------------------------------------------------
// STATE TRANSITIONS
// ------------------------------------------------------

func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido")
		return
	}

	ap, err := h.Cancel.Execute(c.Request.Context(), ctxBarbershopID(c), ctxUserID(c), id)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) CompleteAppointment(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido")
		return
	}

	ap, err := h.Complete.Execute(c.Request.Context(), ctxBarbershopID(c), ctxUserID(c), id)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) MarkNoShow(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido")
		return
	}

	ap, err := h.NoShow.Execute(c.Request.Context(), ctxBarbershopID(c), ctxUserID(c), id)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, ap)
}
