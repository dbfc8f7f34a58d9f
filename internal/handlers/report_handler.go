package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studio-navalha/agenda-api/internal/httperr"
	"github.com/studio-navalha/agenda-api/internal/httpresp"
	ucreport "github.com/studio-navalha/agenda-api/internal/usecase/report"
)

type ReportHandler struct {
	Occupancy *ucreport.Occupancy
}

func NewReportHandler(occupancy *ucreport.Occupancy) *ReportHandler {
	return &ReportHandler{Occupancy: occupancy}
}

// GetOccupancy returns the month's worked vs. available hours, per
// barber or shop-wide when barber_id is omitted.
func (h *ReportHandler) GetOccupancy(c *gin.Context) {
	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Ano ou mês inválido")
		return
	}

	in := ucreport.OccupancyInput{
		BarbershopID: ctxBarbershopID(c),
		Year:         year,
		Month:        time.Month(month),
	}

	if raw := c.Query("barber_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido")
			return
		}
		barberID := uint(id)
		in.BarberID = &barberID
	}

	report, err := h.Occupancy.Execute(c.Request.Context(), in)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, report)
}
