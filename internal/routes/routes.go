package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/studio-navalha/agenda-api/internal/audit"
	"github.com/studio-navalha/agenda-api/internal/cache"
	"github.com/studio-navalha/agenda-api/internal/config"
	"github.com/studio-navalha/agenda-api/internal/handlers"
	"github.com/studio-navalha/agenda-api/internal/infra/repository"
	"github.com/studio-navalha/agenda-api/internal/middleware"
	ucappointment "github.com/studio-navalha/agenda-api/internal/usecase/appointment"
	ucreport "github.com/studio-navalha/agenda-api/internal/usecase/report"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ------------------------------------------------------
	// INFRA
	// ------------------------------------------------------
	repo := repository.NewAppointmentGormRepository(db)
	availabilityCache := cache.NewAvailabilityCache(rdb)
	auditDispatcher := audit.NewDispatcher(audit.New(db))

	// ------------------------------------------------------
	// USE CASES
	// ------------------------------------------------------
	getAvailability := ucappointment.NewGetAvailability(repo, availabilityCache)
	createAppointment := ucappointment.NewCreateAppointment(repo, auditDispatcher, availabilityCache)
	cancelAppointment := ucappointment.NewCancelAppointment(repo, auditDispatcher, availabilityCache)
	completeAppointment := ucappointment.NewCompleteAppointment(repo, auditDispatcher)
	markNoShow := ucappointment.NewMarkNoShow(repo, auditDispatcher)
	listByDate := ucappointment.NewListAppointmentsByDate(repo)
	listByMonth := ucappointment.NewListAppointmentsByMonth(repo)
	occupancy := ucreport.NewOccupancy(repo)

	// ------------------------------------------------------
	// HANDLERS
	// ------------------------------------------------------
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	barbershopHandler := handlers.NewBarbershopHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	closureHandler := handlers.NewClosureHandler(db)
	absenceHandler := handlers.NewAbsenceHandler(db, availabilityCache)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	reportHandler := handlers.NewReportHandler(occupancy)
	publicHandler := handlers.NewPublicHandler(db, getAvailability, createAppointment)

	appointmentHandler := &handlers.AppointmentHandler{
		Create:      createAppointment,
		ListByDate:  listByDate,
		ListByMonth: listByMonth,
		Cancel:      cancelAppointment,
		Complete:    completeAppointment,
		NoShow:      markNoShow,
	}

	// ------------------------------------------------------
	// PUBLIC (página de agendamento)
	// ------------------------------------------------------
	api := r.Group("/api/v1")

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	public := api.Group("/public/:slug")
	{
		public.GET("/services", publicHandler.ListServices)
		public.GET("/barbers", publicHandler.ListBarbers)
		public.GET("/availability", publicHandler.GetAvailability)
		public.POST("/appointments", publicHandler.CreateBooking)
	}

	// ------------------------------------------------------
	// SECURED (painel da barbearia)
	// ------------------------------------------------------
	secured := api.Group("")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/me", meHandler.GetMe)

		secured.GET("/barbershop", barbershopHandler.GetMeBarbershop)
		secured.PATCH("/barbershop", barbershopHandler.UpdateMeBarbershop)

		secured.GET("/services", serviceHandler.List)
		secured.POST("/services", serviceHandler.Create)
		secured.PUT("/services/:id", serviceHandler.Update)
		secured.DELETE("/services/:id", serviceHandler.Delete)

		secured.GET("/clients", clientHandler.List)

		secured.GET("/working-hours", workingHoursHandler.GetShop)
		secured.PUT("/working-hours", workingHoursHandler.UpdateShop)
		secured.GET("/barbers/:id/working-hours", workingHoursHandler.GetBarber)
		secured.PUT("/barbers/:id/working-hours", workingHoursHandler.UpdateBarber)

		secured.GET("/closures", closureHandler.List)
		secured.POST("/closures", closureHandler.Create)
		secured.DELETE("/closures/:id", closureHandler.Delete)

		secured.GET("/barbers/:id/absences", absenceHandler.List)
		secured.POST("/barbers/:id/absences", absenceHandler.Create)
		secured.DELETE("/barbers/:id/absences/:absenceId", absenceHandler.Delete)

		secured.POST("/appointments", appointmentHandler.CreateAppointment)
		secured.GET("/appointments", appointmentHandler.ListForDate)
		secured.GET("/appointments/month", appointmentHandler.ListForMonth)
		secured.POST("/appointments/:id/cancel", appointmentHandler.CancelAppointment)
		secured.POST("/appointments/:id/complete", appointmentHandler.CompleteAppointment)
		secured.POST("/appointments/:id/no-show", appointmentHandler.MarkNoShow)

		secured.GET("/reports/occupancy", reportHandler.GetOccupancy)

		secured.GET("/audit-logs", auditLogsHandler.List)
	}
}
