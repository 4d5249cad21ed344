package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clinicdesk/agenda-api/internal/audit"
	"github.com/clinicdesk/agenda-api/internal/config"
	"github.com/clinicdesk/agenda-api/internal/handlers"
	infraRepo "github.com/clinicdesk/agenda-api/internal/infra/repository"
	"github.com/clinicdesk/agenda-api/internal/middleware"
	"github.com/clinicdesk/agenda-api/internal/tokens"
	ucSchedule "github.com/clinicdesk/agenda-api/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, denylist *tokens.Denylist, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES (SCHEDULE)
	// ======================================================
	linkControlUC := ucSchedule.NewLinkControl(scheduleRepo)

	addAppointmentUC := ucSchedule.NewAddAppointment(
		scheduleRepo,
		linkControlUC,
		auditDispatcher,
	)

	registerClientUC := ucSchedule.NewRegisterClient(
		scheduleRepo,
		addAppointmentUC,
		auditDispatcher,
	)

	modifyAppointmentUC := ucSchedule.NewModifyAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	modifyControlUC := ucSchedule.NewModifyControl(
		scheduleRepo,
		auditDispatcher,
	)

	cascadeUC := ucSchedule.NewCascade(
		scheduleRepo,
		auditDispatcher,
	)

	timelineUC := ucSchedule.NewGlobalTimeline(scheduleRepo)

	overviewsUC := ucSchedule.NewListClientOverviews(scheduleRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, denylist)

	clientHandler := handlers.NewClientHandler(
		registerClientUC,
		cascadeUC,
		overviewsUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		addAppointmentUC,
		modifyAppointmentUC,
		cascadeUC,
		timelineUC,
	)

	controlHandler := handlers.NewControlHandler(
		modifyControlUC,
		cascadeUC,
		timelineUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, denylist))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/clients/:clientId/appointments", appointmentHandler.Create)
			secured.PATCH("/appointments/:id", appointmentHandler.Modify)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// CONTROLS
			// ------------------------------
			secured.PATCH("/controls/:id", controlHandler.Modify)
			secured.DELETE("/controls/:id", controlHandler.Delete)

			// ------------------------------
			// AGENDA
			// ------------------------------
			secured.GET("/agenda", appointmentHandler.Agenda)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
