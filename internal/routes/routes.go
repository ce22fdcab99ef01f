package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fadebook/barber-booking/internal/audit"
	"github.com/fadebook/barber-booking/internal/cache"
	"github.com/fadebook/barber-booking/internal/config"
	"github.com/fadebook/barber-booking/internal/handlers"
	infraRepo "github.com/fadebook/barber-booking/internal/infra/repository"
	"github.com/fadebook/barber-booking/internal/middleware"
	"github.com/fadebook/barber-booking/internal/models"
	ucBooking "github.com/fadebook/barber-booking/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	redisClient *redis.Client,
	log *zap.Logger,
) {

	// ------------------------------
	// Infra (singletons)
	// ------------------------------
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	availabilityCache := cache.NewAvailability(redisClient)

	// ------------------------------
	// Use cases
	// ------------------------------
	bookUC := ucBooking.NewBookAppointment(bookingRepo, auditDispatcher, availabilityCache)
	cancelUC := ucBooking.NewCancelAppointment(bookingRepo, auditDispatcher, availabilityCache)
	confirmUC := ucBooking.NewConfirmAppointment(bookingRepo, auditDispatcher)
	completeUC := ucBooking.NewCompleteAppointment(bookingRepo, auditDispatcher)
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo, availabilityCache)
	getAppointmentUC := ucBooking.NewGetAppointment(bookingRepo)
	listMineUC := ucBooking.NewListMyAppointments(bookingRepo)
	listDayUC := ucBooking.NewListDayAppointments(bookingRepo)

	// ------------------------------
	// Handlers
	// ------------------------------
	authHandler := handlers.NewAuthHandler(db, cfg, auditDispatcher)
	catalogHandler := handlers.NewCatalogHandler(db)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUC)
	bookingHandler := handlers.NewBookingHandler(bookUC, cancelUC, getAppointmentUC, listMineUC)
	staffHandler := handlers.NewStaffHandler(confirmUC, completeUC, listDayUC)

	// ------------------------------
	// Routes
	// ------------------------------
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// Public
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/barbershops", catalogHandler.ListBarbershops)
		api.GET("/barbershops/:id", catalogHandler.GetBarbershop)
		api.GET("/barbers/:id/available-times", availabilityHandler.AvailableTimes)

		// Customer
		me := api.Group("/me")
		me.Use(middleware.AuthMiddleware(cfg))
		{
			me.POST("/appointments", bookingHandler.Create)
			me.GET("/appointments", bookingHandler.ListMine)
			me.GET("/appointments/:reference", bookingHandler.GetByReference)
			me.PATCH("/appointments/:reference/cancel", bookingHandler.Cancel)
		}

		// Staff
		staff := api.Group("/staff")
		staff.Use(middleware.AuthMiddleware(cfg))
		staff.Use(middleware.RequireRole(models.RoleStaff))
		{
			staff.GET("/appointments", staffHandler.ListDay)
			staff.PATCH("/appointments/:id/confirm", staffHandler.Confirm)
			staff.PATCH("/appointments/:id/complete", staffHandler.Complete)
		}
	}
}
