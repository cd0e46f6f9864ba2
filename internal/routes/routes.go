package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-booking/internal/audit"
	"github.com/BruksfildServices01/appointment-booking/internal/config"
	domain "github.com/BruksfildServices01/appointment-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-booking/internal/domain/user"
	"github.com/BruksfildServices01/appointment-booking/internal/handlers"
	"github.com/BruksfildServices01/appointment-booking/internal/infra/lock"
	infraRepo "github.com/BruksfildServices01/appointment-booking/internal/infra/repository"
	"github.com/BruksfildServices01/appointment-booking/internal/metrics"
	"github.com/BruksfildServices01/appointment-booking/internal/middleware"
	"github.com/BruksfildServices01/appointment-booking/internal/security"
	ucAppointment "github.com/BruksfildServices01/appointment-booking/internal/usecase/appointment"
	ucAuth "github.com/BruksfildServices01/appointment-booking/internal/usecase/auth"
	"github.com/BruksfildServices01/appointment-booking/internal/usecase/catalog"
	"github.com/BruksfildServices01/appointment-booking/internal/validators"
)

type Deps struct {
	DB     *gorm.DB
	Config *config.Config

	// Optional. Without it bookings are not serialized and nothing is rate limited.
	Redis *redis.Client

	// Optional. A fresh registry is used when nil.
	Registry *prometheus.Registry
}

// RegisterRoutes wires every dependency explicitly and returns the audit
// dispatcher so the caller can drain it on shutdown.
func RegisterRoutes(r *gin.Engine, d Deps) (*audit.Dispatcher, error) {
	if err := validators.Register(); err != nil {
		return nil, err
	}

	cfg := d.Config
	reg := d.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	availabilityRepo := infraRepo.NewAvailabilityGormRepository(d.DB)
	serviceRepo := infraRepo.NewServiceGormRepository(d.DB)
	userRepo := infraRepo.NewUserGormRepository(d.DB)

	auditDispatcher := audit.NewDispatcher(audit.New(d.DB))
	m := metrics.New(reg, "booking")

	var locker domain.Locker = lock.Noop{}
	if d.Redis != nil {
		locker = lock.NewRedisLocker(d.Redis, cfg.BookingLockTTL)
	}

	tokens := security.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	hasher := security.NewBcryptHasher(0)

	// ======================================================
	// USE CASES
	// ======================================================
	viewSlotsUC := ucAppointment.NewViewAvailableSlots(availabilityRepo, appointmentRepo, m)

	bookUC := ucAppointment.NewBookAppointment(
		appointmentRepo,
		availabilityRepo,
		serviceRepo,
		auditDispatcher,
		m,
		ucAppointment.WithLocker(locker),
	)

	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher, m)
	createAvailabilityUC := ucAppointment.NewCreateAvailability(availabilityRepo, userRepo, auditDispatcher)
	listClientUC := ucAppointment.NewListClientAppointments(appointmentRepo, userRepo)
	listByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo)
	listByMonthUC := ucAppointment.NewListAppointmentsByMonth(appointmentRepo)

	var registerOpts []ucAuth.RegisterOption
	if cfg.CheckEmailDomain {
		registerOpts = append(registerOpts, ucAuth.WithDomainCheck(validators.IsEmailDomainValid))
	}
	registerUC := ucAuth.NewRegisterClient(userRepo, hasher, auditDispatcher, registerOpts...)
	loginUC := ucAuth.NewLoginUser(userRepo, hasher)

	listServicesUC := catalog.NewListServices(serviceRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, tokens)
	meHandler := handlers.NewMeHandler(userRepo)
	serviceHandler := handlers.NewServiceHandler(listServicesUC)
	availabilityHandler := handlers.NewAvailabilityHandler(viewSlotsUC, createAvailabilityUC)
	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		cancelUC,
		listClientUC,
		listByDateUC,
		listByMonthUC,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	professional := middleware.RequireRole(string(user.RoleProfessional))
	client := middleware.RequireRole(string(user.RoleClient))

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		limited := middleware.RateLimit(d.Redis, cfg.RateLimitPerMinute)
		api.POST("/auth/register", limited, authHandler.Register)
		api.POST("/auth/login", limited, authHandler.Login)

		api.GET("/services", serviceHandler.List)
		api.GET("/availability/slots", availabilityHandler.Slots)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/availability", professional, availabilityHandler.Create)

			secured.POST("/appointments", client, appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/agenda", professional, appointmentHandler.ListByDate)
			secured.GET("/appointments/month", professional, appointmentHandler.ListByMonth)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			secured.GET("/audit-logs", professional, auditLogsHandler.List)
		}
	}

	return auditDispatcher, nil
}
