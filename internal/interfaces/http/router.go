package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/myanimal/petcare-service/internal/application"
	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/myanimal/petcare-service/internal/infrastructure/config"
	"github.com/myanimal/petcare-service/internal/infrastructure/database"
	"github.com/myanimal/petcare-service/internal/infrastructure/jwt"
	"github.com/myanimal/petcare-service/internal/infrastructure/metrics"
	"github.com/myanimal/petcare-service/internal/infrastructure/password"
	"github.com/myanimal/petcare-service/internal/infrastructure/repository"
	"github.com/myanimal/petcare-service/internal/infrastructure/smsalert"
	"github.com/myanimal/petcare-service/internal/infrastructure/uploads"
	"github.com/myanimal/petcare-service/internal/interfaces/http/handlers"
	"github.com/myanimal/petcare-service/internal/interfaces/http/middleware/auth"
	"github.com/myanimal/petcare-service/internal/interfaces/http/middleware/ratelimit"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Router struct {
	router *chi.Mux
	db     *database.Postgres
	stop   func()
}

func NewRouter(
	db *database.Postgres,
	files *uploads.Manager,
	cfg *config.Config,
	logger *zap.Logger,
) *Router {
	sessions := jwt.New(cfg.SessionSecret, cfg.SessionTokenDuration)
	authMiddleware := auth.NewAuthMiddleware(sessions.Auth(), logger)
	hasher := password.NewHasher(0)
	gateway := smsalert.NewClient(cfg, logger)

	profileRepo := repository.NewProfileRepository(db, logger)
	userRepo := repository.NewUserRepository(db, logger)
	scheduleRepo := repository.NewScheduleRepository(db, logger)

	otpService := application.NewOTPService(profileRepo, gateway, sessions, logger)
	profileService := application.NewProfileService(profileRepo, hasher, logger)
	userService := application.NewUserService(userRepo, hasher, logger)
	scheduleService := application.NewScheduleService(scheduleRepo, logger)

	// Initialize handlers
	otpHandler := handlers.NewOTPHandler(otpService, logger)
	profileHandler := handlers.NewProfileHandler(profileService, files, logger)
	userHandler := handlers.NewUserHandler(userService, files, logger)
	nameHandler := handlers.NewNameHandler(repository.NewNameRepository(db, logger), logger)
	contactHandler := handlers.NewContactHandler(repository.NewContactRepository(db, logger), logger)
	doctorHandler := handlers.NewDoctorHandler(repository.NewDoctorRepository(db, logger), files, logger)
	groomerHandler := handlers.NewGroomerHandler(repository.NewGroomerRepository(db, logger), files, logger)
	screenHandler := handlers.NewScreenHandler(repository.NewScreenRepository(db, logger), files, logger)
	catalogHandler := handlers.NewCatalogHandler(
		repository.NewCategoryRepository(db, logger),
		repository.NewServiceRepository(db, logger),
		files, logger,
	)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService, logger)
	pricingHandler := handlers.NewPricingHandler(
		repository.NewPriceServiceRepository(db, logger),
		repository.NewSubServiceRepository(db, logger),
		files, logger,
	)

	// Create router with middleware
	router, stop := createRouter(cfg)

	// Health check endpoints
	router.Group(func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
		})

		r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
			if err := db.Ping(r.Context()); err != nil {
				logger.Error("Database health check failed", zap.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte("Database connection failed"))
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("Ready"))
		})

		r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("Alive"))
		})
	})

	router.Handle("/metrics", metrics.Handler())

	// Swagger UI configuration
	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
		httpSwagger.DeepLinking(true),
		httpSwagger.PersistAuthorization(true),
	))

	router.Get("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		http.ServeFile(w, r, "docs/swagger.json")
	})

	// Stored uploads
	router.Handle(files.URLPrefix()+"/*", files.Handler())

	// Phone verification and profiles
	router.Group(func(r chi.Router) {
		r.Post("/send-otp", otpHandler.SendOTP)
		r.Post("/verify-otp", otpHandler.VerifyOTP)
		r.Post("/resend-otp", otpHandler.ResendOTP)

		r.Put("/user-name/{id}", profileHandler.UpdateName)
		r.Get("/users", profileHandler.List)
		r.Get("/users/{id}", profileHandler.Get)
		r.Put("/users/{id}", profileHandler.Update)
	})

	router.Route("/api", func(r chi.Router) {
		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticator)
			r.Get("/me", profileHandler.Me)
		})

		r.Route("/user", func(r chi.Router) {
			r.Post("/", userHandler.Create)
			r.Get("/", userHandler.List)
			r.Get("/{id}", userHandler.Get)
			r.Put("/{id}", userHandler.Update)
			r.Delete("/{id}", userHandler.Delete)
		})

		r.Route("/full-name", func(r chi.Router) {
			r.Post("/", nameHandler.Create)
			r.Get("/", nameHandler.List)
			r.Get("/{id}", nameHandler.Get)
			r.Put("/{id}", nameHandler.Update)
			r.Delete("/{id}", nameHandler.Delete)
		})

		r.Route("/contactdetails", func(r chi.Router) {
			r.Post("/", contactHandler.Create)
			r.Get("/", contactHandler.List)
			r.Get("/{id}", contactHandler.Get)
			r.Put("/{id}", contactHandler.Update)
			r.Delete("/{id}", contactHandler.Delete)
		})

		r.Route("/doctors", func(r chi.Router) {
			r.Post("/", doctorHandler.Create)
			r.Get("/", doctorHandler.List)
			r.Get("/{id}", doctorHandler.Get)
			r.Put("/{id}", doctorHandler.Update)
			r.Delete("/{id}", doctorHandler.Delete)
		})

		r.Post("/groomer", groomerHandler.Create)
		r.Get("/groomers", groomerHandler.List)
		r.Get("/groomer/{id}", groomerHandler.Get)
		r.Put("/groomers/{id}", groomerHandler.Update)
		r.Delete("/groomers/{id}", groomerHandler.Delete)

		r.Route("/screens", func(r chi.Router) {
			r.Post("/", screenHandler.Create)
			r.Get("/", screenHandler.List)
			r.Get("/{id}", screenHandler.Get)
			r.Put("/{id}", screenHandler.Update)
			r.Delete("/{id}", screenHandler.Delete)
		})

		r.Post("/category", catalogHandler.CreateCategory)
		r.Get("/categories", catalogHandler.ListCategories)
		r.Put("/category/{id}", catalogHandler.UpdateCategory)
		r.Delete("/category/{id}", catalogHandler.DeleteCategory)
		r.Post("/category/{id}/service", catalogHandler.CreateService)
		r.Get("/category/{id}/services", catalogHandler.ListServices)
		r.Put("/service/{id}", catalogHandler.UpdateService)
		r.Delete("/service/{id}", catalogHandler.DeleteService)

		r.Post("/time-slot", scheduleHandler.AddTimeSlots)
		r.Get("/slots", scheduleHandler.AllSlots)
		r.Get("/slots/{date}", scheduleHandler.SlotsForDate)
		r.Post("/appointment", scheduleHandler.BookAppointment)
		r.Get("/appointments", scheduleHandler.ListAppointments)

		r.Route("/price-services", func(r chi.Router) {
			r.Post("/", pricingHandler.CreatePriceService)
			r.Get("/", pricingHandler.ListPriceServices)
			r.Get("/{id}", pricingHandler.GetPriceService)
			r.Put("/{id}", pricingHandler.UpdatePriceService)
			r.Delete("/{id}", pricingHandler.DeletePriceService)
			r.Get("/{id}/sub-services", pricingHandler.ListSubServicesByService)
		})

		r.Route("/sub-services", func(r chi.Router) {
			r.Post("/", pricingHandler.CreateSubService)
			r.Get("/", pricingHandler.ListSubServices)
			r.Put("/{id}", pricingHandler.UpdateSubService)
			r.Delete("/{id}", pricingHandler.DeleteSubService)
		})

		r.Get("/price-sub-services", pricingHandler.ListWithSubServices)
		r.Get("/price-sub-services/{id}", pricingHandler.GetWithSubServices)
	})

	return &Router{router: router, db: db, stop: stop}
}

func createRouter(cfg *config.Config) (*chi.Mux, func()) {
	router := chi.NewRouter()

	// Add middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	router.Use(middleware.RequestID)
	router.Use(requestContext)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(metrics.InstrumentHandler)
	limit, stop := ratelimit.Middleware(cfg.RateLimitRPS, cfg.RateLimitBurst, 3*time.Minute)
	router.Use(limit)

	return router, stop
}

// requestContext exposes chi's request id to the services through the domain context
func requestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.GetReqID(r.Context()); id != "" {
			r = r.WithContext(domain.WithRequestID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}

// Close stops the background work started by NewRouter
func (r *Router) Close() {
	r.stop()
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
