package main

//go:generate swag init -g cmd/server/main.go -d ../../ -o ../../docs --v3.1

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appatt "github.com/asnhr/hrms/internal/application/attendance"
	appauth "github.com/asnhr/hrms/internal/application/auth"
	"github.com/asnhr/hrms/internal/application/compliance"
	appdash "github.com/asnhr/hrms/internal/application/dashboard"
	appemp "github.com/asnhr/hrms/internal/application/employee"
	appholiday "github.com/asnhr/hrms/internal/application/holiday"
	appleave "github.com/asnhr/hrms/internal/application/leave"
	apporg "github.com/asnhr/hrms/internal/application/organization"
	apppayroll "github.com/asnhr/hrms/internal/application/payroll"
	"github.com/asnhr/hrms/internal/application/report"
	"github.com/asnhr/hrms/internal/domain/payroll"
	"github.com/asnhr/hrms/internal/infrastructure/auth"
	"github.com/asnhr/hrms/internal/infrastructure/authz"
	"github.com/asnhr/hrms/internal/infrastructure/cache"
	"github.com/asnhr/hrms/internal/infrastructure/config"
	"github.com/asnhr/hrms/internal/infrastructure/logger"
	"github.com/asnhr/hrms/internal/infrastructure/migration"
	"github.com/asnhr/hrms/internal/infrastructure/persistence"
	"github.com/asnhr/hrms/internal/infrastructure/printing"
	"github.com/asnhr/hrms/internal/infrastructure/storage"
	"github.com/asnhr/hrms/internal/infrastructure/telemetry"
	"github.com/asnhr/hrms/internal/interfaces/http/handler"
	"github.com/asnhr/hrms/internal/interfaces/http/middleware"
	"github.com/asnhr/hrms/internal/interfaces/http/router"
	"github.com/asnhr/hrms/migrations"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/asnhr/hrms/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			HRMS API
//	@version		1.0
//	@description	HR and payroll backend: employees, leave, attendance, holidays and Indian statutory payroll.

//	@contact.name	ASN HR Consultancy
//	@contact.email	hr@asnhr.example.com

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A bootstrap logger reports telemetry setup; the final logger tees into OTLP logs.
	bootLog, err := logger.New(logger.ConfigForEnvironment(cfg.App.Env, cfg.Log.Level))
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	providers, err := telemetry.Setup(ctx, cfg.Telemetry, bootLog)
	if err != nil {
		bootLog.Fatal("Failed to initialize telemetry", zap.Error(err))
	}

	logCfg := &logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cfg.Log.Output}
	var extraCores []zapcore.Core
	if providers.Logs.IsEnabled() {
		extraCores = append(extraCores, providers.Logs.ZapCore(zapcore.InfoLevel))
	}
	log, err := logger.New(logCfg, extraCores...)
	if err != nil {
		bootLog.Fatal("Failed to initialize logger", zap.Error(err))
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	log.Info("Starting HRMS server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("timezone", cfg.App.Timezone),
	)

	gormLogger := logger.NewGormLogger(log, logger.GormLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh))
	db, err := persistence.NewDatabase(&cfg.Database, gormLogger)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()
	log.Info("Database connected",
		zap.String("host", cfg.Database.Host),
		zap.Int("port", cfg.Database.Port),
		zap.String("database", cfg.Database.DBName),
	)

	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatal("Failed to get sql.DB", zap.Error(err))
	}
	migrator, err := migration.New(sqlDB, migrations.FS, log)
	if err != nil {
		log.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Up(); err != nil {
		log.Fatal("Failed to apply migrations", zap.Error(err))
	}

	meter := providers.Meter.Meter("hrms")
	if cfg.Telemetry.Enabled {
		if _, err := telemetry.InstrumentDB(db.DB, sqlDB, meter, telemetry.DBConfig{
			TraceEnabled:    cfg.Telemetry.DBTraceEnabled,
			LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
			SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
			DBName:          cfg.Database.DBName,
		}, log); err != nil {
			log.Warn("Database instrumentation disabled", zap.Error(err))
		}
	}

	stores, err := cache.NewFactory(cfg.Redis, cache.WithLogger(log)).CreateStores(ctx)
	if err != nil {
		log.Fatal("Failed to initialize cache", zap.Error(err))
	}
	defer func() { _ = stores.Close() }()

	var blacklist auth.TokenBlacklist
	if stores.Blacklist == cache.BlacklistRedis {
		blacklist = auth.NewRedisTokenBlacklist(stores.Client)
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
	}

	objects := newObjectStorage(ctx, cfg, log)

	var printer *printing.ReportPrinter
	renderer, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{
		DefaultTimeout: cfg.Printing.Timeout,
		ExecPath:       cfg.Printing.ChromePath,
		NoSandbox:      true,
		MaxConcurrency: cfg.Printing.MaxConcurrency,
		Logger:         log,
	})
	if err != nil {
		log.Warn("PDF rendering disabled", zap.Error(err))
	} else {
		defer func() { _ = renderer.Close() }()
		printer = printing.NewReportPrinter(renderer)
	}

	authzMode, err := authz.ParseMode(cfg.Authz.Mode)
	if err != nil {
		log.Fatal("Invalid authorization mode", zap.Error(err))
	}
	authorizer, err := authz.NewAuthorizer(cfg.Authz.ModelPath, cfg.Authz.PolicyPath, authzMode, log)
	if err != nil {
		log.Fatal("Failed to load access policy", zap.Error(err))
	}

	lateAfter, err := cfg.Attendance.LateThreshold()
	if err != nil {
		log.Fatal("Invalid attendance configuration", zap.Error(err))
	}
	location := cfg.App.Location()

	// Repositories
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	unitRepo := persistence.NewGormUnitRepository(db.DB)
	departmentRepo := persistence.NewGormDepartmentRepository(db.DB)
	leaveRepo := persistence.NewGormLeaveRepository(db.DB)
	attendanceRepo := persistence.NewGormAttendanceRepository(db.DB)
	holidayRepo := persistence.NewGormHolidayRepository(db.DB)
	settingsRepo := persistence.NewGormSettingsRepository(db.DB)
	challanRepo := persistence.NewGormChallanRepository(db.DB)

	// Services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := appauth.NewAuthService(employeeRepo, jwtService, blacklist, log)
	employeeService := appemp.NewEmployeeService(employeeRepo, unitRepo, departmentRepo, log)
	unitService := apporg.NewUnitService(unitRepo, departmentRepo, log)
	departmentService := apporg.NewDepartmentService(departmentRepo, unitRepo, log)
	leaveService := appleave.NewLeaveService(leaveRepo, employeeRepo, log)
	attendanceService := appatt.NewAttendanceService(attendanceRepo, employeeRepo, leaveRepo, unitRepo, departmentRepo,
		appatt.Policy{LateAfter: lateAfter, Location: location}, log)
	holidayService := appholiday.NewHolidayService(holidayRepo, log)
	payrollService := apppayroll.NewPayrollService(settingsRepo, stores.Cache, payroll.CompanyProfile{
		Name:          cfg.Company.Name,
		Tagline:       cfg.Company.Tagline,
		Address:       cfg.Company.Address,
		Website:       cfg.Company.Website,
		Email:         cfg.Company.Email,
		HRName:        cfg.Company.HRName,
		HRDesignation: cfg.Company.HRDesignation,
	}, log)
	complianceService := compliance.NewComplianceService(employeeRepo, unitRepo, departmentRepo, challanRepo, objects, log)
	reportService := report.NewReportService(attendanceService, complianceService, payrollService, printer, location, log)
	dashboardService := appdash.NewDashboardService(employeeRepo, leaveRepo, attendanceRepo, departmentRepo,
		holidayService, attendanceService, stores.Cache, location, log)

	hrMetrics, err := telemetry.NewHRMetrics(meter, dashboardService, log)
	if err != nil {
		log.Warn("HR metrics disabled", zap.Error(err))
	} else {
		authService.SetMetrics(hrMetrics)
		leaveService.SetMetrics(hrMetrics)
		attendanceService.SetMetrics(hrMetrics)
		reportService.SetMetrics(hrMetrics)
	}

	checks := map[string]handler.Pinger{"database": handler.PingFunc(db.PingContext)}
	if stores.Client != nil {
		checks["redis"] = handler.PingFunc(func(ctx context.Context) error {
			return stores.Client.Ping(ctx).Err()
		})
	}
	systemHandler := handler.NewSystemHandler(telemetry.ServiceVersion, checks)

	handlers := router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Employee:   handler.NewEmployeeHandler(employeeService),
		Unit:       handler.NewUnitHandler(unitService),
		Department: handler.NewDepartmentHandler(departmentService),
		Leave:      handler.NewLeaveHandler(leaveService),
		Attendance: handler.NewAttendanceHandler(attendanceService, reportService),
		Holiday:    handler.NewHolidayHandler(holidayService),
		Payroll:    handler.NewPayrollHandler(payrollService),
		Compliance: handler.NewComplianceHandler(complianceService, reportService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		System:     systemHandler,
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies", zap.Error(err))
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.SecureWithConfig(middleware.DefaultSecurityConfig()))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.HTTP.CORSAllowOrigins,
		AllowMethods:  cfg.HTTP.CORSAllowMethods,
		AllowHeaders:  cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders: []string{"Content-Disposition", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(middleware.BodyLimitConfig{
		MaxBytes:       cfg.HTTP.MaxBodySize,
		MaxUploadBytes: cfg.HTTP.MaxUploadSize,
	}))
	if cfg.HTTP.RateLimitEnabled {
		engine.Use(middleware.RateLimit(middleware.NewRateLimiter(ctx, cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)))
	}
	if cfg.Telemetry.Enabled {
		httpMetrics, err := middleware.HTTPMetrics(meter)
		if err != nil {
			log.Warn("HTTP metrics disabled", zap.Error(err))
		} else {
			engine.Use(httpMetrics)
		}
		engine.Use(middleware.TracingWithConfig(middleware.DefaultTracingConfig())...)
		engine.Use(middleware.SpanErrorMarker())
	}
	if providers.Profiler.IsEnabled() {
		engine.Use(middleware.ProfilingLabels())
	}

	engine.GET("/health", systemHandler.Health)
	if local, ok := objects.(*storage.MemoryObjectStorage); ok {
		mount := local.MountPath()
		download := gin.WrapH(http.StripPrefix(mount+"/", local))
		engine.GET(mount+"/*key", download)
		engine.HEAD(mount+"/*key", download)
	}

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	jwtMiddleware := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths:      r.PublicAPIPaths(),
		Logger:         log,
	})

	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:     cfg.Swagger.Enabled,
			RequireAuth: cfg.App.Env == "production",
			AllowedIPs:  cfg.Swagger.AllowedIPs,
		}, jwtMiddleware),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	var loginGuard gin.HandlerFunc
	if cfg.HTTP.AuthRateLimitEnabled {
		loginGuard = middleware.RateLimitByKey(
			middleware.NewRateLimiter(ctx, cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow),
			func(c *gin.Context) string { return "auth:" + c.ClientIP() },
		)
	}

	r.Use(jwtMiddleware)
	r.RegisterHR(handlers, router.RouteOptions{
		Permissions: middleware.PermissionConfig{Authorizer: authorizer, Logger: log},
		LoginGuard:  loginGuard,
	})
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := providers.Shutdown(shutdownCtx); err != nil {
		log.Warn("Telemetry shutdown incomplete", zap.Error(err))
	}

	log.Info("Server exited")
}

// newObjectStorage returns S3 storage when configured and an in-process store otherwise
func newObjectStorage(ctx context.Context, cfg *config.Config, log *zap.Logger) compliance.ObjectStorage {
	if !cfg.Storage.Enabled {
		local := storage.NewMemoryObjectStorage()
		local.BaseURL = cfg.Storage.LocalBaseURL
		log.Info("Object storage disabled, challans are kept in memory", zap.String("download_url", local.BaseURL))
		return local
	}
	s3, err := storage.NewS3ObjectStorage(&cfg.Storage,
		storage.WithLogger(log),
		storage.WithPresignExpiration(cfg.Storage.PresignExpiration),
	)
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}
	if err := s3.EnsureBucket(ctx); err != nil {
		log.Fatal("Failed to ensure storage bucket", zap.Error(err))
	}
	return s3
}
