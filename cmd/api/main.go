package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/nivelia-hr/fichaje-backend-go/internal/config"
	appHTTP "github.com/nivelia-hr/fichaje-backend-go/internal/handler/http"
	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/clock"
	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/cron"
	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/database"
	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/geocoder"
	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/jwt"
	"github.com/nivelia-hr/fichaje-backend-go/internal/repository/postgresql"
	absenceService "github.com/nivelia-hr/fichaje-backend-go/internal/service/absence"
	attendanceService "github.com/nivelia-hr/fichaje-backend-go/internal/service/attendance"
	serviceAuth "github.com/nivelia-hr/fichaje-backend-go/internal/service/auth"
	scheduleService "github.com/nivelia-hr/fichaje-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	weeklyScheduleRepo := postgresql.NewWeeklyScheduleRepository(db)
	shiftRosterRepo := postgresql.NewShiftRosterRepository(db)
	eventRepo := postgresql.NewAttendanceEventRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)
	medicalLeaveRepo := postgresql.NewMedicalLeaveRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var clockSource clock.Source = clock.SystemClock{}
	if cfg.Clock.TimeAPIURL != "" {
		clockSource = clock.NewNetworkClock(cfg.Clock.TimeAPIURL, cfg.Clock.Timeout)
	}

	var geo geocoder.Geocoder
	if cfg.Geocoder.BaseURL != "" {
		geo = geocoder.NewNominatimClient(cfg.Geocoder.BaseURL, cfg.Geocoder.Timeout)
	}

	authService := serviceAuth.NewAuthService(db, userRepo, JWTService, jwtRepo)
	schedSvc := scheduleService.NewScheduleService(db, weeklyScheduleRepo, shiftRosterRepo)
	absSvc := absenceService.NewAbsenceService(db, absenceRepo)
	attSvc := attendanceService.NewAttendanceService(
		db,
		eventRepo,
		absenceRepo,
		medicalLeaveRepo,
		schedSvc,
		clockSource,
		geo,
	)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(eventRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(JWTService, authService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attSvc)
	absenceHandler := appHTTP.NewAbsenceHandler(absSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(schedSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		attendanceHandler,
		absenceHandler,
		scheduleHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	fmt.Println("Shutting down...")
	_ = server.Close()
}
