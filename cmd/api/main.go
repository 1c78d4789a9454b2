package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/attendly/workforce-backend-go/internal/config"
	appHTTP "github.com/attendly/workforce-backend-go/internal/handler/http"
	"github.com/attendly/workforce-backend-go/internal/pkg/cron"
	"github.com/attendly/workforce-backend-go/internal/pkg/database"
	"github.com/attendly/workforce-backend-go/internal/pkg/jwt"
	"github.com/attendly/workforce-backend-go/internal/repository/postgresql"
	attendanceService "github.com/attendly/workforce-backend-go/internal/service/attendance"
	leaveService "github.com/attendly/workforce-backend-go/internal/service/leave"
	reportService "github.com/attendly/workforce-backend-go/internal/service/report"
	settingsService "github.com/attendly/workforce-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, int32(cfg.Database.MaxConns), int32(cfg.Database.MinConns))
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	eventRepo := postgresql.NewAttendanceEventRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	shiftRepo := postgresql.NewShiftRulesRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	eventSvc := attendanceService.NewEventService(eventRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	settingsSvc := settingsService.NewSettingsService(holidayRepo, shiftRepo)
	if err := settingsSvc.EnsureDefaultHolidays(context.Background()); err != nil {
		fmt.Println("Error seeding fixed holidays:", err)
		return
	}
	reportSvc := reportService.NewReportService(
		employeeRepo,
		eventRepo,
		leaveRepo,
		holidayRepo,
		shiftRepo,
		cfg.Report.WorkerLimit,
	)

	reportHandler := appHTTP.NewReportHandler(reportSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(eventSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)

	router := appHTTP.NewRouter(
		JWTService,
		reportHandler,
		attendanceHandler,
		leaveHandler,
		settingsHandler,
		cfg.App.Env,
	)

	scheduler := cron.NewScheduler()
	sweepJobs := cron.NewSweepJobs(eventRepo, reportSvc, cfg.Report.SweepInterval)
	sweepJobs.RegisterJobs(scheduler)
	scheduler.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		scheduler.Stop()
		db.Close()
		os.Exit(0)
	}()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
