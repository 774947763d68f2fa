package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/clockday-hr/attendance-backend-go/internal/config"
	appHTTP "github.com/clockday-hr/attendance-backend-go/internal/handler/http"
	"github.com/clockday-hr/attendance-backend-go/internal/pkg/cron"
	"github.com/clockday-hr/attendance-backend-go/internal/pkg/database"
	"github.com/clockday-hr/attendance-backend-go/internal/repository/postgresql"
	activityService "github.com/clockday-hr/attendance-backend-go/internal/service/activity"
	attlogService "github.com/clockday-hr/attendance-backend-go/internal/service/attlog"
	"github.com/clockday-hr/attendance-backend-go/internal/service/reconcile"
	requestService "github.com/clockday-hr/attendance-backend-go/internal/service/request"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.Reconcile.Timezone)
	if err != nil {
		fmt.Println("Error loading timezone:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	rawLogRepo := postgresql.NewRawLogRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	missionRepo := postgresql.NewMissionRequestRepository(db)
	overtimeRepo := postgresql.NewOvertimeRequestRepository(db)
	manualLogRepo := postgresql.NewManualLogRequestRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	engine := reconcile.NewService(
		employeeRepo,
		shiftRepo,
		holidayRepo,
		rawLogRepo,
		leaveRepo,
		missionRepo,
		overtimeRepo,
		reportRepo,
		settingsRepo,
		loc,
		cfg.Reconcile.PolicyScope,
	)
	logSvc := attlogService.NewService(rawLogRepo, employeeRepo)
	requestSvc := requestService.NewService(db, leaveRepo, missionRepo, overtimeRepo, manualLogRepo, rawLogRepo, employeeRepo, loc)
	activitySvc := activityService.NewService(employeeRepo, shiftRepo, holidayRepo, rawLogRepo, leaveRepo, loc)

	scheduler := cron.NewScheduler()
	cron.NewReconcileJobs(engine, loc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	logHandler := appHTTP.NewLogHandler(logSvc)
	requestHandler := appHTTP.NewRequestHandler(requestSvc)
	activityHandler := appHTTP.NewActivityHandler(activitySvc)
	reportHandler := appHTTP.NewReportHandler(reportRepo)
	reconcileHandler := appHTTP.NewReconcileHandler(engine)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		logHandler,
		requestHandler,
		activityHandler,
		reportHandler,
		reconcileHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
