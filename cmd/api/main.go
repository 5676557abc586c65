package main

import (
	"fmt"
	"net/http"

	"github.com/risingsuncomputers/backoffice-backend-go/internal/config"
	appHTTP "github.com/risingsuncomputers/backoffice-backend-go/internal/handler/http"
	"github.com/risingsuncomputers/backoffice-backend-go/internal/pkg/cron"
	"github.com/risingsuncomputers/backoffice-backend-go/internal/pkg/database"
	"github.com/risingsuncomputers/backoffice-backend-go/internal/pkg/jwt"
	"github.com/risingsuncomputers/backoffice-backend-go/internal/repository/postgresql"
	advanceService "github.com/risingsuncomputers/backoffice-backend-go/internal/service/advance"
	attendanceService "github.com/risingsuncomputers/backoffice-backend-go/internal/service/attendance"
	reportService "github.com/risingsuncomputers/backoffice-backend-go/internal/service/report"
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

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo)
	advanceSvc := advanceService.NewAdvanceService(advanceRepo, employeeRepo)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo, advanceRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	advanceHandler := appHTTP.NewAdvanceHandler(advanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(attendanceRepo, cfg.Attendance.StaleSessionMax)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		attendanceHandler,
		advanceHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
