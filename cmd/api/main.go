package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/grupo-santin/obras-backend-go/internal/config"
	appHTTP "github.com/grupo-santin/obras-backend-go/internal/handler/http"
	"github.com/grupo-santin/obras-backend-go/internal/pkg/database"
	"github.com/grupo-santin/obras-backend-go/internal/pkg/jwt"
	"github.com/grupo-santin/obras-backend-go/internal/repository/postgresql"
	attendanceService "github.com/grupo-santin/obras-backend-go/internal/service/attendance"
	serviceAuth "github.com/grupo-santin/obras-backend-go/internal/service/auth"
	employeeService "github.com/grupo-santin/obras-backend-go/internal/service/employee"
	exportService "github.com/grupo-santin/obras-backend-go/internal/service/export"
	"github.com/grupo-santin/obras-backend-go/internal/service/master"
	productivityService "github.com/grupo-santin/obras-backend-go/internal/service/productivity"
	rosterService "github.com/grupo-santin/obras-backend-go/internal/service/roster"
	timeentryService "github.com/grupo-santin/obras-backend-go/internal/service/timeentry"
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

	if err := database.Migrate(context.Background(), db, cfg.Bootstrap.ManagerUser, cfg.Bootstrap.ManagerPassword); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	jobFunctionRepo := postgresql.NewJobFunctionRepository(db)
	equipmentRepo := postgresql.NewEquipmentRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)
	rosterRepo := postgresql.NewRosterRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := serviceAuth.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	masterSvc := master.NewMasterService(jobFunctionRepo, equipmentRepo)
	timeEntrySvc := timeentryService.NewTimeEntryService(timeEntryRepo, employeeRepo)
	ingestionSvc := rosterService.NewIngestionService(rosterRepo)
	attendanceSvc := attendanceService.NewAttendanceService(rosterRepo, employeeRepo)
	productivitySvc := productivityService.NewProductivityService(timeEntryRepo, employeeRepo)
	exportSvc := exportService.NewExportService(employeeRepo, timeEntryRepo)

	router := appHTTP.NewRouter(JWTService, appHTTP.Handlers{
		Auth:      appHTTP.NewAuthHandler(authSvc),
		Employee:  appHTTP.NewEmployeeHandler(employeeSvc),
		Master:    appHTTP.NewMasterHandler(masterSvc),
		TimeEntry: appHTTP.NewTimeEntryHandler(timeEntrySvc),
		Roster:    appHTTP.NewRosterHandler(ingestionSvc),
		Dashboard: appHTTP.NewDashboardHandler(attendanceSvc, productivitySvc),
		Export:    appHTTP.NewExportHandler(exportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
