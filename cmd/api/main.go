package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/marinerh/personnel-backend/internal/config"
	appHTTP "github.com/marinerh/personnel-backend/internal/handler/http"
	"github.com/marinerh/personnel-backend/internal/pkg/database"
	"github.com/marinerh/personnel-backend/internal/pkg/jwt"
	"github.com/marinerh/personnel-backend/internal/pkg/schedule"
	"github.com/marinerh/personnel-backend/internal/repository/postgresql"
	absenceService "github.com/marinerh/personnel-backend/internal/service/absence"
	authService "github.com/marinerh/personnel-backend/internal/service/auth"
	careerService "github.com/marinerh/personnel-backend/internal/service/career"
	employeeService "github.com/marinerh/personnel-backend/internal/service/employee"
	leaveService "github.com/marinerh/personnel-backend/internal/service/leave"
	masterService "github.com/marinerh/personnel-backend/internal/service/master"
	statusService "github.com/marinerh/personnel-backend/internal/service/status"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveRecordRepo := postgresql.NewLeaveRecordRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)
	gradeRepo := postgresql.NewGradeRecordRepository(db)
	functionRepo := postgresql.NewFunctionRecordRepository(db)
	unitRepo := postgresql.NewUnitRepository(db)
	bankRepo := postgresql.NewBankIdentityRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	resolver := statusService.NewResolver(leaveRecordRepo, absenceRepo, employeeRepo)
	balance := leaveService.NewBalanceCalculator()

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewService(db, employeeRepo, resolver)
	leaveSvc := leaveService.NewService(db, leaveRecordRepo, leaveTypeRepo, employeeRepo, balance, resolver)
	absenceSvc := absenceService.NewService(db, absenceRepo, employeeRepo, resolver)
	gradeSvc := careerService.NewGradeService(gradeRepo, employeeRepo)
	functionSvc := careerService.NewFunctionService(functionRepo, employeeRepo)
	masterSvc := masterService.NewMasterService(unitRepo, bankRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:     appHTTP.NewAuthHandler(jwtService, authSvc),
		Employee: appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:    appHTTP.NewLeaveHandler(leaveSvc),
		Absence:  appHTTP.NewAbsenceHandler(absenceSvc),
		Grade:    appHTTP.NewCareerHandler(gradeSvc),
		Function: appHTTP.NewCareerHandler(functionSvc),
		Master:   appHTTP.NewMasterHandler(masterSvc),
	})

	// Statuses drift with the calendar: an ongoing leave completes the day
	// after its end date with nobody touching the record. The scheduler
	// re-derives record statuses first, then the per-employee aggregate.
	scheduler := schedule.NewScheduler()
	scheduler.AddJob("leave-status-refresh", cfg.Refresh.Interval, leaveSvc.RefreshStatuses)
	scheduler.AddJob("employee-status-refresh", cfg.Refresh.Interval, resolver.RefreshAll)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down")
	_ = server.Close()
}
