package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hris-notify-go/internal/config"
	"github.com/cmlabs-hris/hris-notify-go/internal/domain/event"
	appHTTP "github.com/cmlabs-hris/hris-notify-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-notify-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-notify-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-notify-go/internal/pkg/mail"
	"github.com/cmlabs-hris/hris-notify-go/internal/repository/postgresql"
	eventsService "github.com/cmlabs-hris/hris-notify-go/internal/service/events"
	notificationService "github.com/cmlabs-hris/hris-notify-go/internal/service/notification"
	"github.com/cmlabs-hris/hris-notify-go/internal/service/resolver"
	schedulerService "github.com/cmlabs-hris/hris-notify-go/internal/service/scheduler"
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

	settingsRepo := postgresql.NewSettingsRepository(db)
	digestRepo := postgresql.NewDigestRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	userLookupRepo := postgresql.NewUserLookupRepository(db)

	mailer := mail.NewSMTPMailer(cfg.SMTP)

	settingsSvc := notificationService.NewSettingsService(settingsRepo)
	dispatcher := notificationService.NewDispatcher(mailer, digestRepo, userLookupRepo)
	resolverSvc := resolver.NewResolverService(employeeRepo, leaveRequestRepo, payrollRepo)

	bus := event.NewBus()
	handlers := eventsService.NewHandlers(settingsSvc, resolverSvc, dispatcher)
	handlers.Register(bus)

	schedulerSvc := schedulerService.NewSchedulerService(employeeRepo, settingsSvc, bus)

	if cfg.Scheduler.Enabled {
		cronScheduler := cron.NewScheduler()
		cronScheduler.AddDailyJob("daily-notification-scan", cfg.Scheduler.RunHour, schedulerSvc.RunDaily)
		cronScheduler.Start()
		defer cronScheduler.Stop()
	}

	eventHandler := appHTTP.NewEventHandler(bus)
	adminHandler := appHTTP.NewAdminHandler(digestRepo, settingsSvc, schedulerSvc)

	router := appHTTP.NewRouter(eventHandler, adminHandler, cfg.App.CORSOrigins)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:              port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Printf("Notification engine running at http://localhost%s\n", port)
	if err := server.ListenAndServe(); err != nil {
		fmt.Println("Server error:", err)
	}
}
