package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	_ "crm_reports/docs" // swag generated
	"crm_reports/internal/adapter/http/handlers"
	"crm_reports/internal/adapter/persistence"
	"crm_reports/internal/infrastructure/config"
	"crm_reports/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Run wires the store, starts the reconciliation scheduler and serves the
// API until ctx is cancelled or the server fails.
func Run(ctx context.Context, cfg config.Config) error {
	repos, err := persistence.NewRepositories(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer repos.Close()

	scheduler := NewScheduler(repos, cfg)
	scheduler.Start(ctx)

	srv := &http.Server{Handler: NewRouter(BuildHandlers(repos, scheduler, cfg))}
	ln, err := net.Listen("tcp", ":"+strconv.Itoa(cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}

	log.Printf("[routes] listening addr=%s", ln.Addr())
	if err := serve(ctx, srv, ln); err != nil {
		return err
	}
	scheduler.Wait()
	return nil
}

// serve returns once ctx is cancelled and in-flight requests have drained,
// or as soon as the listener fails.
func serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	stopped := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case <-ctx.Done():
		case <-stopped:
			return
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[routes] shutdown failed err=%v", err)
			_ = srv.Close()
		}
	}()

	err := srv.Serve(ln)
	close(stopped)
	// Serve returns as soon as Shutdown starts; wait for it to drain
	<-done
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

func NewScheduler(repos *persistence.Repositories, cfg config.Config) *usecase.ReconciliationScheduler {
	reconciler := usecase.NewExpirationReconciler(repos.Quotes, repos.Stages,
		usecase.WithExpiredStageLabel(cfg.ExpiredStageLabel))
	return usecase.NewReconciliationScheduler(reconciler, cfg.ReconcileInterval)
}

func BuildHandlers(repos *persistence.Repositories, scheduler *usecase.ReconciliationScheduler, cfg config.Config) Handlers {
	dashboardOpts := []usecase.DashboardOption{usecase.WithEndingSoonDays(cfg.EndingSoonDays)}
	if cfg.ReconcileOnDashboardLoad {
		dashboardOpts = append(dashboardOpts, usecase.WithReconcileOnLoad(scheduler))
	}

	quoteUseCase := usecase.NewQuoteUseCase(repos.Quotes)
	reportUseCase := usecase.NewReportUseCase(repos.Quotes, repos.RecurringServices)
	dashboardUseCase := usecase.NewDashboardUseCase(repos.Quotes, repos.RecurringServices, dashboardOpts...)
	directoryUseCase := usecase.NewDirectoryUseCase(repos.Contacts, repos.Users, repos.CatalogItems)

	return Handlers{
		Quote:          handlers.NewQuoteHandler(quoteUseCase),
		Report:         handlers.NewReportHandler(reportUseCase),
		Dashboard:      handlers.NewDashboardHandler(dashboardUseCase, reportUseCase),
		Reconciliation: handlers.NewReconciliationHandler(scheduler),
		Directory:      handlers.NewDirectoryHandler(directoryUseCase),
	}
}

func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCRMRoutes(v1, h)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
