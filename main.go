package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backoffice/internal/auth"
	intconfig "backoffice/internal/config"
	"backoffice/internal/db"
	router "backoffice/internal/http"
	"backoffice/internal/repositories"
	"backoffice/internal/services"
	"backoffice/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	env := intconfig.LoadEnv()
	if err := env.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := utils.NewLogger(env.LogLevel, env.LogEncoding, env.IsDevelopment())
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(env, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(env intconfig.Env, log *zap.Logger) error {
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := intconfig.ConnectDB(ctx, env)
	if err != nil {
		return err
	}
	defer conn.Close()
	log.Info("database connected", zap.String("driver", env.DBDriver))

	if env.DBAutoMigrate {
		if err := db.Migrate(ctx, conn); err != nil {
			return err
		}
		log.Info("migrations applied")
	}

	hasher, err := auth.NewHasher(env.PasswordMAC)
	if err != nil {
		return err
	}
	tokens, err := auth.NewTokenIssuer(env.JWTKey, env.JWTIssuer, env.JWTAudience, env.JWTTTL)
	if err != nil {
		return err
	}

	stores := repositories.NewStores(conn)
	users := services.NewUserService(stores.Users, hasher, tokens, log)
	if _, err := users.EnsureAdmin(ctx, env.AdminUsername, env.AdminEmail, env.AdminPassword); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	r := router.NewRouter(router.Deps{
		DB:           conn,
		Log:          log,
		Tokens:       tokens,
		CORSOrigins:  env.CORSAllowedOrigins,
		Users:        users,
		Categories:   services.NewCategoryService(stores.Categories, log),
		Suppliers:    services.NewSupplierService(stores.Suppliers, log),
		Products:     services.NewProductService(stores.Products, log),
		Customers:    services.NewCustomerService(stores.Customers, log),
		Orders:       services.NewOrderService(stores.Orders, log),
		OrderDetails: services.NewOrderDetailService(stores.OrderDetails, log),
		Inventories:  services.NewInventoryService(stores.Inventories, stores.History, log),
		Reports: &services.ReportService{
			Categories:   stores.Categories,
			Products:     stores.Products,
			Customers:    stores.Customers,
			Orders:       stores.Orders,
			OrderDetails: stores.OrderDetails,
			Inventories:  stores.Inventories,
			History:      stores.History,
			Log:          log,
		},
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", env.AppAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped cleanly")
	return nil
}
