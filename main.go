package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lawlink/config"
	"lawlink/database"
	accountRepo "lawlink/database/repository/account"
	profileRepo "lawlink/database/repository/profile"
	"lawlink/handlers"
	"lawlink/models"
	"lawlink/routes"
	"lawlink/services/auth"
	"lawlink/services/registration"
	"lawlink/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// buildRoleHandlers wires the profile store, orchestrator, and handler trio
// for one role variant.
func buildRoleHandlers[T any, PT models.ProfilePtr[T]](
	db *mongo.Database,
	accounts accountRepo.AccountRepository,
	creds *auth.CredentialService,
	role models.Role,
) (*handlers.RoleHandlers[T, PT], error) {
	profiles, err := profileRepo.NewMongoProfileRepo[T, PT](db, role.Collection())
	if err != nil {
		return nil, err
	}
	orch := &registration.Orchestrator[T, PT]{
		Accounts: accounts,
		Profiles: profiles,
		Creds:    creds,
		Role:     role,
	}
	return handlers.NewRoleHandlers(orch), nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet; fall back to a bare exit.
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	utils.InitializeLogger(cfg.Env)
	logger := utils.GetLogger()

	client, err := database.Connect(cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	db := client.Database(cfg.DatabaseName)
	logger.Sugar().Info("main: connected to MongoDB")

	// Core services.
	creds, err := auth.NewCredentialService(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	verifier, err := auth.NewGoogleVerifier(cfg.GoogleClientID)
	if err != nil {
		logger.Sugar().Fatalf("main: GOOGLE_CLIENT_ID is required for federated login: %v", err)
	}

	// Repositories.
	accounts, err := accountRepo.NewMongoAccountRepo(db)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	authService := &auth.DefaultAuthService{
		Accounts:   accounts,
		Creds:      creds,
		Federation: verifier,
	}

	lawyers, err := buildRoleHandlers[models.LawyerProfile](db, accounts, creds, models.RoleLawyer)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	lawFirms, err := buildRoleHandlers[models.LawFirmProfile](db, accounts, creds, models.RoleLawFirm)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	paralegals, err := buildRoleHandlers[models.ParalegalProfile](db, accounts, creds, models.RoleParalegal)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	mediators, err := buildRoleHandlers[models.MediatorProfile](db, accounts, creds, models.RoleMediator)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	clients, err := buildRoleHandlers[models.ClientProfile](db, accounts, creds, models.RoleClient)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	corporates, err := buildRoleHandlers[models.CorporateProfile](db, accounts, creds, models.RoleCorporate)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	handlerBundle := &routes.HandlerBundle{
		Auth:       handlers.NewAuthHandler(authService),
		Lawyers:    lawyers,
		LawFirms:   lawFirms,
		Paralegals: paralegals,
		Mediators:  mediators,
		Clients:    clients,
		Corporates: corporates,
	}
	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := client.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
