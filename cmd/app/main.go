package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"trackledger/cmd"
	httpadapter "trackledger/internal/adapters/in/http"
	"trackledger/internal/adapters/out/postgres"
	"trackledger/internal/adapters/out/postgres/controlrepo"
	"trackledger/internal/adapters/out/postgres/deliveryrepo"
	"trackledger/internal/adapters/out/postgres/eventrepo"
	"trackledger/internal/adapters/out/postgres/rolerepo"
	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustConnectDB(configs)
	mustMigrateDB(db)

	app := cmd.NewCompositionRoot(configs, db)

	owner := mustParseUUID(configs.LedgerOwnerID, "LEDGER_OWNER_ID")
	bootstrapControl(db, owner, configs.WatchIdentityID)

	jobManager := startJobs(&app, configs.WatchIdentityID)
	if jobManager != nil {
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		LedgerOwnerID:   goDotEnvVariable("LEDGER_OWNER_ID"),
		WatchIdentityID: goDotEnvVariable("WATCH_IDENTITY_ID"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file found, relying on process environment")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func mustMigrateDB(db *gorm.DB) {
	err := db.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&eventrepo.TrackingEventDTO{},
		&rolerepo.RoleAssignmentDTO{},
		&controlrepo.LedgerControlDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func mustParseUUID(value string, key string) kernel.UUID {
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return id
}

// bootstrapControl seeds the administrative state with the configured owner
// (an earlier bootstrap wins) and allowlists the watch identity so the
// overdue sweep's events are oracle verified.
func bootstrapControl(db *gorm.DB, owner kernel.UUID, watchIdentityID string) {
	ctx := context.Background()
	uow := postgres.NewGormUnitOfWorkFactory(db).Create()
	controlRepo := uow.ControlRepository()

	if err := controlRepo.Init(ctx, owner); err != nil {
		log.Fatalf("Failed to bootstrap administrative state: %v", err)
	}

	if watchIdentityID == "" {
		return
	}
	watchIdentity := mustParseUUID(watchIdentityID, "WATCH_IDENTITY_ID")

	ctrl, err := controlRepo.Get(ctx)
	if err != nil {
		log.Fatalf("Failed to load administrative state: %v", err)
	}
	if ctrl.IsOracle(watchIdentity) || ctrl.IsOwner(watchIdentity) {
		return
	}

	if err = ctrl.AddOracle(ctrl.Owner(), watchIdentity); err != nil {
		log.Fatalf("Failed to allowlist watch identity: %v", err)
	}
	if err = controlRepo.Update(ctx, ctrl); err != nil {
		log.Fatalf("Failed to persist watch identity registration: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, watchIdentityID string) *jobs.JobManager {
	if watchIdentityID == "" {
		log.Warnf("WATCH_IDENTITY_ID is not set, overdue watch job disabled")
		return nil
	}
	watchIdentity := mustParseUUID(watchIdentityID, "WATCH_IDENTITY_ID")

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateFlagOverdueDeliveriesCommandHandler(),
		watchIdentity,
		logger,
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateInitializeDeliveryCommandHandler(),
		app.CreateTrackDeliveryCommandHandler(),
		app.CreateFailDeliveryCommandHandler(),
		app.CreateAssignRoleCommandHandler(),
		app.CreateRemoveRoleCommandHandler(),
		app.CreateAddOracleCommandHandler(),
		app.CreateRemoveOracleCommandHandler(),
		app.CreateSetPauseCommandHandler(),
		app.CreateGetDeliveryDetailsQueryHandler(),
		app.CreateGetTrackingEventQueryHandler(),
		app.CreateGetLatestSequenceQueryHandler(),
		app.CreateIsDeliveryCompletedQueryHandler(),
		app.CreateGetOraclesQueryHandler(),
		app.CreateGetLedgerControlQueryHandler(),
		app.CreateHasRoleQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
