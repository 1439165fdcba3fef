package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"punarvasthra/cmd"
	httpserver "punarvasthra/internal/adapters/in/http"
	"punarvasthra/internal/adapters/out/postgres/customizationrepo"
	"punarvasthra/internal/adapters/out/postgres/orderrepo"
	"punarvasthra/internal/adapters/out/postgres/submissionrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	waitForDatabase(dsn)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	migrateDatabase(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		SMTPHost:      goDotEnvVariable("SMTP_HOST"),
		SMTPPort:      goDotEnvIntVariable("SMTP_PORT"),
		SMTPUsername:  goDotEnvVariable("SMTP_USERNAME"),
		SMTPPassword:  goDotEnvVariable("SMTP_PASSWORD"),
		SMTPFrom:      goDotEnvVariable("SMTP_FROM"),
		UploadsDir:    goDotEnvVariable("UPLOADS_DIR"),
		SweepSchedule: goDotEnvVariable("SWEEP_SCHEDULE"),
		StaleCutoff:   goDotEnvDurationVariable("STALE_CUTOFF"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Error parsing %s as integer: %v", key, err)
	}
	return value
}

func goDotEnvDurationVariable(key string) time.Duration {
	value, err := time.ParseDuration(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Error parsing %s as duration: %v", key, err)
	}
	return value
}

// waitForDatabase pings the database until it accepts connections. The
// application usually starts alongside the database container, which needs a
// moment before it is ready.
func waitForDatabase(dsn string) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Error opening database connection: %v", err)
	}
	defer db.Close()

	for attempt := 1; attempt <= 30; attempt++ {
		if err = db.Ping(); err == nil {
			return
		}
		time.Sleep(time.Second)
	}
	log.Fatalf("Database is not reachable: %v", err)
}

func migrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&submissionrepo.SubmissionDTO{},
		&customizationrepo.RequestDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpserver.NewServer(
		app.CreateCreateSubmissionCommandHandler(),
		app.CreateChangeSubmissionStatusCommandHandler(),
		app.CreateDeleteSubmissionCommandHandler(),
		app.CreateCreateCustomizationRequestCommandHandler(),
		app.CreateAssignTailorCommandHandler(),
		app.CreateChangeCustomizationStatusCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateResendNotificationCommandHandler(),
		app.CreateGetAllSubmissionsQueryHandler(),
		app.CreateGetUnfinishedOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
