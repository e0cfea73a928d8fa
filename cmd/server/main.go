package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-portal/internal/config"
	myHTTP "github.com/MKhiriev/go-user-portal/internal/handler/http"
	"github.com/MKhiriev/go-user-portal/internal/logger"
	"github.com/MKhiriev/go-user-portal/internal/sanitize"
	"github.com/MKhiriev/go-user-portal/internal/server"
	"github.com/MKhiriev/go-user-portal/internal/service"
	"github.com/MKhiriev/go-user-portal/internal/session"
	"github.com/MKhiriev/go-user-portal/internal/store"
	"github.com/MKhiriev/go-user-portal/internal/workers"
)

// sweepInterval is how often the janitor reclaims expired sessions.
const sweepInterval = time.Minute

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("user-portal-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, log)

	sessions := session.NewManager(cfg.Session.TTL, rand.Reader, time.Now, log)

	background := workers.New(session.NewJanitor(sessions, sweepInterval, log))
	background.Run(context.Background())

	handler := myHTTP.NewHandler(services, sessions, sanitize.New(), log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
