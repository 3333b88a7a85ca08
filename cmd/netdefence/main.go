package main

import (
	"os"

	"github.com/zhoumeng-creater/netdefence/internal/api"
	"github.com/zhoumeng-creater/netdefence/internal/constants"
	"github.com/zhoumeng-creater/netdefence/internal/engine"
	"github.com/zhoumeng-creater/netdefence/internal/logging"

	"github.com/gin-gonic/gin"
)

func main() {
	// Scenario catalog file (required). Path may be provided via the
	// NETDEFENCE_CONFIG env var or defaults to ./netdefence_config.json in
	// the current working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "./netdefence_config.json"
	}
	cfg := loadConfigOrExit(configPath)

	// Allow the DB path to be configured via NETDEFENCE_DB. Default to a
	// `data/` directory for local development.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = "./data/netdefence.db"
	}
	repo := createRepositoryOrExit(dbPath)

	eng := engine.New()
	handler := api.NewHandler(repo, eng, cfg.Catalog)

	// Background scanner: sessions with no activity past the idle timeout
	// are closed as draws so they stop holding resources.
	startIdleScanner(repo, eng, cfg.SessionTimeout)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteScenarios, handler.ListScenarios)
		apiRoutes.GET(constants.RouteVersion, api.Version)

		apiRoutes.POST(constants.RouteSessions, handler.CreateSession)
		apiRoutes.GET(constants.RouteSessions, handler.ListSessions)
		apiRoutes.GET(constants.RouteSessionByID, handler.GetSession)
		apiRoutes.POST(constants.RouteSessionMoves, handler.SubmitMove)
		apiRoutes.POST(constants.RouteSessionAbandon, handler.AbandonSession)
		apiRoutes.GET(constants.RouteSessionHistory, handler.GetHistory)
		apiRoutes.GET(constants.RouteSessionManual, handler.GetManual)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
