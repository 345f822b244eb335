// Package main runs the gymplan MCP server over stdio for a single user.
// The same tools are mounted on the main service at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/2beens/gymplan/internal/config"
	"github.com/2beens/gymplan/internal/db"
	"github.com/2beens/gymplan/internal/gymplan/catalog"
	gymplanmcp "github.com/2beens/gymplan/internal/gymplan/mcp"
	"github.com/2beens/gymplan/internal/gymplan/routines"
	"github.com/2beens/gymplan/internal/gymplan/workouts"
	"github.com/2beens/gymplan/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	userID := flag.Int("user", 0, "id of the user the tools act for")
	flag.Parse()

	// stdout carries the protocol
	log.SetOutput(os.Stderr)

	if *userID <= 0 {
		log.Fatalln("user id not set. use -user")
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     os.Getenv("GYMPLAN_DB_PASS"),
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %s", err)
	}
	defer dbPool.Close()

	// nothing scrapes the stdio process
	metricsManager := metrics.NewManager("gymplan", "mcp_stdio", prometheus.NewRegistry())
	routinesRepo := routines.NewRepo(dbPool)
	catalogStore := catalog.NewCachedStore(
		catalog.NewRepo(dbPool),
		cfg.CatalogCacheSizeMB,
		cfg.CatalogCacheTTLSeconds,
		metricsManager,
	)
	sessionService := workouts.NewService(routinesRepo, workouts.NewRepo(dbPool), metricsManager)

	server := gymplanmcp.NewServer(
		gymplanmcp.NewPlanService(routinesRepo, sessionService, catalogStore),
		"stdio",
	)
	if err := gymplanmcp.ServeStdio(server, *userID); err != nil {
		log.Fatal(err)
	}
}
