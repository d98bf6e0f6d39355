package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bm_discord_relay/internal/app"
	"bm_discord_relay/internal/battlemetrics"
	"bm_discord_relay/internal/config"
	"bm_discord_relay/internal/deployment"
	"bm_discord_relay/internal/discord"
	"bm_discord_relay/internal/export"
	"bm_discord_relay/internal/processing"
	"bm_discord_relay/internal/server"
	"bm_discord_relay/internal/sheets"

	"github.com/rs/zerolog/log"
)

func main() {
	app.SetupEnvironment()

	// Parse command line flags
	statusInterval := flag.Duration("status-interval", config.StatusPollInterval, "Interval between server status checks (e.g., 30s, 1m)")
	banInterval := flag.Duration("ban-interval", config.BanPollInterval, "Interval between ban log checks (e.g., 5m, 10m)")
	runOnce := flag.Bool("once", false, "Run one poll cycle and exit (don't start scheduler)")
	flag.Parse()

	log.Info().
		Dur("status_interval", *statusInterval).
		Dur("ban_interval", *banInterval).
		Bool("run_once", *runOnce).
		Msg("Starting BattleMetrics Discord relay")

	// Load configuration
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	cfg.StatusInterval = *statusInterval
	cfg.BanInterval = *banInterval

	ctx := context.Background()

	// Initialize clients
	metricsClient := battlemetrics.NewClient(cfg.BattleMetricsServerID, cfg.BattleMetricsToken)
	chatClient := discord.NewClient(cfg.DiscordToken)
	store := processing.NewDedupStore()

	// Optional ban archive
	var archive processing.BanArchive
	if cfg.ArchiveSpreadsheetID != "" {
		sheetsClient, err := sheets.NewClient(ctx, cfg.CredentialsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create sheets client")
		}
		archive = sheets.NewBanArchive(sheetsClient, cfg.ArchiveSpreadsheetID)
		log.Info().Str("spreadsheet_id", cfg.ArchiveSpreadsheetID).Msg("Ban archive enabled")
	}

	// Optional status artifact publisher
	var exporter processing.StatusExporter
	if cfg.StatusExportFile != "" || cfg.StatusDeployURL != "" {
		var deployer export.Deployer
		if cfg.StatusDeployURL != "" {
			deployer = deployment.NewSSHDeployer(cfg.StatusDeployURL, cfg.StatusDeployKey)
		}
		exporter = export.NewStatusPublisher(cfg.BattleMetricsServerID, cfg.StatusExportFile, cfg.StatusInterval, deployer)
		log.Info().Msg("Status artifact publishing enabled")
	}

	// Initialize pollers
	statusPoller := processing.NewStatusPoller(metricsClient, chatClient, store, cfg.StatusCategoryID, exporter)
	banPoller := processing.NewBanPoller(metricsClient, chatClient, store, processing.NewTagSet(cfg.Tags), cfg.BanlogChannelID, config.BanPageSize, archive)

	// Liveness endpoint
	liveness := server.New(cfg.Port)
	go func() {
		log.Info().Int("port", cfg.Port).Msg("Liveness endpoint listening")
		if err := liveness.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Liveness endpoint failed")
		}
	}()

	// The pollers must not start before the chat service is reachable with a
	// valid token
	me, err := chatClient.Me(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to authenticate with Discord")
	}
	log.Info().
		Str("username", me.Username).
		Str("user_id", me.ID).
		Msg("Logged in to Discord")

	if *runOnce {
		log.Info().Msg("Running single poll cycle")

		metricsClient.ResetAPICallCount()
		if err := statusPoller.Tick(ctx); err != nil {
			log.Error().Err(err).Msg("Status poll failed")
		}
		if err := banPoller.Tick(ctx); err != nil {
			log.Error().Err(err).Msg("Ban poll failed")
		}

		log.Info().
			Int64("metrics_api_calls", metricsClient.GetAPICallCount()).
			Int64("discord_api_calls", chatClient.GetAPICallCount()).
			Msg("Run-once mode: exiting after single cycle")
		return
	}

	// Start scheduled polling
	scheduler := processing.NewScheduler(cfg.StatusInterval, cfg.BanInterval, statusPoller.Tick, banPoller.Tick)
	scheduler.Start(ctx)

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh

	log.Info().Str("signal", sig.String()).Msg("Shutting down")

	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ServerShutdownTimeout)
	defer cancel()
	if err := liveness.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down liveness endpoint")
	}
}
