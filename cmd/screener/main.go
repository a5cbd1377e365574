package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"FundScreener/internal/collector"
	"FundScreener/internal/config"
	"FundScreener/internal/logger"
	"FundScreener/internal/notifier"
	"FundScreener/internal/recorder"
	"FundScreener/internal/report"
	"FundScreener/internal/scheduler"
	"FundScreener/internal/screener"
	"FundScreener/internal/server"
)

func main() {
	// Load config
	cfgPath := config.DefaultPath
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		bootLog := logger.New(logger.Config{})
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}
	log.Info().Str("config", cfgPath).Msg("FundScreener starting")

	// Init provider
	var provider collector.Provider
	if cfg.Data.FundsFile != "" {
		provider = collector.NewFileProvider(cfg.Data.FundsFile)
	} else {
		provider = collector.NewSampleProvider()
	}
	log.Info().Str("provider", provider.Name()).Msg("data source selected")

	// Init recorder
	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, log)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
		} else {
			rec = sr
		}
	}
	defer rec.Close()

	// Init notifier
	var ntf notifier.Notifier = notifier.NewNoopNotifier()
	var tn *notifier.TelegramNotifier
	if cfg.NotifyEnabled() {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, log)
		ntf = tn
	}

	store := server.NewStore()
	runner := screener.NewRunner(screener.Options{
		Collector: collector.NewCollector(provider, log),
		Rules:     cfg.Scoring,
		Renderer:  report.NewRenderer(cfg.Report.Title, cfg.Report.Subtitle, cfg.Report.Charts),
		OutputDir: cfg.Output.Dir,
		CSVFile:   cfg.Output.CSVFile,
		TopN:      cfg.Report.TopN,
		Location:  cfg.Location(),
		Recorder:  rec,
		Notifier:  ntf,
		Publisher: store,
	}, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Schedule.Cron == "" && cfg.Server.Port == 0 {
		if _, err := runner.Run(ctx); err != nil {
			log.Error().Err(err).Msg("screening run failed")
			rec.Close()
			os.Exit(1)
		}
		return
	}

	runService(ctx, cfg, runner, tn, store, log)
}

// runService keeps the process alive for scheduled runs, the report server
// and chat commands until SIGINT/SIGTERM.
func runService(ctx context.Context, cfg *config.Config, runner *screener.Runner, tn *notifier.TelegramNotifier, store *server.Store, log zerolog.Logger) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var ntf notifier.Notifier
	if tn != nil {
		ntf = tn
	}
	sched := scheduler.NewScheduler(ctx, runner, ntf, log)
	if cfg.Schedule.Cron != "" {
		if err := sched.Register(cfg.Schedule.Cron); err != nil {
			log.Fatal().Err(err).Msg("register cron task")
		}
		sched.Start()
		defer sched.Stop()
	}

	var srv *server.Server
	if cfg.Server.Port > 0 {
		srv = server.New(server.Config{Port: cfg.Server.Port, Log: log, Store: store})
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("HTTP server failed")
			}
		}()
	}

	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Info().Msg("Telegram polling started")
	}

	if cfg.Schedule.RunOnStart || cfg.Schedule.Cron == "" {
		log.Info().Msg("executing screen now")
		go sched.RunNow()
	}

	log.Info().Msg("FundScreener is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping...")
	cancel()
	if srv != nil {
		shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown")
		}
	}
	log.Info().Msg("FundScreener stopped")
}
