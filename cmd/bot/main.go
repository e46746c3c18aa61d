package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"actbot/internal/acts"
	"actbot/internal/auth"
	"actbot/internal/config"
	"actbot/internal/intake"
	"actbot/internal/observability"
	"actbot/internal/report"
	"actbot/internal/scheduler"
	"actbot/internal/telegram"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := newStore(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to init record store: %v", err)
	}
	defer closeStore()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(cfg.MetricsNamespace, reg)

	gate := auth.NewGate(cfg.AdminUserID)
	if cfg.AdminUserID == 0 {
		log.Printf("Warning: ADMIN_USER is not set, reports and notifications are disabled")
	}

	bot, err := telegram.New(
		cfg.TelegramBotToken,
		gate,
		intake.NewEngine(store),
		report.NewService(store, gate),
		metrics,
	)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	if cfg.HTTPAddr != "" {
		go func() {
			if err := observability.Serve(ctx, cfg.HTTPAddr, observability.NewRouter(reg)); err != nil {
				log.Printf("http listener stopped: %v", err)
			}
		}()
	}

	if cfg.WeeklyReportCron != "" && cfg.AdminUserID != 0 {
		sch := scheduler.New(cfg.WeeklyReportCron, loadLocation(cfg.ReportTimezone))
		sch.SetReportFunction(bot.SendWeeklyToAdmin)
		if err := sch.Start(); err != nil {
			log.Printf("failed to start scheduler: %v", err)
		}
		if sch.IsRunning() {
			defer sch.Stop()
		}
	}

	log.Println("🚀 Bot started")
	bot.Start(ctx)
	log.Println("👋 Bot stopped")
}

func newStore(ctx context.Context, cfg *config.Config) (acts.Store, func(), error) {
	if cfg.DatabaseURL != "" {
		pg, err := acts.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Println("🗄️ Using postgres record store")
		return pg, func() { _ = pg.Close() }, nil
	}
	fs, err := acts.NewFileStore(cfg.ActsFilePath)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("🗄️ Using file record store at %s", cfg.ActsFilePath)
	return fs, func() {}, nil
}

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("unknown REPORT_TIMEZONE %q, using local time: %v", name, err)
		return time.Local
	}
	return loc
}
