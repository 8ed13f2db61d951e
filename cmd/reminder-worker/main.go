package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/landon-studio/Rm8-dash-sub001/internal/dedup"
	"github.com/landon-studio/Rm8-dash-sub001/internal/dispatch"
	"github.com/landon-studio/Rm8-dash-sub001/internal/household"
	"github.com/landon-studio/Rm8-dash-sub001/internal/notifications"
	"github.com/landon-studio/Rm8-dash-sub001/internal/reminders"
	"github.com/landon-studio/Rm8-dash-sub001/internal/settings"
	"github.com/landon-studio/Rm8-dash-sub001/internal/sweep"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/config"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/db"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/kvstore"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/logger"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/metrics"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "reminder-worker"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	cfg.Service.Kind = "reminder-worker"

	logg = logger.New(logger.Options{
		ServiceName: "reminder-worker",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	kv, err := kvstore.New(dbClient.DB())
	if err != nil {
		logg.Error(context.Background(), "failed to create kv store", err)
		os.Exit(1)
	}

	settingsManager, err := settings.NewManager(settings.ManagerParams{Logger: logg, KV: kv})
	if err != nil {
		logg.Error(context.Background(), "failed to create settings manager", err)
		os.Exit(1)
	}

	notificationStore, err := notifications.NewStore(context.Background(), notifications.StoreParams{
		Logger: logg,
		KV:     kv,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create notification store", err)
		os.Exit(1)
	}

	reminderDedup, err := dedup.NewState(context.Background(), dedup.StateParams{
		Logger: logg,
		KV:     kv,
		Key:    "dedupState_reminders",
	})
	if err != nil {
		logg.Error(context.Background(), "failed to load reminder dedup state", err)
		os.Exit(1)
	}

	digestDedup, err := dedup.NewState(context.Background(), dedup.StateParams{
		Logger: logg,
		KV:     kv,
		Key:    "dedupState_digest",
	})
	if err != nil {
		logg.Error(context.Background(), "failed to load digest dedup state", err)
		os.Exit(1)
	}

	dispatcher, err := dispatch.NewDispatcher(dispatch.DispatcherParams{
		Logger:     logg,
		Surface:    dispatch.LogSurface{Logger: logg},
		Settings:   settingsManager,
		Reader:     notificationStore,
		AutoExpire: cfg.Dispatch.AutoExpire,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create dispatcher", err)
		os.Exit(1)
	}

	repo := household.NewRepository(dbClient.DB())

	meetingWeekday, err := config.ParseWeekday(cfg.Reminders.HouseMeetingWeekday)
	if err != nil {
		logg.Error(context.Background(), "invalid house meeting weekday", err)
		os.Exit(1)
	}
	checkinWeekday, err := config.ParseWeekday(cfg.Reminders.CheckinWeekday)
	if err != nil {
		logg.Error(context.Background(), "invalid checkin weekday", err)
		os.Exit(1)
	}

	choreRule, err := reminders.NewChoreRule(repo)
	if err != nil {
		logg.Error(context.Background(), "failed to create chore rule", err)
		os.Exit(1)
	}
	petCareRule, err := reminders.NewPetCareRule(repo,
		cfg.Reminders.MorningWindow,
		cfg.Reminders.MiddayWindow,
		cfg.Reminders.EveningWindow,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create pet care rule", err)
		os.Exit(1)
	}
	checkinRule, err := reminders.NewCheckinRule(repo, checkinWeekday)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkin rule", err)
		os.Exit(1)
	}
	expenseRule, err := reminders.NewExpenseRule(repo,
		cfg.Reminders.ExpenseWarnThreshold,
		cfg.Reminders.ExpenseAlertThreshold,
		cfg.Reminders.SettleUpThreshold,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create expense rule", err)
		os.Exit(1)
	}
	calendarRule, err := reminders.NewCalendarRule(repo)
	if err != nil {
		logg.Error(context.Background(), "failed to create calendar rule", err)
		os.Exit(1)
	}

	sweepMetrics := metrics.NewSweepMetrics(prometheus.DefaultRegisterer)

	primaryEvaluator, err := reminders.NewEvaluator(reminders.EvaluatorParams{
		Name:   "reminders-primary",
		Logger: logg,
		Rules: []reminders.Rule{
			choreRule,
			petCareRule,
			reminders.NewHouseMeetingRule(meetingWeekday),
			checkinRule,
		},
		Settings:   settingsManager,
		Dedup:      reminderDedup,
		Store:      notificationStore,
		Dispatcher: dispatcher,
		Metrics:    sweepMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create primary evaluator", err)
		os.Exit(1)
	}

	secondaryEvaluator, err := reminders.NewEvaluator(reminders.EvaluatorParams{
		Name:       "reminders-secondary",
		Logger:     logg,
		Rules:      []reminders.Rule{expenseRule, calendarRule},
		Settings:   settingsManager,
		Dedup:      reminderDedup,
		Store:      notificationStore,
		Dispatcher: dispatcher,
		Metrics:    sweepMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create secondary evaluator", err)
		os.Exit(1)
	}

	digestJob, err := reminders.NewDigestJob(reminders.DigestJobParams{
		Logger:   logg,
		Settings: settingsManager,
		Store:    notificationStore,
		Sender:   dispatch.LogEmailSender{Logger: logg},
		Dedup:    digestDedup,
		Weekday:  checkinWeekday,
		From:     cfg.Email.From,
		To:       cfg.Email.To,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create digest job", err)
		os.Exit(1)
	}

	primarySweep, err := sweep.NewService(sweep.ServiceParams{
		Name:         "primary",
		Logger:       logg,
		Registry:     sweep.NewRegistry(primaryEvaluator),
		Metrics:      sweepMetrics,
		Interval:     cfg.Reminders.PrimaryInterval,
		StartupDelay: cfg.Reminders.PrimaryDelay,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create primary sweep", err)
		os.Exit(1)
	}

	secondarySweep, err := sweep.NewService(sweep.ServiceParams{
		Name:         "secondary",
		Logger:       logg,
		Registry:     sweep.NewRegistry(secondaryEvaluator, digestJob),
		Metrics:      sweepMetrics,
		Interval:     cfg.Reminders.SecondaryInterval,
		StartupDelay: cfg.Reminders.SecondaryDelay,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create secondary sweep", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":         cfg.App.Env,
		"serviceKind": cfg.Service.Kind,
	})
	logg.Info(ctx, "starting reminder worker")

	var wg sync.WaitGroup
	for _, svc := range []*sweep.Service{primarySweep, secondarySweep} {
		wg.Add(1)
		go func(svc *sweep.Service) {
			defer wg.Done()
			if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logg.Error(ctx, "sweep service stopped unexpectedly", err)
			}
		}(svc)
	}
	wg.Wait()

	logg.Info(ctx, "reminder worker shutting down gracefully")
}
