package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	adapthttp "dietlog/internal/adapter/http"
	"dietlog/internal/app"
	"dietlog/internal/metrics"
)

type ServeCmd struct {
	Addr string `help:"Listen address; overrides ADDR."`
}

func (c *ServeCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	setupLogging(cfg)
	if c.Addr != "" {
		cfg.Addr = c.Addr
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	db, closeDB, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metricsManager := metrics.NewManager("dietlog", "server", registry)

	h := adapthttp.New(adapthttp.Services{
		Profile:   app.NewProfileService(db),
		Diet:      app.NewDietService(db),
		Weight:    app.NewWeightService(db),
		Dashboard: app.NewDashboardService(db, db, db),
		Charts:    app.NewChartsService(db),
	}, metricsManager, registry, loc, cfg.WebDir).Handler()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.Infof("listening on %s (store=%s, tz=%s)", cfg.Addr, cfg.Store, loc)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		log.Infoln("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
