package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"dietlog/internal/app"
	"dietlog/internal/domain"
)

type SummaryCmd struct {
	TZ string `name:"tz" help:"IANA time zone for the day boundary; defaults to TIMEZONE."`
}

func (c *SummaryCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	// Logs go to stderr so stdout stays valid JSON.
	setupLogging(cfg)
	if cfg.LogFile == "" {
		logToStderr()
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	if c.TZ != "" {
		if loc, err = time.LoadLocation(c.TZ); err != nil {
			return fmt.Errorf("unknown time zone %q", c.TZ)
		}
	}

	db, closeDB, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	d, err := app.NewDashboardService(db, db, db).Today(ctx, domain.DefaultProfileID, time.Now().In(loc))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
