package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/drakos74/autoop/internal/feature"
	"github.com/drakos74/autoop/internal/observe"
	"github.com/drakos74/autoop/internal/server"
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func serveCmd() *commander.Command {
	var cfg string
	cmd := &commander.Command{
		UsageLine: "serve [-c <config>]",
		Short:     "serves the feature detection and the metrics over http",
		Flag:      *flag.NewFlagSet("serve", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&cfg, "c", "", "config file (json or yaml)")
	cmd.Run = func(cmd *commander.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg)
	}
	return cmd
}

func serve(ctx context.Context, cfgFile string) error {
	cfg, err := setup(cfgFile)
	if err != nil {
		return err
	}

	api := server.NewAPI(feature.NewClassifier(cfg.Features), observe.Observer)
	srv := server.New(cfg.Server.Name, cfg.Server.Port, api)
	if cfg.Server.Debug {
		api.Debug()
		srv.Debug()
	}
	return srv.Run(ctx)
}
