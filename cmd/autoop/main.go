package main

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func root() *commander.Command {
	return &commander.Command{
		UsageLine: "autoop <command> [options]",
		Short:     "detects feature types and evaluates metrics on tabular data",
		Subcommands: []*commander.Command{
			featuresCmd(),
			metricCmd(),
			metricsCmd(),
			serveCmd(),
		},
		Flag: *flag.NewFlagSet("autoop", flag.ExitOnError),
	}
}

func main() {
	cmd := root()
	err := cmd.Flag.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("**err**: %v\n", err)
		os.Exit(1)
	}

	err = cmd.Dispatch(cmd.Flag.Args())
	if err != nil {
		fmt.Printf("**err**: %v\n", err)
		os.Exit(1)
	}
}
