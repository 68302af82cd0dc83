package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/drakos74/autoop/internal/metric"
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/olekukonko/tablewriter"
)

func metricCmd() *commander.Command {
	var file, name, truth, pred string
	cmd := &commander.Command{
		UsageLine: "metric -f <csv> -m <metric> -t <column> -p <column>",
		Short:     "evaluates a metric between two csv columns",
		Long: `
evaluates the given metric with the ground truth and the predictions of two csv columns

	$ autoop metric -f results.csv -m balanced_accuracy -t label -p prediction
`,
		Flag: *flag.NewFlagSet("metric", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&file, "f", "", "csv data file")
	cmd.Flag.StringVar(&name, "m", "", "metric name")
	cmd.Flag.StringVar(&truth, "t", "", "ground truth column")
	cmd.Flag.StringVar(&pred, "p", "", "predictions column")
	cmd.Run = func(cmd *commander.Command, args []string) error {
		return evaluate(context.Background(), os.Stdout, file, name, truth, pred)
	}
	return cmd
}

func evaluate(ctx context.Context, w io.Writer, file, name, truth, pred string) error {
	m, ok := metric.Get(name)
	if !ok {
		return fmt.Errorf("unknown metric '%s'", name)
	}

	table, err := load(ctx, file)
	if err != nil {
		return err
	}
	yTrue, ok := table.Column(truth)
	if !ok {
		return fmt.Errorf("unknown column '%s'", truth)
	}
	yPred, ok := table.Column(pred)
	if !ok {
		return fmt.Errorf("unknown column '%s'", pred)
	}

	v, err := metric.Evaluate(m, yTrue.Values, yPred.Values)
	if err != nil {
		return fmt.Errorf("could not evaluate '%s': %w", name, err)
	}
	_, err = fmt.Fprintln(w, strconv.FormatFloat(v, 'g', -1, 64))
	return err
}

func metricsCmd() *commander.Command {
	return &commander.Command{
		UsageLine: "metrics",
		Short:     "lists the available metrics",
		Run: func(cmd *commander.Command, args []string) error {
			list(os.Stdout)
			return nil
		},
		Flag: *flag.NewFlagSet("metrics", flag.ExitOnError),
	}
}

func list(w io.Writer) {
	output := tablewriter.NewWriter(w)
	output.SetHeader([]string{"metric"})
	for _, n := range metric.Names() {
		output.Append([]string{n.String()})
	}
	output.Render()
}
