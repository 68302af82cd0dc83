package main

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"

	"github.com/drakos74/autoop/infra/config"
	"github.com/drakos74/autoop/internal/dataset"
	"github.com/drakos74/autoop/internal/feature"
	"github.com/drakos74/autoop/internal/model"
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/olekukonko/tablewriter"
)

func featuresCmd() *commander.Command {
	var file, cfg string
	cmd := &commander.Command{
		UsageLine: "features -f <csv> [-c <config>]",
		Short:     "detects the feature type of each csv column",
		Long: `
detects whether each column of the csv file is categorical or numerical

	$ autoop features -f data.csv
`,
		Flag: *flag.NewFlagSet("features", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&file, "f", "", "csv data file")
	cmd.Flag.StringVar(&cfg, "c", "", "config file (json or yaml)")
	cmd.Run = func(cmd *commander.Command, args []string) error {
		return features(context.Background(), os.Stdout, file, cfg)
	}
	return cmd
}

func features(ctx context.Context, w io.Writer, file, cfgFile string) error {
	cfg, err := setup(cfgFile)
	if err != nil {
		return err
	}

	table, err := load(ctx, file)
	if err != nil {
		return err
	}

	classifier := feature.NewClassifier(cfg.Features)
	output := tablewriter.NewWriter(w)
	output.SetHeader([]string{"column", "type", "rows", "distinct", "ratio", "integers"})
	for _, column := range table.Columns {
		t, ok := classifier.Type(column)
		if !ok {
			continue
		}
		p := classifier.Profile(column)
		output.Append(profileRow(column.Name, t, p))
	}
	output.Render()
	return nil
}

func profileRow(name string, t model.FeatureType, p feature.Profile) []string {
	if !p.Numeric {
		return []string{name, string(t), strconv.Itoa(p.Rows), "-", "-", "-"}
	}
	return []string{
		name,
		string(t),
		strconv.Itoa(p.Rows),
		strconv.Itoa(p.Distinct),
		strconv.FormatFloat(p.UniqueRatio, 'f', 4, 64),
		strconv.FormatBool(p.Integers),
	}
}

func setup(cfgFile string) (config.Config, error) {
	cfg, err := config.New(cfgFile)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Apply(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func load(ctx context.Context, file string) (model.Table, error) {
	if file == "" {
		return model.Table{}, fmt.Errorf("no data file given")
	}
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return model.Table{}, fmt.Errorf("could not read data file: %w", err)
	}
	return dataset.NewDataset(filepath.Base(file), b).Read(ctx)
}
