package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/drakos74/autoop/internal/model"
	"github.com/rocketlaunchr/dataframe-go"
	"github.com/rocketlaunchr/dataframe-go/imports"
	"github.com/rs/zerolog/log"
)

// Dataset is an artifact holding csv data.
type Dataset struct {
	Artifact
}

// NewDataset creates a new dataset from the given csv data.
func NewDataset(name string, data []byte) Dataset {
	return Dataset{Artifact: NewArtifact(name, data)}
}

// Read parses the csv data of the dataset into a table.
func (d Dataset) Read(ctx context.Context) (model.Table, error) {
	table, err := FromCSV(ctx, bytes.NewReader(d.Data))
	if err != nil {
		return model.Table{}, fmt.Errorf("could not read dataset '%s': %w", d.Name, err)
	}
	log.Debug().
		Str("dataset", d.Name).
		Int("columns", len(table.Columns)).
		Int("rows", table.Rows()).
		Msg("read dataset")
	return table, nil
}

// FromCSV loads the csv data of the reader into a table.
// The first line is the header. Blank input results in an empty table.
func FromCSV(ctx context.Context, r io.ReadSeeker, options ...imports.CSVLoadOptions) (model.Table, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return model.Table{}, fmt.Errorf("could not seek csv data: %w", err)
	}
	if size == 0 {
		return model.NewTable(), nil
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return model.Table{}, fmt.Errorf("could not seek csv data: %w", err)
	}

	if len(options) == 0 {
		options = []imports.CSVLoadOptions{{TrimLeadingSpace: true}}
	}
	df, err := imports.LoadFromCSV(ctx, r, options...)
	if err != nil {
		return model.Table{}, fmt.Errorf("could not load csv data: %w", err)
	}
	return FromDataFrame(df), nil
}

// FromDataFrame converts the data frame into a table.
// Nil cells become missing values.
func FromDataFrame(df *dataframe.DataFrame) model.Table {
	if df == nil {
		return model.NewTable()
	}
	columns := make([]model.Column, len(df.Series))
	for i, s := range df.Series {
		n := s.NRows()
		values := make([]interface{}, n)
		for row := 0; row < n; row++ {
			values[row] = s.Value(row)
		}
		columns[i] = model.NewColumn(s.Name(), values...)
	}
	return model.NewTable(columns...)
}
