package annotate

import (
	"fmt"
	"log/slog"

	"rowgroup/internal/logging"
	"rowgroup/internal/matching"
	"rowgroup/internal/table"
)

// DefaultIDHeader names the prepended identifier column.
const DefaultIDHeader = "ID"

// Mode selects when identifiers are read.
type Mode int

const (
	// Streaming reads each identifier as soon as its row is mapped.
	Streaming Mode = iota
	// Settled maps all rows before reading any identifier.
	Settled
)

func (m Mode) String() string {
	switch m {
	case Settled:
		return "settled"
	default:
		return "streaming"
	}
}

// EmitFunc receives annotated rows in input order.
type EmitFunc func(table.Row) error

// Options configures an Annotator.
type Options struct {
	Groups   []matching.FieldGroup
	Columns  map[matching.FieldGroup][]string
	IDHeader string
	Mode     Mode
	Logger   *slog.Logger

	// MapperOptions are appended after the column override; tests use them to
	// pin identifiers.
	MapperOptions []matching.MapperOption
}

// Annotator runs clustering passes. Each call to Annotate uses a fresh Mapper.
type Annotator struct {
	opts   Options
	logger *slog.Logger
}

// New constructs an Annotator.
func New(opts Options) *Annotator {
	if opts.IDHeader == "" {
		opts.IDHeader = DefaultIDHeader
	}
	return &Annotator{
		opts:   opts,
		logger: logging.NewComponentLogger(opts.Logger, "annotate"),
	}
}

// Annotate maps every row of tbl to a cluster and passes the annotated rows to
// emit. An empty table emits nothing. The returned Summary describes the final
// cluster layout regardless of mode.
func (a *Annotator) Annotate(tbl *table.Table, emit EmitFunc) (Summary, error) {
	if tbl.Len() == 0 {
		a.logger.Debug("no rows to annotate")
		return Summary{}, nil
	}

	mapperOpts := append([]matching.MapperOption{matching.WithColumns(a.opts.Columns)}, a.opts.MapperOptions...)
	mapper := matching.NewMapper(a.opts.Groups, mapperOpts...)

	a.logger.Debug("annotation started",
		logging.Int("rows", tbl.Len()),
		logging.String("mode", a.opts.Mode.String()),
		logging.Any("field_groups", a.opts.Groups),
	)

	nodes := make([]matching.NodeID, len(tbl.Rows))
	var err error
	switch a.opts.Mode {
	case Settled:
		err = a.settled(tbl, mapper, nodes, emit)
	default:
		err = a.streaming(tbl, mapper, nodes, emit)
	}
	if err != nil {
		return Summary{}, err
	}

	summary := summarize(mapper, nodes)
	a.logger.Info("annotation complete",
		logging.Int("rows", summary.Rows),
		logging.Int("clusters", summary.Clusters),
		logging.Int("rows_without_keys", summary.RowsWithoutKeys),
		logging.Int("merges", summary.Merges),
	)
	return summary, nil
}

func (a *Annotator) streaming(tbl *table.Table, mapper *matching.Mapper, nodes []matching.NodeID, emit EmitFunc) error {
	for i, row := range tbl.Rows {
		merges := mapper.Stats().Merges
		nodes[i] = mapper.NodeFor(row)
		if mapper.Stats().Merges > merges {
			a.logger.Debug("clusters merged", logging.Int("row", i+1))
		}
		if err := a.emit(emit, i, row, mapper.RootIdentifier(nodes[i])); err != nil {
			return err
		}
	}
	return nil
}

func (a *Annotator) settled(tbl *table.Table, mapper *matching.Mapper, nodes []matching.NodeID, emit EmitFunc) error {
	for i, row := range tbl.Rows {
		nodes[i] = mapper.NodeFor(row)
	}
	for i, row := range tbl.Rows {
		if err := a.emit(emit, i, row, mapper.RootIdentifier(nodes[i])); err != nil {
			return err
		}
	}
	return nil
}

func (a *Annotator) emit(emit EmitFunc, index int, row table.Row, id string) error {
	if emit == nil {
		return nil
	}
	if err := emit(row.Prepend(a.opts.IDHeader, id)); err != nil {
		return fmt.Errorf("emit row %d: %w", index+1, err)
	}
	return nil
}
