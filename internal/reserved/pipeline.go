package reserved

import (
	"context"
	"fmt"
	"reserved/internal/rules"
	"reserved/pkg/domain"
	"reserved/pkg/logger"
	"reserved/pkg/serrors"
	"reserved/pkg/storage"
	"strconv"

	"go.uber.org/zap"
)

// DefaultLimit is the number of distinct canonical domains after which the
// input stops being consumed.
const DefaultLimit = 10000

// Options configure a Pipeline.
type Options struct {
	// Limit caps the number of canonical domains recorded. Zero selects DefaultLimit.
	Limit int
	// Recorder observes row outcomes. Nil disables observation.
	Recorder Recorder
}

// Pipeline turns a ranked domain list into the reserved domain list. It is
// immutable and can serve several runs; all per-run state lives in a run.
type Pipeline struct {
	filter     *Filter
	normalizer *Normalizer
	limit      int
	recorder   Recorder
}

// New builds a Pipeline from rule tables.
func New(r *rules.Rules, opts Options) *Pipeline {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	if opts.Recorder == nil {
		opts.Recorder = nopRecorder{}
	}

	return &Pipeline{
		filter:     NewFilter(r),
		normalizer: NewNormalizer(r.MultipartTLDs),
		limit:      opts.Limit,
		recorder:   opts.Recorder,
	}
}

// Classify runs every stateless rule against d: the exclusion tables, the
// TLD split and length bounds, then the brand words. It does not deduplicate.
func (p *Pipeline) Classify(d string) (domain.Canonical, domain.DropReason) {
	if reason := p.filter.Exclude(d); reason != "" {
		return domain.Canonical{}, reason
	}

	c, reason := p.normalizer.Split(d)
	if reason != "" {
		return domain.Canonical{}, reason
	}

	if p.filter.BrandExcluded(c.SLD) {
		return domain.Canonical{}, domain.DropBrandWord
	}

	return c, ""
}

// accepted is a row that passed every rule and was claimed by the run.
type accepted struct {
	candidate domain.Candidate
	canonical domain.Canonical
	rank      uint32
}

// run carries the state of a single pass over the input.
type run struct {
	p        *Pipeline
	seen     sldSet
	lastRank uint32
	unsorted bool
}

func (p *Pipeline) newRun() *run {
	return &run{p: p, seen: make(sldSet)}
}

// step processes one data line. It returns nil with no error when the row is
// dropped; an error is returned only when an accepted row has an unusable rank.
func (r *run) step(ctx context.Context, line string) (*accepted, error) {
	r.p.recorder.RowRead(ctx)

	c, ok := ParseRow(line)
	if !ok {
		r.drop(ctx, line, domain.DropMalformedRow)

		return nil, nil
	}

	canonical, reason := r.p.Classify(c.Domain)
	if reason == "" && !r.seen.claim(canonical.SLD) {
		reason = domain.DropDuplicateSLD
	}
	if reason != "" {
		r.drop(ctx, c.Domain, reason)

		return nil, nil
	}

	rank, err := strconv.ParseUint(c.Rank, 10, 32)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInvalidRank, err, "invalid rank %q for %s", c.Rank, c.Domain)
	}

	if uint32(rank) < r.lastRank && !r.unsorted {
		r.unsorted = true
		logger.Warn(ctx, "input is not sorted by rank, first-seen deduplication may keep the wrong domain",
			zap.String("domain", c.Domain), zap.Uint64("rank", rank), zap.Uint32("previousRank", r.lastRank))
	}
	r.lastRank = uint32(rank)
	r.p.recorder.DomainAccepted(ctx)

	return &accepted{candidate: c, canonical: canonical, rank: uint32(rank)}, nil
}

func (r *run) drop(ctx context.Context, subject string, reason domain.DropReason) {
	r.p.recorder.RowDropped(ctx, reason)
	if logger.IsDebug(ctx) {
		logger.Debug(ctx, "row dropped", zap.String("row", subject), zap.String("reason", string(reason)))
	}
}

// lines iterates over the data lines of src, skipping the header row, until
// fn asks to stop or the source is exhausted.
func lines(src storage.LineSource, fn func(line string) (bool, error)) error {
	header := true
	for src.Next() {
		if header {
			header = false

			continue
		}
		more, err := fn(src.Line())
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}

	if err := src.Err(); err != nil {
		return fmt.Errorf("could not read input: %w", err)
	}

	return nil
}

// Collect consumes src and records every accepted canonical domain with its
// rank. The first line is a header and is always skipped. Reading stops as
// soon as the limit of distinct canonical domains is reached.
//
// Input is expected in ascending rank order: the first occurrence of a
// second-level name wins.
func (p *Pipeline) Collect(ctx context.Context, src storage.LineSource) (*Aggregator, error) {
	r := p.newRun()
	agg := NewAggregator()

	err := lines(src, func(line string) (bool, error) {
		if agg.Len() >= p.limit {
			return false, nil
		}

		acc, err := r.step(ctx, line)
		if err != nil {
			return false, err
		}
		if acc != nil {
			agg.Add(acc.canonical.String(), acc.rank)
		}

		return true, nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "input consumed", zap.Int("domains", agg.Len()), zap.Int("limit", p.limit))

	return agg, nil
}

// Emit writes the header and the ordered rows of agg to sink. It does not
// close the sink.
func Emit(ctx context.Context, agg *Aggregator, sink storage.RowSink) (int, error) {
	if err := sink.WriteRow("Rank", "Domain"); err != nil {
		return 0, fmt.Errorf("could not write header: %w", err)
	}

	rows := agg.Rows()
	for _, row := range rows {
		if err := sink.WriteRow(row.Rank, row.Domain); err != nil {
			return 0, fmt.Errorf("could not write %s: %w", row.Domain, err)
		}
	}

	logger.Info(ctx, "rows written", zap.Int("rows", len(rows)))

	return len(rows), nil
}
