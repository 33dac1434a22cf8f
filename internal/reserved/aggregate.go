package reserved

import (
	"cmp"
	"reserved/pkg/domain"
	"slices"
	"strconv"
)

// Aggregator collects the ranks each canonical domain was seen at and
// produces the final ordered output rows. It is owned by a single run.
type Aggregator struct {
	index   map[string]int
	records []domain.Record
}

// NewAggregator returns an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{index: make(map[string]int)}
}

// Add appends rank to the record of canonical, creating it on first sight.
func (a *Aggregator) Add(canonical string, rank uint32) {
	if i, ok := a.index[canonical]; ok {
		a.records[i].Ranks = append(a.records[i].Ranks, rank)

		return
	}
	a.index[canonical] = len(a.records)
	a.records = append(a.records, domain.Record{Domain: canonical, Ranks: []uint32{rank}})
}

// Len returns the number of distinct canonical domains recorded.
func (a *Aggregator) Len() int {
	return len(a.records)
}

// Records returns the records sorted by their best rank, ascending. Records
// sharing a rank keep the order they were first seen in.
func (a *Aggregator) Records() []domain.Record {
	sorted := slices.Clone(a.records)
	slices.SortStableFunc(sorted, func(x, y domain.Record) int {
		return cmp.Compare(x.Best(), y.Best())
	})

	return sorted
}

// Rows returns the output rows in rank order. A row whose rank equals the
// rank of the row before it gets an empty rank column. The running rank
// starts at zero, so a leading rank 0 is printed empty as well.
func (a *Aggregator) Rows() []domain.Row {
	records := a.Records()
	rows := make([]domain.Row, 0, len(records))
	emitted := make(map[string]struct{}, len(records))

	var current uint32
	for _, r := range records {
		if _, ok := emitted[r.Domain]; ok {
			continue
		}
		emitted[r.Domain] = struct{}{}

		row := domain.Row{Domain: r.Domain}
		if best := r.Best(); best != current {
			current = best
			row.Rank = strconv.FormatUint(uint64(best), 10)
		}
		rows = append(rows, row)
	}

	return rows
}
