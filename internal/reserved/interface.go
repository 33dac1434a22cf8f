package reserved

import (
	"context"
	"reserved/pkg/domain"
)

// Recorder observes the outcome of every input row. Implementations must not
// influence the pipeline; they exist for diagnostics only.
//
//go:generate mockgen -package mockreserved -source=interface.go -destination=mock/mockreserved.go *
type Recorder interface {
	// RowRead is called once for every data row, header excluded.
	RowRead(ctx context.Context)
	// RowDropped is called when a row is discarded, with the first rule it failed.
	RowDropped(ctx context.Context, reason domain.DropReason)
	// DomainAccepted is called when a canonical domain is recorded.
	DomainAccepted(ctx context.Context)
}

type nopRecorder struct{}

func (nopRecorder) RowRead(context.Context)                       {}
func (nopRecorder) RowDropped(context.Context, domain.DropReason) {}
func (nopRecorder) DomainAccepted(context.Context)                {}
