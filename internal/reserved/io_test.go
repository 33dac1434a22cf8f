package reserved_test

import (
	"context"
	"errors"
	"reserved/internal/reserved"
	"reserved/pkg/serrors"
	mockstorage "reserved/pkg/storage/mock"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCollectReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mockstorage.NewMockLineSource(ctrl)

	readErr := serrors.Wrap(serrors.ErrIO, errors.New("connection reset"), "could not read input line")
	gomock.InOrder(
		// the header line is skipped without being read
		src.EXPECT().Next().Return(true),
		src.EXPECT().Next().Return(true),
		src.EXPECT().Line().Return(`"1","alpha.com","1"`),
		src.EXPECT().Next().Return(false),
		src.EXPECT().Err().Return(readErr),
	)

	p := reserved.New(testRules(), reserved.Options{})
	_, err := p.Collect(context.Background(), src)
	require.ErrorIs(t, err, serrors.ErrIO)
}

func TestEmitWriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mockstorage.NewMockRowSink(ctrl)

	writeErr := serrors.Wrap(serrors.ErrIO, errors.New("disk full"), "could not write row")
	gomock.InOrder(
		sink.EXPECT().WriteRow("Rank", "Domain").Return(nil),
		sink.EXPECT().WriteRow("1", "alpha.com").Return(nil),
		sink.EXPECT().WriteRow("2", "beta.com").Return(writeErr),
	)

	agg := reserved.NewAggregator()
	agg.Add("alpha.com", 1)
	agg.Add("beta.com", 2)
	agg.Add("gamma.com", 3)

	_, err := reserved.Emit(context.Background(), agg, sink)
	require.ErrorIs(t, err, serrors.ErrIO)
	require.Contains(t, err.Error(), "beta.com")
}
