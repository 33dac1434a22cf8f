package reserved

import (
	"context"
	"io"
	"reserved/pkg/logger"
	"reserved/pkg/serrors"
	"reserved/pkg/storage"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"
)

// Audit replays the pipeline over src and reports every accepted domain whose
// canonical form differs from its eTLD+1 according to the public suffix list.
// Each finding is written to w as one JSON object per line. The curated
// multipart table stays authoritative; the report only helps maintain it.
func (p *Pipeline) Audit(ctx context.Context, src storage.LineSource, w io.Writer) (int, error) {
	r := p.newRun()
	var (
		domains  int
		findings int
		e        jx.Encoder
	)

	err := lines(src, func(line string) (bool, error) {
		if domains >= p.limit {
			return false, nil
		}

		acc, err := r.step(ctx, line)
		if err != nil {
			return false, err
		}
		if acc == nil {
			return true, nil
		}
		domains++

		canonical := acc.canonical.String()
		etld1, pslErr := publicsuffix.EffectiveTLDPlusOne(acc.candidate.Domain)
		if pslErr == nil && etld1 == canonical {
			return true, nil
		}

		e.Reset()
		e.ObjStart()
		e.FieldStart("rank")
		e.Int(int(acc.rank))
		e.FieldStart("domain")
		e.Str(acc.candidate.Domain)
		e.FieldStart("canonical")
		e.Str(canonical)
		if pslErr != nil {
			e.FieldStart("error")
			e.Str(pslErr.Error())
		} else {
			e.FieldStart("etldPlusOne")
			e.Str(etld1)
		}
		e.ObjEnd()

		if _, err := w.Write(append(e.Bytes(), '\n')); err != nil {
			return false, serrors.Wrap(serrors.ErrIO, err, "could not write finding")
		}
		findings++

		return true, nil
	})
	if err != nil {
		return findings, err
	}

	logger.Info(ctx, "audit finished", zap.Int("domains", domains), zap.Int("findings", findings))

	return findings, nil
}
