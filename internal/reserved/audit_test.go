package reserved_test

import (
	"bytes"
	"context"
	"reserved/internal/reserved"
	"reserved/pkg/serrors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAudit(t *testing.T) {
	p := reserved.New(defaultRules(t), reserved.Options{})

	var buf bytes.Buffer
	findings, err := p.Audit(context.Background(), source(
		header,
		`"1","www.sample.com","1"`,
		`"2","shop.example.co.uk","1"`,
		`"3","foo.deco.uk","1"`,
		`"4","bit.ly","1"`,
	), &buf)
	require.NoError(t, err)
	require.Equal(t, 1, findings)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	require.JSONEq(t, `{"rank":3,"domain":"foo.deco.uk","canonical":"foo.deco.uk","etldPlusOne":"deco.uk"}`, lines[0])
}

func TestAuditInvalidRank(t *testing.T) {
	p := reserved.New(defaultRules(t), reserved.Options{})

	var buf bytes.Buffer
	_, err := p.Audit(context.Background(), source(header, `"x","www.sample.com","1"`), &buf)
	require.ErrorIs(t, err, serrors.ErrInvalidRank)
	require.Zero(t, buf.Len())
}
