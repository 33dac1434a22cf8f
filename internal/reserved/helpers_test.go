package reserved_test

import (
	"bytes"
	"io"
	"reserved/internal/rules"
	"reserved/pkg/logger"
	"reserved/pkg/storage/file"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type bufferCloser struct {
	bytes.Buffer
}

func (*bufferCloser) Close() error { return nil }

func source(lines ...string) *file.Source {
	return file.NewSource(io.NopCloser(strings.NewReader(strings.Join(lines, "\n"))))
}

func defaultRules(t *testing.T) *rules.Rules {
	t.Helper()

	r, err := rules.Default()
	require.NoError(t, err)

	return r
}

func testRules() *rules.Rules {
	return &rules.Rules{
		BlockedTLDSuffixes:  []string{".gov", ".gov.uk", ".cf"},
		MultipartTLDs:       []string{"co.uk", "com.au"},
		BrandWords:          []string{"blockedword", "wix"},
		BrandWordExceptions: []string{"kiwix"},
		BlockedDomains:      []string{"bit.ly", "telegra.ph"},
	}
}

const header = `"Rank","Domain","Open Page Rank"`
