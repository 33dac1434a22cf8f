package rules_test

import (
	"bytes"
	"os"
	"path/filepath"
	"reserved/internal/rules"
	"reserved/pkg/serrors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	r, err := rules.Default()
	require.NoError(t, err)

	require.Len(t, r.BlockedTLDSuffixes, 29)
	require.Len(t, r.MultipartTLDs, 23)
	require.Len(t, r.BrandWords, 21)
	require.Len(t, r.BrandWordExceptions, 4)
	require.Len(t, r.BlockedDomains, 100)

	require.Equal(t, ".bc.ca", r.BlockedTLDSuffixes[0])
	require.Equal(t, "ac.be", r.MultipartTLDs[0])
	require.Contains(t, r.MultipartTLDs, "co.uk")
	require.Contains(t, r.BrandWords, "google")
	require.Contains(t, r.BrandWordExceptions, "kiwix")
	require.Contains(t, r.BlockedDomains, "bit.ly")
	require.Equal(t, "yt.be", r.BlockedDomains[len(r.BlockedDomains)-1])
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	want, err := rules.Default()
	require.NoError(t, err)

	got, err := rules.Load("")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
blockedTLDSuffixes: [".gov"]
multipartTLDs: ["co.uk"]
brandWords: ["blockedword"]
brandWordExceptions: []
blockedDomains: ["bit.ly"]
`), 0o600))

	r, err := rules.Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"blockedword"}, r.BrandWords)
	require.Empty(t, r.BrandWordExceptions)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := rules.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.ErrorIs(t, err, serrors.ErrInvalidConfig)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeRejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "unknown key", yaml: "brandWordz: [google]\n"},
		{name: "empty entry", yaml: "brandWords: [google, \"\"]\n"},
		{name: "single label multipart", yaml: "multipartTLDs: [uk]\n"},
		{name: "not yaml", yaml: "brandWords: [google\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rules.Decode(strings.NewReader(tt.yaml))
			require.ErrorIs(t, err, serrors.ErrInvalidConfig)
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	r, err := rules.Default()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Encode(&buf))

	decoded, err := rules.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, r, decoded)
}
