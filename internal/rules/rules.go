// Package rules holds the exclusion rule tables of the reserved domain list as
// data. The canonical tables are embedded from default.yml; a replacement set
// can be loaded from a YAML file with the same shape.
package rules

import (
	"bytes"
	_ "embed"
	"io"
	"os"
	"reserved/pkg/serrors"
	"strings"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultRules []byte

// Rules groups every table consulted by the exclusion filter and normalizer.
type Rules struct {
	// BlockedTLDSuffixes drops any domain ending with one of the entries. The
	// match is a raw string suffix, not aligned to label boundaries.
	BlockedTLDSuffixes []string `yaml:"blockedTLDSuffixes"`
	// MultipartTLDs lists top-level domains made of several labels. The first
	// entry the domain ends with decides how many labels form the TLD.
	MultipartTLDs []string `yaml:"multipartTLDs"`
	// BrandWords drops second-level names containing one of the words, unless
	// the name is the word itself.
	BrandWords []string `yaml:"brandWords"`
	// BrandWordExceptions are second-level names kept despite containing a brand word.
	BrandWordExceptions []string `yaml:"brandWordExceptions"`
	// BlockedDomains drops these exact domains and all of their subdomains.
	BlockedDomains []string `yaml:"blockedDomains"`
}

// Default returns the embedded rule tables.
func Default() (*Rules, error) {
	return Decode(bytes.NewReader(defaultRules))
}

// Load reads rule tables from a YAML file. An empty path selects the
// embedded defaults.
func Load(path string) (*Rules, error) {
	if path == "" {
		return Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInvalidConfig, err, "could not open rules file")
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode parses and validates rule tables. Unknown keys are rejected so a
// misspelled table never silently disables a rule.
func Decode(r io.Reader) (*Rules, error) {
	var rules Rules

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rules); err != nil {
		return nil, serrors.Wrap(serrors.ErrInvalidConfig, errors.Wrap(err, "decode"), "could not read rules")
	}
	if err := rules.Validate(); err != nil {
		return nil, serrors.Wrap(serrors.ErrInvalidConfig, err, "invalid rules")
	}

	return &rules, nil
}

// Validate checks the tables for entries that would match everything or
// could never match.
func (r *Rules) Validate() error {
	tables := []struct {
		name    string
		entries []string
	}{
		{"blockedTLDSuffixes", r.BlockedTLDSuffixes},
		{"multipartTLDs", r.MultipartTLDs},
		{"brandWords", r.BrandWords},
		{"brandWordExceptions", r.BrandWordExceptions},
		{"blockedDomains", r.BlockedDomains},
	}
	for _, table := range tables {
		for i, entry := range table.entries {
			if strings.TrimSpace(entry) == "" {
				return errors.Errorf("%s[%d] is empty", table.name, i)
			}
		}
	}

	for i, tld := range r.MultipartTLDs {
		if !strings.Contains(strings.Trim(tld, "."), ".") {
			return errors.Errorf("multipartTLDs[%d] %q has a single label", i, tld)
		}
	}

	return nil
}

// Encode writes the tables as YAML.
func (r *Rules) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(err, "encode rules")
	}

	return errors.Wrap(enc.Close(), "close encoder")
}
