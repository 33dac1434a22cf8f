package reserved

import (
	"reserved/internal/rules"
	"reserved/pkg/domain"
	"strings"
)

// Filter applies the table-driven exclusion rules. It is immutable once built
// and holds no per-run state.
type Filter struct {
	tldSuffixes    []string
	blocked        map[string]struct{}
	blockedParents []string
	brandWords     []string
	exceptions     map[string]struct{}
}

// NewFilter compiles the exclusion tables of r.
func NewFilter(r *rules.Rules) *Filter {
	f := &Filter{
		tldSuffixes:    r.BlockedTLDSuffixes,
		blocked:        make(map[string]struct{}, len(r.BlockedDomains)),
		blockedParents: make([]string, 0, len(r.BlockedDomains)),
		brandWords:     r.BrandWords,
		exceptions:     make(map[string]struct{}, len(r.BrandWordExceptions)),
	}
	for _, d := range r.BlockedDomains {
		f.blocked[d] = struct{}{}
		f.blockedParents = append(f.blockedParents, "."+d)
	}
	for _, e := range r.BrandWordExceptions {
		f.exceptions[e] = struct{}{}
	}

	return f
}

// Exclude runs the domain-level rules in order: blocked TLD suffix, exact
// blocked domain, subdomain of a blocked domain. It returns the reason of the
// first rule that matched, or the empty reason when the domain passes.
//
// The TLD suffix check compares raw strings. It is not aligned to label
// boundaries, and overlapping entries such as ".gov" and ".gov.uk" apply
// independently.
func (f *Filter) Exclude(d string) domain.DropReason {
	for _, suffix := range f.tldSuffixes {
		if strings.HasSuffix(d, suffix) {
			return domain.DropBlockedTLD
		}
	}

	if _, ok := f.blocked[d]; ok {
		return domain.DropBlockedDomain
	}

	for _, parent := range f.blockedParents {
		if strings.HasSuffix(d, parent) {
			return domain.DropBlockedParent
		}
	}

	return ""
}

// BrandExcluded reports whether sld embeds a brand word. A name equal to the
// word itself, or listed as an exception, is allowed.
func (f *Filter) BrandExcluded(sld string) bool {
	if _, ok := f.exceptions[sld]; ok {
		return false
	}
	for _, word := range f.brandWords {
		if sld != word && strings.Contains(sld, word) {
			return true
		}
	}

	return false
}
