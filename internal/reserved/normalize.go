package reserved

import (
	"reserved/pkg/domain"
	"strings"
)

const (
	// MinSLDLength excludes one and two character names, which are mostly
	// short redirects such as "t.co", so the list can hold more distinctive ones.
	MinSLDLength = 3
	// MaxSLDLength excludes names too long to be useful as placeholders.
	MaxSLDLength = 16
)

// Normalizer collapses a domain to its canonical sld.tld form using a
// curated table of multipart top-level domains.
type Normalizer struct {
	multipart []string
}

// NewNormalizer returns a Normalizer consulting multipart in order.
func NewNormalizer(multipart []string) *Normalizer {
	return &Normalizer{multipart: multipart}
}

// tldLabels returns how many trailing labels of d form its top-level domain:
// the label count of the first multipart entry d ends with, otherwise one.
func (n *Normalizer) tldLabels(d string) int {
	for _, tld := range n.multipart {
		if strings.HasSuffix(d, tld) {
			return strings.Count(tld, ".") + 1
		}
	}

	return 1
}

// Split returns the canonical form of d. It drops domains that have no label
// before their top-level domain and second-level names whose length falls
// outside [MinSLDLength, MaxSLDLength].
func (n *Normalizer) Split(d string) (domain.Canonical, domain.DropReason) {
	labels := strings.Split(d, ".")
	tldLen := n.tldLabels(d)
	if tldLen >= len(labels) {
		return domain.Canonical{}, domain.DropNoSLD
	}

	sld := labels[len(labels)-tldLen-1]
	if len(sld) < MinSLDLength || len(sld) > MaxSLDLength {
		return domain.Canonical{}, domain.DropSLDLength
	}

	return domain.Canonical{
		SLD: sld,
		TLD: strings.Join(labels[len(labels)-tldLen:], "."),
	}, ""
}

// sldSet remembers accepted second-level names regardless of their TLD.
type sldSet map[string]struct{}

// claim records sld and reports whether it was not seen before.
func (s sldSet) claim(sld string) bool {
	if _, ok := s[sld]; ok {
		return false
	}
	s[sld] = struct{}{}

	return true
}
