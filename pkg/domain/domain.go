package domain

// Candidate is a domain read from one input row together with the raw rank
// field it was listed at. The rank is validated only once the domain has
// survived every exclusion rule.
type Candidate struct {
	// Rank is the unparsed rank column of the input row.
	Rank string
	// Domain is the unparsed domain column of the input row.
	Domain string
}

// Canonical is the registrable form of a domain: the label immediately before
// the top-level domain plus the top-level domain itself.
type Canonical struct {
	// SLD is the second-level name, e.g. "example" in "www.example.co.uk".
	SLD string
	// TLD is the top-level domain, possibly multipart, e.g. "co.uk".
	TLD string
}

// String returns the canonical "sld.tld" form.
func (c Canonical) String() string {
	return c.SLD + "." + c.TLD
}

// Record tracks every rank a canonical domain was observed at, in the order
// they were seen. Only the first rank is used for ordering.
type Record struct {
	// Domain is the canonical "sld.tld" identity of the record.
	Domain string
	// Ranks holds the observed ranks in first-seen order; never empty.
	Ranks []uint32
}

// Best returns the first observed rank. Input is consumed in ascending rank
// order, so it is also the lowest.
func (r Record) Best() uint32 {
	return r.Ranks[0]
}

// Row is a single line of the output file. Rank is empty when the row shares
// its rank with the row emitted immediately before it.
type Row struct {
	Rank   string
	Domain string
}

// DropReason explains why an input row did not make it into the output.
// The empty reason means the row was accepted.
type DropReason string

const (
	// DropMalformedRow marks a line that does not split into exactly three fields.
	DropMalformedRow DropReason = "malformed_row"
	// DropBlockedTLD marks a domain ending with a blocked top-level suffix.
	DropBlockedTLD DropReason = "blocked_tld"
	// DropBlockedDomain marks a domain listed in the blocked domains table.
	DropBlockedDomain DropReason = "blocked_domain"
	// DropBlockedParent marks a subdomain of a blocked domain.
	DropBlockedParent DropReason = "blocked_parent"
	// DropNoSLD marks a domain with no label left before its top-level domain.
	DropNoSLD DropReason = "no_sld"
	// DropSLDLength marks a second-level name outside the accepted length bounds.
	DropSLDLength DropReason = "sld_length"
	// DropBrandWord marks a second-level name that embeds a brand word.
	DropBrandWord DropReason = "brand_word"
	// DropDuplicateSLD marks a second-level name already accepted under any TLD.
	DropDuplicateSLD DropReason = "duplicate_sld"
)

// DropReasons lists every reason in pipeline order.
var DropReasons = []DropReason{ //nolint: gochecknoglobals
	DropMalformedRow,
	DropBlockedTLD,
	DropBlockedDomain,
	DropBlockedParent,
	DropNoSLD,
	DropSLDLength,
	DropBrandWord,
	DropDuplicateSLD,
}
