package reserved

import (
	"reserved/pkg/domain"
	"strings"
)

// rowFields is the arity of a well-formed input row: rank, domain and the
// open page rank score, which is not used.
const rowFields = 3

// ParseRow splits a raw input line on commas and strips surrounding double
// quotes from every field. It reports false when the line does not have
// exactly three fields; such rows are skipped, never fatal.
func ParseRow(line string) (domain.Candidate, bool) {
	fields := strings.Split(line, ",")
	if len(fields) != rowFields {
		return domain.Candidate{}, false
	}

	return domain.Candidate{
		Rank:   strings.Trim(fields[0], `"`),
		Domain: strings.Trim(fields[1], `"`),
	}, true
}
