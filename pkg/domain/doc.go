// Package domain contains the entities that flow through the reserved domain
// pipeline: candidates read from the ranked input, their canonical sld.tld
// form, the per-domain rank records and the rows emitted to the output file.
// The types are free of I/O concerns so they can be shared across packages.
package domain
