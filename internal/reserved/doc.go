// Package reserved builds the list of domains suitable for use as reserved
// placeholders. A ranked domain list is parsed row by row, filtered through
// table-driven exclusion rules, collapsed to sld.tld, deduplicated by
// second-level name and written back in rank order.
package reserved
