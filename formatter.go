package bitsearch

import "strings"

// FormatResult formats a result as a single pipe-delimited line:
//
//	link|name|size|seeds|leech|engine_url|desc_link|pub_date
//
// No trailing newline is added. Pipe characters inside fields are not
// escaped; names containing "|" will produce extra columns.
func FormatResult(r *Result) string {
	return strings.Join(r.Fields(), "|")
}
