package pattern

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/bitsearch"
)

var sizeValueRe = regexp.MustCompile(`([\d.]+)\s*([KMGT]?B)\b`)

var sizeUnits = map[string]float64{
	"B":  1,
	"KB": 1 << 10,
	"MB": 1 << 20,
	"GB": 1 << 30,
	"TB": 1 << 40,
}

// ParseSize converts a human readable size like "4.59 GB" or "1,024 kb"
// into bytes using powers of 1024. Fractional bytes are truncated.
func ParseSize(s string) Value {
	s = strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), ",", "")
	if s == "" {
		return Unknown(bitsearch.Errorf(bitsearch.ENOTFOUND, "empty size"))
	}

	m := sizeValueRe.FindStringSubmatch(s)
	if m == nil {
		return Unknown(bitsearch.Errorf(bitsearch.ENOTFOUND, "no size in %q", s))
	}

	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Unknown(bitsearch.Errorf(bitsearch.EINVALID, "invalid size number %q", m[1]))
	}

	bytes := f * sizeUnits[m[2]]
	if bytes >= math.MaxInt64 {
		return Unknown(bitsearch.Errorf(bitsearch.EINVALID, "size %q out of range", s))
	}

	return Known(int64(bytes))
}

// DateLayouts are tried in order by ParseDate. Month-first comes before
// day-first, so an ambiguous "3/4/2020" always means March 4.
var DateLayouts = []string{
	"1/2/2006",
	"2006-1-2",
	"2/1/2006",
	"2006-1-2 15:04:05",
	"1/2/2006 15:04:05",
}

// ParseDate converts a date like "4/18/2019" into a unix timestamp,
// interpreting it in the local time zone.
func ParseDate(s string) Value {
	return ParseDateIn(s, time.Local)
}

// ParseDateIn is like ParseDate but interprets the date in loc.
func ParseDateIn(s string, loc *time.Location) Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unknown(bitsearch.Errorf(bitsearch.ENOTFOUND, "empty date"))
	}

	for _, layout := range DateLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return Known(t.Unix())
		}
	}

	return Unknown(bitsearch.Errorf(bitsearch.EINVALID, "unrecognized date %q", s))
}
