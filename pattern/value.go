package pattern

import (
	"strconv"

	"github.com/fwojciec/bitsearch"
)

// Value is the outcome of normalizing a field: either a known integer or
// the reason it could not be determined. Reasons carry ENOTFOUND when the
// input held nothing to parse and EINVALID when it held something that
// failed to convert. String collapses both to bitsearch.Sentinel.
type Value struct {
	n   int64
	err error
}

// Known returns a Value holding n.
func Known(n int64) Value {
	return Value{n: n}
}

// Unknown returns a Value that failed for the given reason.
func Unknown(err error) Value {
	return Value{err: err}
}

// Int64 returns the value, or the reason it is unknown.
func (v Value) Int64() (int64, error) {
	return v.n, v.err
}

// OK reports whether the value is known.
func (v Value) OK() bool {
	return v.err == nil
}

// Err returns the reason the value is unknown, or nil.
func (v Value) Err() error {
	return v.err
}

// String returns the decimal value, or bitsearch.Sentinel when unknown.
func (v Value) String() string {
	if v.err != nil {
		return bitsearch.Sentinel
	}
	return strconv.FormatInt(v.n, 10)
}
