// Package leconv provides little-endian conversions between byte slices and
// fixed-width unsigned integers, plus fixed-size array views of slice
// prefixes.
//
// All functions read or write the prefix of the given slice and require it
// to be at least as long as the width being converted; shorter slices panic
// via the runtime bounds check. Callers are expected to check remaining
// length first, so a panic here indicates a bookkeeping bug in the caller,
// not a runtime condition to handle.
//
// 128-bit values have no native Go type and are passed as (lo, hi) halves.
package leconv
