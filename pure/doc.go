// Package pure memoizes fallible pure functions by their argument values.
//
// The Tableize family wraps a function so that repeated calls with equal
// arguments return the stored result instead of calling it again. Only successes
// are stored: a call that fails returns its error and the next call with the same
// arguments runs the function again, the same retry-until-success rule lazy.Memo
// follows for zero-argument computations.
//
// Features:
//   - TableizeI1O1 to TableizeI2O2: typed, generic memoizers for common arities.
//   - Trie-based bounded table with dual-map rotation.
//   - Large tables are split into shards picked by xxhash of the key path.
//
// Arguments must be comparable or implement fmt.Stringer; anything else panics.
//
// WARNING: Do not use Tableize on impure functions (e.g., those depending on time, I/O, etc).
package pure
