// Package regen replays single-pass sources.
//
// A Source can be pulled only once. Regen wraps it in a Replay, which keeps every
// pulled element in a growing cache and a cursor into the unread tail. The Replay
// can then be traversed any number of times, indexed, measured and materialized,
// while each source element is still pulled at most once.
//
// Regen accepts any iterable. Sequences that are already concrete, such as Slice,
// pass through it unchanged.
//
// Replays pull lazily: indexing element i pulls only up to i, and a traversal that
// stops early leaves the rest of the source untouched for later access.
//
// A Replay is not safe for concurrent use unless built with WithLock.
//
// Example:
//
//	rows := regen.FromSeq(queryRows(db))
//	first, err := rows.At(0)        // pulls one row
//	for row, err := range rows.All() { ... } // replays row 0, then pulls the rest
//	all, err := rows.Materialize()  // no further pulls
package regen
