// Package cache implements the read-through query cache that sits in front of
// the relational store.
//
// A cached entry is addressed by a [Query] (a query name plus its ordered
// arguments) and indexed by every identifier it references: its own
// arguments and any extra tags passed to [FetchTagged]. A write that touches
// an identifier calls [Cache.Invalidate] with it, which drops every entry
// indexed by that identifier.
//
// The cache is advisory. Backend failures are logged and treated as a miss
// (reads) or a no-op (writes and invalidation); they never reach callers.
//
// There is no per-key locking. A read that computes a value concurrently
// with an invalidating write can repopulate the entry with the pre-write
// result; it lives until its TTL expires or the next write to one of its
// identifiers.
package cache
