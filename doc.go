// Package recordcache implements a size-bounded, concurrent, in-memory cache
// that accelerates sequential reads across the change-data streams of a
// sharded, multi-tenant data store.
//
// Consumers iterate a shard by repeatedly asking "starting at sequence number
// s in shard S, give me up to N records" (GetRecords). The cache sits in
// front of an expensive upstream and satisfies such requests by stitching
// together cached segments handed to it via PutRecords, which the caller is
// responsible for fetching — this package neither fetches from nor knows
// about any upstream.
//
// The cache does not guarantee completeness (a gap between two cached
// segments means "unknown — ask the upstream"), does not deduplicate across
// shards, does not persist anything, and evicts in strict FIFO order by
// segment insertion, not by access recency.
package recordcache
