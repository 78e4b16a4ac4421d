// Package alloc manages the shared backing allocations that shards carve
// their element ranges out of.
//
// A Block is created once per wrapped slice and co-owned by every shard
// split off from it. The reference count guards exactly one release of the
// buffer; element lifetimes are the owners' concern, a Block only tracks
// raw storage.
//
// # Concurrency Model
//
// Retain/Release/Refs/TryUnwrap are safe to call from multiple goroutines
// (shards may be moved across goroutines and released independently).
// Access to the buffer contents is NOT synchronized here: callers rely on
// the disjointness of shard ranges for race freedom.
package alloc
