// Package store holds the in-memory model of a parsed configuration: an
// ordered list of sections, each with an ordered list of entries, plus the
// recency cache consulted before a section scan.
//
// # Identity
//
// Sections and entries are addressed by a 32-bit hash of their name. Two
// identity modes exist:
//
//   - IdentityName: the hash is a pre-filter and a match also requires equal
//     strings, so colliding names stay distinct.
//   - IdentityHash: the hash alone decides. Two names that collide address the
//     same section or entry.
//
// The root section holds entries declared before any header. It always exists,
// sits at index 0, has an empty name, and carries the reserved RootHash under
// every hash algorithm.
//
// # Entry Handles
//
// Entries are individually addressable records that never move once created.
// A handle obtained from Lookup, Set, or the cache stays valid until the entry
// is deleted, its section is deleted, or the store is cleared or reloaded.
// Deleting an entry detaches it: Section returns nil and mutating calls on it
// fail with ErrStaleEntry.
//
// # Concurrency
//
// A Store is not safe for concurrent use.
package store
