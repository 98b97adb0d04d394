// Package core defines the data model for set-packing instances:
// subsets, ordered instances, binary selection vectors, and the
// shared result type used by every solver in this module.
//
// Overview:
//
//   - A Subset is an immutable set of element identifiers (uint32),
//     stored as a compressed Roaring bitmap.
//   - An Instance is an immutable, ordered collection of L subsets.
//     Order is positional identity: subset i is addressed by its index,
//     and duplicate subsets are legal and distinct.
//   - A Selection is a fixed-width binary vector; bit i set means
//     subset i is selected. Bitfield decodes an unsigned integer into
//     its MSB-first digit vector, the canonical way to enumerate all
//     2^L candidate selections.
//   - A Coverage accumulates the elements of chosen subsets during a
//     packing scan; it is the one mutable helper in this package.
//   - PackingResult pairs a Selection with its selected-subset count.
//
// Input:
//
//   - ReadInstance decodes a JSON array of arrays of integers, e.g.
//     [[4,5],[4],[5]], preserving outer order as subset order.
//     Gzip-compressed streams are detected and decompressed
//     transparently. LoadInstance does the same from a file path.
//   - Malformed payloads fail with an error wrapping ErrBadInput and
//     never yield a partial Instance.
//
// Immutability:
//
//   - Subset, Instance, and Selection never change after construction.
//     Constructors copy caller slices; accessors return fresh slices.
//     Values can therefore be shared freely across goroutines.
//
// Errors: sentinel errors declared in types.go; match with errors.Is.
//
// See also:
//
//   - brute: exhaustive disjointness checking and the 2^L oracle sweep.
//   - greedy, anneal: heuristic packers producing PackingResult values.
//   - solver: uniform solver dispatch and answer verification.
package core
