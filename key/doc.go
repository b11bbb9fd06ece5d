// Package key defines the small-unsigned-integer key bound shared by
// sparset and sparmap.
//
// What:
//
//   - Unsigned constrains a key type to the unsigned integer types.
//   - MaxK reports a key type's maximum representable value.
//   - AsIndex converts a key to a machine-word slice index.
//
// Why:
//
//   - sparset/sparmap are generic over "small unsigned integer" rather
//     than any single width; every capacity and bounds check in those
//     packages is expressed in terms of this bound.
package key
