// Package wit defines the structural type tree describing component
// function signatures.
//
// This package contains type definitions and their wire codec only. All
// other internal packages import wit; wit imports nothing internal. This
// ensures the type model remains the foundational layer with no circular
// dependencies.
//
// Key design constraints:
//   - Typ is a sealed interface - exhaustive type switches everywhere
//   - Trees are finite and acyclic (guaranteed by the metadata producer)
//   - Field and case names are unique within their containing composite
//   - Unknown wire tags decode to Unrecognized, never to an error, so that
//     display stays possible for partially-loaded metadata
package wit
