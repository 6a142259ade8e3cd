// Package domain contains the core entities and value objects for recipebox.
//
// This package is the innermost layer. It has no dependencies on storage,
// logging, or the CLI and contains only the recipe model and the rules that
// apply to it.
//
// # Entities
//
//   - [Recipe]: A single recipe with a stable identifier
//   - [Fields]: The mutable part of a recipe, used by create and update
//   - [Collection]: The ordered set of recipes persisted as one unit
//   - [Form]: Raw multi-line input as entered at the UI boundary
//
// Collections are treated as values: helpers such as [Collection.Replace]
// and [Collection.Remove] return a new slice and leave the receiver intact.
package domain
