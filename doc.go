// Package detab converts human-oriented semi-structured text into
// machine-friendly delimited tables.
//
// Two converters share the package. [Unjustify] recovers columns from
// plain-text tables whose fields are aligned with whitespace padding or
// drawn borders, and [Unnest] flattens a decoded JSON or YAML tree into
// rows under a single unioned header. Both emit field values joined by a
// configurable separator, one line per row.
//
// # Unjustify
//
// Column boundaries are inferred once from the whole input: a character
// position separates columns only if every line agrees it does. The
// resulting spans are applied uniformly, so ragged or short lines produce
// empty fields rather than errors:
//
//	lines := []string{"NAME   AGE", "ada    36", "grace  41"}
//	detab.Unjustify(os.Stdout, lines, detab.TableOptions{Header: true})
//
// A [Policy] controls what counts as a boundary: any whitespace run,
// runs of two or more, or none at all; extra delimiter characters; and
// optionally the box-drawing glyphs used by bordered tables.
//
// # Unnest
//
// Nested object keys join into dotted column names. Array elements are
// alternative values for the same column, so an array fans out into one
// row per element with sibling fields repeated, while sibling arrays
// combine as a cross product. The header is the sorted union of every
// column seen across all records, independent of input order:
//
//	var root any
//	json.NewDecoder(r).Decode(&root)
//	detab.Unnest(os.Stdout, root, detab.NestOptions{Sep: "."})
//
// Requested output columns that match nothing fail up front with
// [ErrUnknownColumn]; no partial table is written.
package detab
