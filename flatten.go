package detab

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// Scalar is one leaf value of a flattened record. Null marks an explicit
// null in the source tree; it renders as the configured missing-value
// placeholder, never as the literal "null".
type Scalar struct {
	Text string
	Null bool
}

// Record maps a flattened column name to one leaf value. One input tree
// may flatten into many records.
type Record map[string]Scalar

// Flattener converts decoded trees into flat records. It accepts the
// value shapes produced by encoding/json (with UseNumber) and yaml.v3:
// maps, slices, strings, bools, numbers, and nil.
type Flattener struct {
	// Sep joins nested object keys into column names. Default ".".
	Sep string
}

// Records flattens one decoded tree into its complete record set.
// Elements of a top-level array are independent records; their rows are
// indistinguishable downstream from rows of separate inputs. A
// top-level null or empty array yields no records at all. Returns
// ErrMalformedTree for any node that is not an object, array, scalar,
// or null.
func (f Flattener) Records(root any) ([]Record, error) {
	if root == nil {
		return nil, nil
	}
	if arr, ok := root.([]any); ok && len(arr) == 0 {
		return nil, nil
	}
	return f.flatten("", root)
}

// flatten is the structural recursion. Arrays union their elements'
// records at the unchanged path: elements are alternative values for
// one column, not new columns. Objects cross-merge their children's
// record sets key by key, so a multi-valued child fans its siblings out
// into one row per combination. Nulls and empty arrays keep their
// column alive with an explicit-absent value instead of erasing every
// sibling row through the cross product.
func (f Flattener) flatten(path string, node any) ([]Record, error) {
	switch v := node.(type) {
	case nil:
		return []Record{{path: Scalar{Null: true}}}, nil
	case string:
		return leaf(path, v), nil
	case bool:
		return leaf(path, strconv.FormatBool(v)), nil
	case json.Number:
		// Source text, verbatim: no trailing-zero stripping, no
		// exponent normalization.
		return leaf(path, v.String()), nil
	case int:
		return leaf(path, strconv.Itoa(v)), nil
	case int64:
		return leaf(path, strconv.FormatInt(v, 10)), nil
	case uint64:
		return leaf(path, strconv.FormatUint(v, 10)), nil
	case float64:
		return leaf(path, strconv.FormatFloat(v, 'g', -1, 64)), nil
	case map[string]any:
		recs := []Record{{}}
		for _, key := range slices.Sorted(maps.Keys(v)) {
			child, err := f.flatten(f.join(path, key), v[key])
			if err != nil {
				return nil, err
			}
			recs = cross(recs, child)
		}
		return recs, nil
	case []any:
		if len(v) == 0 {
			return []Record{{path: Scalar{Null: true}}}, nil
		}
		recs := make([]Record, 0, len(v))
		for _, el := range v {
			more, err := f.flatten(path, el)
			if err != nil {
				return nil, err
			}
			recs = append(recs, more...)
		}
		return recs, nil
	default:
		return nil, fmt.Errorf("%w: %T at %q", ErrMalformedTree, node, path)
	}
}

func (f Flattener) join(path, key string) string {
	if path == "" {
		return key
	}
	sep := f.Sep
	if sep == "" {
		sep = "."
	}
	return path + sep + key
}

func leaf(path, text string) []Record {
	return []Record{{path: Scalar{Text: text}}}
}

// cross merges every pair of partial records from the two sets.
func cross(a, b []Record) []Record {
	out := make([]Record, 0, len(a)*len(b))
	for _, ra := range a {
		for _, rb := range b {
			m := make(Record, len(ra)+len(rb))
			maps.Copy(m, ra)
			maps.Copy(m, rb)
			out = append(out, m)
		}
	}
	return out
}
