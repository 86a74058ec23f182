package polytope

import (
	"fmt"
	"reflect"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lattix/expr"
)

// Classify maps a loosely-typed specification value onto the
// Specification union. Representation is inferred from shape rather
// than declared because the convenience API accepts several shorthand
// forms; the decision order below is fixed and callers rely on it
// (first match wins):
//
//  1. A plain string is raw code.
//  2. A two-element matrix/vector pair (A, b) is encoded as [b | -A]
//     immediately and treated as raw code from then on.
//  3. If the vertex-representation option was explicitly requested, the
//     value is a vertex list.
//  4. Any other generic sequence that is neither a string list nor a
//     parsed-expression list is classified as a vertex list anyway and
//     a warning is logged; the second return value reports that the
//     vrep option must be enabled by the caller. This fallback is a
//     heuristic default, not a verified inference; the warning exists
//     so a misclassification is never silent.
//  5. A string sequence of length > 1 is a symbolic constraint set.
//  6. A sequence of parsed linear expressions feeds the matrix builder
//     directly.
//
// A value matching no step is a usage error (ErrUnclassifiable).
// Specification values pass through unchanged.
func Classify(v any, vrepRequested bool, log logr.Logger) (Specification, bool, error) {
	// Already-constructed specifications need no inference.
	if spec, ok := v.(Specification); ok {
		return spec, false, nil
	}

	// Step 1: single text value.
	if code, ok := v.(string); ok {
		return RawCode(code), false, nil
	}

	// Step 2: (A, b) halfspace pair.
	if a, b, ok := asHalfspacePair(v); ok {
		spec, err := Halfspaces(a, b)
		if err != nil {
			return Specification{}, false, err
		}
		return spec, false, nil
	}

	// Step 3: vertex representation explicitly requested.
	if vrepRequested {
		pts, ok := asPoints(v)
		if !ok {
			return Specification{}, false, fmt.Errorf("Classify: vrep requested but value is not a vertex list: %w", ErrUnclassifiable)
		}
		return Vertices(pts), false, nil
	}

	strs, isStrings := asStringSlice(v)
	polys, isPolys := asPolySlice(v)

	// Step 4: generic sequence fallback → vertex list, with a warning.
	if isSequence(v) && !isStrings && !isPolys {
		log.Info("interpreting generic sequence as a vertex list; enabling vrep",
			"hint", "pass an explicit Specification to silence this warning")
		pts, ok := asPoints(v)
		if !ok {
			return Specification{}, false, fmt.Errorf("Classify: sequence is not a coordinate list: %w", ErrUnclassifiable)
		}
		return Vertices(pts), true, nil
	}

	// Step 5: text sequence of length > 1 → symbolic constraints.
	if isStrings && len(strs) > 1 {
		return Constraints(strs...), false, nil
	}

	// Step 6: already-parsed linear expressions.
	if isPolys {
		return LinearSystem(polys...), false, nil
	}

	return Specification{}, false, fmt.Errorf("Classify: %T: %w", v, ErrUnclassifiable)
}

// isSequence reports whether v is a slice or array of any element type.
func isSequence(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// asStringSlice extracts a []string, accepting []any of strings too.
func asStringSlice(v any) ([]string, bool) {
	switch s := v.(type) {
	case []string:
		return s, true
	case []any:
		out := make([]string, 0, len(s))
		for _, e := range s {
			str, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, str)
		}
		return out, len(out) > 0
	}
	return nil, false
}

// asPolySlice extracts a []*expr.Poly, accepting []any of *expr.Poly.
func asPolySlice(v any) ([]*expr.Poly, bool) {
	switch s := v.(type) {
	case []*expr.Poly:
		return s, true
	case []any:
		out := make([]*expr.Poly, 0, len(s))
		for _, e := range s {
			p, ok := e.(*expr.Poly)
			if !ok {
				return nil, false
			}
			out = append(out, p)
		}
		return out, len(out) > 0
	}
	return nil, false
}

// asPoints extracts an integer coordinate list from any slice-of-slices
// shape ([][]int64, [][]int, []any of either, array elements included).
// Ragged dimensions are accepted here; VertexMatrix validates them so
// the error can name the offending vertex.
func asPoints(v any) ([][]int64, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || rv.Len() == 0 {
		return nil, false
	}
	out := make([][]int64, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		row, ok := asCoords(rv.Index(i))
		if !ok {
			return nil, false
		}
		out[i] = row
	}
	return out, true
}

// asCoords extracts one integer coordinate tuple.
func asCoords(rv reflect.Value) ([]int64, bool) {
	for rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	out := make([]int64, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		e := rv.Index(i)
		for e.Kind() == reflect.Interface {
			e = e.Elem()
		}
		switch e.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			out[i] = e.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			out[i] = int64(e.Uint())
		default:
			return nil, false
		}
	}
	return out, true
}

// asHalfspacePair recognizes a two-element (A, b) structure: the first
// element a numeric matrix, the second a numeric vector of matching
// meaning. Shape agreement is validated by Halfspaces afterwards.
func asHalfspacePair(v any) ([][]int64, []int64, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || rv.Len() != 2 {
		return nil, nil, false
	}

	first := rv.Index(0)
	second := rv.Index(1)
	for first.Kind() == reflect.Interface {
		first = first.Elem()
	}
	for second.Kind() == reflect.Interface {
		second = second.Elem()
	}
	if !first.IsValid() || !second.IsValid() {
		return nil, nil, false
	}

	a, ok := asPoints(first.Interface())
	if !ok {
		return nil, nil, false
	}
	b, ok := asCoords(second)
	if !ok {
		return nil, nil, false
	}
	return a, b, true
}
