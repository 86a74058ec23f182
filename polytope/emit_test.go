package polytope_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattix/polytope"
)

// TestCode_HRepresentation checks the full emitted text for a small
// inequality system.
func TestCode_HRepresentation(t *testing.T) {
	m := buildFrom(t, "x + y <= 10", "x >= 1", "y >= 1")

	want := strings.Join([]string{
		"3 3",
		"10 -1 -1",
		"-1 1 0",
		"-1 0 1",
		"",
	}, "\n")
	if diff := cmp.Diff(want, m.Code()); diff != "" {
		t.Errorf("emitted code mismatch (-want +got):\n%s", diff)
	}
}

// TestCode_LinearityDirective appends the equality directive with count
// and 1-based indices.
func TestCode_LinearityDirective(t *testing.T) {
	m := buildFrom(t, "x + y == 4", "x >= 0", "y == 1")

	code := m.Code()
	assert.True(t, strings.HasSuffix(code, "linearity 2 1 3\n"),
		"expected trailing linearity line, got:\n%s", code)
}

// TestCode_VertexList emits the homogenized matrix with no linearity
// line, header rows = #vertices and cols = dim+1.
func TestCode_VertexList(t *testing.T) {
	m, err := polytope.VertexMatrix([][]int64{{1, 1}, {10, 1}, {1, 10}, {10, 10}})
	require.NoError(t, err)

	want := strings.Join([]string{
		"4 3",
		"1 1 1",
		"1 10 1",
		"1 1 10",
		"1 10 10",
		"",
	}, "\n")
	if diff := cmp.Diff(want, m.Code()); diff != "" {
		t.Errorf("emitted code mismatch (-want +got):\n%s", diff)
	}
	assert.NotContains(t, m.Code(), "linearity")
}

// TestCode_CrossRepresentationConsistency: the H-representation of the
// unit square and the halfspace constructor must emit identical code
// for the same system A·x <= b.
func TestCode_CrossRepresentationConsistency(t *testing.T) {
	// x <= 1, y <= 1, -x <= 0, -y <= 0.
	spec, err := polytope.Halfspaces(
		[][]int64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}},
		[]int64{1, 1, 0, 0},
	)
	require.NoError(t, err)
	require.Equal(t, polytope.KindRawCode, spec.Kind(), "halfspace pairs collapse to raw code")

	m := buildFrom(t, "x <= 1", "y <= 1", "x >= 0", "y >= 0")
	assert.Equal(t, spec.Code(), m.Code(),
		"symbolic and A/b forms of the same polytope must emit identical code")
}
