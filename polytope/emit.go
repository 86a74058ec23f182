package polytope

import (
	"strconv"
	"strings"
)

// Code serializes the matrix into the tool's plain-text numeric format:
//
//	<row_count> <col_count>
//	<row_0 values space-separated>
//	...
//	<row_n values space-separated>
//	[linearity <k> <idx_1> ... <idx_k>]
//
// The linearity line is appended only when equality rows exist. Entries
// render through Rational.String, so integer values carry no
// denominator.
func (m *Matrix) Code() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(m.RowCount()))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(m.ColCount()))
	b.WriteByte('\n')

	for _, row := range m.rows {
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(v.String())
		}
		b.WriteByte('\n')
	}

	if len(m.linearity) > 0 {
		b.WriteString("linearity ")
		b.WriteString(strconv.Itoa(len(m.linearity)))
		for _, i := range m.linearity {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(i))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
