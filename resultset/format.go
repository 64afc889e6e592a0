package resultset

import "strings"

// NullText is written for null values.
const NullText = "null"

// Format returns the text form of v: "null" for null values, the bracketed
// element list for arrays and the scalar text otherwise.
func Format(v Value) string {
	if v.kind == KindScalar {
		return v.text
	}
	var b strings.Builder
	appendValue(&b, v)
	return b.String()
}

func appendValue(b *strings.Builder, v Value) {
	switch v.kind {
	case KindNull:
		b.WriteString(NullText)
	case KindArray:
		appendDim(b, v.dims, v.elems)
	default:
		b.WriteString(v.text)
	}
}

// appendDim writes the sub-array spanned by dims. elems holds exactly the
// elements of that sub-array in row-major order.
func appendDim(b *strings.Builder, dims []Bound, elems []Value) {
	b.WriteByte('[')
	n := dims[0].Len()
	if n > 0 {
		stride := len(elems) / n
		for i := 0; i < n; i++ {
			if i > 0 {
				b.WriteByte(',')
			}
			if len(dims) == 1 {
				appendValue(b, elems[i])
				continue
			}
			appendDim(b, dims[1:], elems[i*stride:(i+1)*stride])
		}
	}
	b.WriteByte(']')
}
