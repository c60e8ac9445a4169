package filter

import "strings"

// separator joins sub-expressions with logical AND.
const separator = " && "

// Quote wraps s in double quotes for use inside a filter expression,
// escaping backslashes and double quotes. Everything else, including
// control characters and the separator token, passes through unchanged.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// subExpression maps one row to its sub-expression. The second return value
// is false for rows that contribute nothing (empty criterion or an operator
// the serializer does not know); such rows are skipped, never an error.
func subExpression(row Row) (string, bool) {
	if row.Criterion == "" {
		return "", false
	}
	quoted := Quote(row.Value)
	switch row.Operator {
	case OpEqual:
		return string(row.Criterion) + "==" + quoted, true
	case OpNotEqual:
		return string(row.Criterion) + "!=" + quoted, true
	case OpMatch:
		return "match(" + quoted + "," + string(row.Criterion) + ")", true
	case OpNotMatch:
		return "!match(" + quoted + "," + string(row.Criterion) + ")", true
	default:
		return "", false
	}
}

// Serialize maps a row list to a single filter expression. It is pure and
// total: any list content yields a deterministic string, and a list that
// produces no sub-expressions yields "".
func Serialize(rows []Row) string {
	parts := make([]string, 0, len(rows))
	for _, row := range rows {
		if expr, ok := subExpression(row); ok {
			parts = append(parts, expr)
		}
	}
	return strings.Join(parts, separator)
}
