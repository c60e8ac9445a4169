// Package filter implements the filter-row model and its serialization to an
// Icinga filter expression. A filter is built as an ordered list of rows,
// each pairing a criterion (the attribute being compared) with an operator
// and a free-text value; the list serializes to the &&-joined expression the
// Icinga API accepts.
package filter

// Criterion identifies the attribute a row filters on.
type Criterion string

const (
	CriterionHostName    Criterion = "host.name"
	CriterionServiceName Criterion = "service.name"
)

// Criteria lists the recognized criteria in display order. The serializer
// accepts any non-empty criterion; this list only drives UI selection.
var Criteria = []Criterion{CriterionHostName, CriterionServiceName}

// Operator is a row's comparison mode.
type Operator string

const (
	// OpMatch is a substring/wildcard match via the match() function.
	OpMatch Operator = "match"

	// OpNotMatch is the negation of OpMatch.
	OpNotMatch Operator = "nmatch"

	// OpEqual is exact string equality.
	OpEqual Operator = "eq"

	// OpNotEqual is exact string inequality.
	OpNotEqual Operator = "ne"
)

// Operators lists all operators in display order.
var Operators = []Operator{OpMatch, OpNotMatch, OpEqual, OpNotEqual}

// Label returns the comparison symbol shown for an operator.
func (o Operator) Label() string {
	switch o {
	case OpMatch:
		return "=~"
	case OpNotMatch:
		return "!~"
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	default:
		return string(o)
	}
}

// Row is one filter criterion under construction.
type Row struct {
	Criterion Criterion
	Operator  Operator
	Value     string
}

// defaultRow returns the row created by Add and NewRows: first recognized
// criterion, match operator, empty value.
func defaultRow() Row {
	return Row{Criterion: Criteria[0], Operator: OpMatch}
}

// Rows is an ordered list of filter rows. It always contains at least one
// row: removal of the last remaining row is refused at the model level, not
// just disabled in the UI.
type Rows struct {
	rows []Row
}

// NewRows creates a list containing one default row.
func NewRows() *Rows {
	return &Rows{rows: []Row{defaultRow()}}
}

// Len returns the number of rows.
func (r *Rows) Len() int {
	return len(r.rows)
}

// All returns the rows in insertion order. The returned slice is the
// backing store; callers must not append to it.
func (r *Rows) All() []Row {
	return r.rows
}

// Row returns the row at index i.
func (r *Rows) Row(i int) Row {
	return r.rows[i]
}

// Add appends a new default row. It always succeeds.
func (r *Rows) Add() {
	r.rows = append(r.rows, defaultRow())
}

// Remove deletes the row at index i. It reports whether a row was removed;
// removal is refused when only one row remains or the index is out of range.
func (r *Rows) Remove(i int) bool {
	if len(r.rows) <= 1 || i < 0 || i >= len(r.rows) {
		return false
	}
	r.rows = append(r.rows[:i], r.rows[i+1:]...)
	return true
}

// CanRemove reports whether rows may currently be removed. The answer is
// uniform across all rows, so it also drives the enabled state of every
// remove control at once.
func (r *Rows) CanRemove() bool {
	return len(r.rows) > 1
}

// SetCriterion updates the criterion of the row at index i.
func (r *Rows) SetCriterion(i int, c Criterion) {
	if i >= 0 && i < len(r.rows) {
		r.rows[i].Criterion = c
	}
}

// SetOperator updates the operator of the row at index i.
func (r *Rows) SetOperator(i int, op Operator) {
	if i >= 0 && i < len(r.rows) {
		r.rows[i].Operator = op
	}
}

// SetValue updates the value of the row at index i.
func (r *Rows) SetValue(i int, value string) {
	if i >= 0 && i < len(r.rows) {
		r.rows[i].Value = value
	}
}

// Serialize returns the filter expression for the current row list.
func (r *Rows) Serialize() string {
	return Serialize(r.rows)
}
