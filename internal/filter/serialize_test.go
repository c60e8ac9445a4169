package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", `""`},
		{"plain", "foo", `"foo"`},
		{"quote and backslash", `a"b\c`, `"a\"b\\c"`},
		{"only backslash", `\`, `"\\"`},
		{"only quote", `"`, `"\""`},
		{"backslash then quote", `\"`, `"\\\""`},
		{"unicode passes through", "höst…", `"höst…"`},
		{"control characters pass through", "a\nb\tc", "\"a\nb\tc\""},
		{"separator token passes through", "a && b", `"a && b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quote(tt.input))
		})
	}
}

func TestSerialize_EmptyList(t *testing.T) {
	assert.Equal(t, "", Serialize(nil))
	assert.Equal(t, "", Serialize([]Row{}))
}

func TestSerialize_SingleRow(t *testing.T) {
	rows := []Row{{Criterion: CriterionHostName, Operator: OpEqual, Value: "foo"}}
	assert.Equal(t, `host.name=="foo"`, Serialize(rows))
}

func TestSerialize_OperatorMapping(t *testing.T) {
	tests := []struct {
		op   Operator
		want string
	}{
		{OpEqual, `host.name=="v"`},
		{OpNotEqual, `host.name!="v"`},
		{OpMatch, `match("v",host.name)`},
		{OpNotMatch, `!match("v",host.name)`},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			rows := []Row{{Criterion: CriterionHostName, Operator: tt.op, Value: "v"}}
			assert.Equal(t, tt.want, Serialize(rows))
		})
	}
}

func TestSerialize_MultipleRowsJoinedInOrder(t *testing.T) {
	rows := []Row{
		{Criterion: CriterionHostName, Operator: OpMatch, Value: `a"b`},
		{Criterion: CriterionServiceName, Operator: OpNotEqual, Value: "x"},
	}
	assert.Equal(t, `match("a\"b",host.name) && service.name!="x"`, Serialize(rows))
}

func TestSerialize_SkipsMalformedRows(t *testing.T) {
	rows := []Row{
		{Criterion: CriterionHostName, Operator: OpEqual, Value: "a"},
		{Criterion: CriterionHostName, Operator: Operator("bogus"), Value: "b"},
		{Criterion: "", Operator: OpEqual, Value: "c"},
		{Criterion: CriterionServiceName, Operator: OpMatch, Value: "d"},
	}
	assert.Equal(t, `host.name=="a" && match("d",service.name)`, Serialize(rows))
}

func TestSerialize_AllRowsSkippedYieldsEmpty(t *testing.T) {
	rows := []Row{{Criterion: CriterionHostName, Operator: Operator("bogus")}}
	assert.Equal(t, "", Serialize(rows))
}

func TestSerialize_EmptyValueYieldsEmptyStringLiteral(t *testing.T) {
	rows := []Row{{Criterion: CriterionHostName, Operator: OpEqual}}
	assert.Equal(t, `host.name==""`, Serialize(rows))
}

func TestSerialize_Deterministic(t *testing.T) {
	rows := []Row{
		{Criterion: CriterionHostName, Operator: OpMatch, Value: `web\1`},
		{Criterion: CriterionServiceName, Operator: OpEqual, Value: "ping"},
	}
	first := Serialize(rows)
	assert.Equal(t, first, Serialize(rows))
}
