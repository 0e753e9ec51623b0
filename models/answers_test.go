package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestAnswerValueJSONDecoding(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want AnswerValue
	}{
		{"text", `"blue"`, TextValue("blue")},
		{"number", `12.5`, NumberValue(12.5)},
		{"bool", `true`, BoolValue(true)},
		{"list", `["a","b"]`, ListValue([]string{"a", "b"})},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var got AnswerValue
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tc.in, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Unmarshal(%s) = %+v, want %+v", tc.in, got, tc.want)
			}

			out, err := json.Marshal(got)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			var round AnswerValue
			if err := json.Unmarshal(out, &round); err != nil {
				t.Fatalf("Unmarshal round trip: %v", err)
			}
			if !reflect.DeepEqual(round, tc.want) {
				t.Errorf("round trip = %+v, want %+v", round, tc.want)
			}
		})
	}
}

func TestAnswerValueRejectsNull(t *testing.T) {
	t.Parallel()

	var v AnswerValue
	if err := json.Unmarshal([]byte(`null`), &v); err == nil {
		t.Error("null answer value should be rejected")
	}
}

func TestAnswerValueCompatibility(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value AnswerValue
		qtype QuestionType
		want  bool
	}{
		{TextValue("x"), QuestionText, true},
		{TextValue("x"), QuestionTextarea, true},
		{TextValue("x"), QuestionSelect, true},
		{TextValue("x"), QuestionFile, true},
		{TextValue("x"), QuestionNumber, false},
		{NumberValue(3), QuestionNumber, true},
		{NumberValue(3), QuestionText, false},
		{BoolValue(true), QuestionCheckbox, true},
		{ListValue([]string{"a"}), QuestionCheckbox, true},
		{ListValue([]string{"a"}), QuestionSelect, false},
		{BoolValue(true), QuestionText, false},
	}

	for _, tc := range cases {
		if got := tc.value.Compatible(tc.qtype); got != tc.want {
			t.Errorf("Compatible(%+v, %s) = %v, want %v", tc.value, tc.qtype, got, tc.want)
		}
	}
}
