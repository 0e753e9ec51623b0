package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// AnswerKind tags the concrete type carried by an AnswerValue.
type AnswerKind string

const (
	AnswerKindText   AnswerKind = "text"
	AnswerKindNumber AnswerKind = "number"
	AnswerKindBool   AnswerKind = "bool"
	AnswerKindList   AnswerKind = "list"
)

// AnswerValue is a tagged union over the value shapes a question can collect:
// free text, a number, a boolean, or a list of strings. It marshals to and
// from the plain JSON/BSON value, not a wrapper object.
type AnswerValue struct {
	Kind   AnswerKind
	Text   string
	Number float64
	Bool   bool
	List   []string
}

// TextValue builds a text-kind answer value.
func TextValue(s string) AnswerValue { return AnswerValue{Kind: AnswerKindText, Text: s} }

// NumberValue builds a number-kind answer value.
func NumberValue(n float64) AnswerValue { return AnswerValue{Kind: AnswerKindNumber, Number: n} }

// BoolValue builds a boolean-kind answer value.
func BoolValue(b bool) AnswerValue { return AnswerValue{Kind: AnswerKindBool, Bool: b} }

// ListValue builds a string-list-kind answer value.
func ListValue(l []string) AnswerValue { return AnswerValue{Kind: AnswerKindList, List: l} }

// Compatible reports whether the value's kind can answer a question of the
// given type. Checkbox questions accept a boolean or a selection list; number
// questions a number; everything else free text.
func (v AnswerValue) Compatible(t QuestionType) bool {
	switch t {
	case QuestionNumber:
		return v.Kind == AnswerKindNumber
	case QuestionCheckbox:
		return v.Kind == AnswerKindBool || v.Kind == AnswerKindList
	case QuestionText, QuestionTextarea, QuestionSelect, QuestionFile:
		return v.Kind == AnswerKindText
	}
	return false
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case AnswerKindText:
		return json.Marshal(v.Text)
	case AnswerKindNumber:
		return json.Marshal(v.Number)
	case AnswerKindBool:
		return json.Marshal(v.Bool)
	case AnswerKindList:
		return json.Marshal(v.List)
	}
	return []byte("null"), nil
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return fmt.Errorf("answer value must not be null")
	}
	switch trimmed[0] {
	case '"':
		v.Kind = AnswerKindText
		return json.Unmarshal(trimmed, &v.Text)
	case 't', 'f':
		v.Kind = AnswerKindBool
		return json.Unmarshal(trimmed, &v.Bool)
	case '[':
		v.Kind = AnswerKindList
		return json.Unmarshal(trimmed, &v.List)
	default:
		v.Kind = AnswerKindNumber
		return json.Unmarshal(trimmed, &v.Number)
	}
}

func (v AnswerValue) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch v.Kind {
	case AnswerKindText:
		return bson.MarshalValue(v.Text)
	case AnswerKindNumber:
		return bson.MarshalValue(v.Number)
	case AnswerKindBool:
		return bson.MarshalValue(v.Bool)
	case AnswerKindList:
		return bson.MarshalValue(v.List)
	}
	return bson.TypeNull, nil, nil
}

func (v *AnswerValue) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeString:
		v.Kind = AnswerKindText
		return raw.Unmarshal(&v.Text)
	case bson.TypeDouble, bson.TypeInt32, bson.TypeInt64:
		v.Kind = AnswerKindNumber
		return raw.Unmarshal(&v.Number)
	case bson.TypeBoolean:
		v.Kind = AnswerKindBool
		return raw.Unmarshal(&v.Bool)
	case bson.TypeArray:
		v.Kind = AnswerKindList
		return raw.Unmarshal(&v.List)
	}
	return fmt.Errorf("unsupported answer value type %s", t)
}

// Answer pairs a question with the customer's value for it.
type Answer struct {
	QuestionID string      `bson:"question_id" json:"question_id"`
	Answer     AnswerValue `bson:"answer" json:"answer"`
}
