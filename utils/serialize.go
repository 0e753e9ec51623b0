package utils

import (
	"fmt"
	"reflect"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Serialize converts a persisted record into its API-facing shape: the
// storage-assigned "_id" is renamed to a string "id", every top-level
// datetime value becomes an RFC 3339 string in UTC, and all other fields pass
// through untouched. Nil or empty input yields nil. No field is removed or
// redacted here; callers exclude sensitive material before serializing.
func Serialize(record any) bson.M {
	if record == nil {
		return nil
	}
	rv := reflect.ValueOf(record)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return nil
	}

	var doc bson.M
	if m, ok := record.(bson.M); ok {
		doc = m
	} else {
		raw, err := bson.Marshal(record)
		if err != nil {
			GetLogger().Error("Serialize: failed to marshal record: " + err.Error())
			return nil
		}
		if err := bson.Unmarshal(raw, &doc); err != nil {
			GetLogger().Error("Serialize: failed to unmarshal record: " + err.Error())
			return nil
		}
	}
	if len(doc) == 0 {
		return nil
	}

	out := make(bson.M, len(doc))
	for k, v := range doc {
		var converted any
		switch tv := v.(type) {
		case primitive.ObjectID:
			converted = tv.Hex()
		case primitive.DateTime:
			converted = tv.Time().UTC().Format(time.RFC3339)
		case time.Time:
			converted = tv.UTC().Format(time.RFC3339)
		default:
			converted = v
		}
		if k == "_id" {
			if s, ok := converted.(string); ok {
				out["id"] = s
			} else {
				out["id"] = fmt.Sprintf("%v", converted)
			}
			continue
		}
		out[k] = converted
	}
	return out
}
