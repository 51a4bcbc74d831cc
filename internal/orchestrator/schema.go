package orchestrator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

type schemaField struct {
	name      string
	required  bool
	timestamp bool // required Timestamp fields also reject ""
}

type recordSchema struct {
	name   string
	fields []schemaField
}

var schemaCache sync.Map // reflect.Type -> *recordSchema

func schemaFor[T any]() *recordSchema {
	typ := reflect.TypeFor[T]()
	if cached, ok := schemaCache.Load(typ); ok {
		return cached.(*recordSchema)
	}
	schema := &recordSchema{name: typ.Name()}
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		schema.fields = append(schema.fields, schemaField{
			name:      name,
			required:  field.Tag.Get("schema") != "optional",
			timestamp: field.Type == timestampType,
		})
	}
	actual, _ := schemaCache.LoadOrStore(typ, schema)
	return actual.(*recordSchema)
}

// selectList returns the $select value: vendor field names in declaration order.
func (s *recordSchema) selectList() string {
	names := make([]string, len(s.fields))
	for i, field := range s.fields {
		names[i] = field.name
	}
	return strings.Join(names, ",")
}

var (
	jsonNull      = []byte("null")
	jsonEmpty     = []byte(`""`)
	timestampType = reflect.TypeFor[Timestamp]()
)

func (s *recordSchema) check(raw json.RawMessage) error {
	var object map[string]json.RawMessage
	if err := json.Unmarshal(raw, &object); err != nil || object == nil {
		return &SchemaError{Schema: s.name, Reason: "is not a JSON object"}
	}
	for _, field := range s.fields {
		if !field.required {
			continue
		}
		value, ok := object[field.name]
		value = bytes.TrimSpace(value)
		if !ok || bytes.Equal(value, jsonNull) {
			return &SchemaError{Schema: s.name, Field: field.name, Reason: "is required"}
		}
		if field.timestamp && bytes.Equal(value, jsonEmpty) {
			return &SchemaError{Schema: s.name, Field: field.name, Reason: "is not a date-time"}
		}
	}
	return nil
}

func decodeRecord[T any](raw json.RawMessage) (T, error) {
	var record T
	schema := schemaFor[T]()
	if err := schema.check(raw); err != nil {
		return record, err
	}
	if err := json.Unmarshal(raw, &record); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return record, &SchemaError{
				Schema: schema.name,
				Field:  typeErr.Field,
				Reason: fmt.Sprintf("has type %s, want %s", typeErr.Value, typeErr.Type),
			}
		}
		return record, &SchemaError{Schema: schema.name, Reason: err.Error()}
	}
	return record, nil
}

// decodeList decodes an OData collection body of the form {"value": [...]}.
func decodeList[T any](body []byte) ([]T, error) {
	var envelope struct {
		Value *[]json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode %s list: %w", schemaFor[T]().name, err)
	}
	if envelope.Value == nil {
		return nil, &SchemaError{Schema: schemaFor[T]().name, Field: "value", Reason: "is required"}
	}
	records := make([]T, 0, len(*envelope.Value))
	for idx, raw := range *envelope.Value {
		record, err := decodeRecord[T](raw)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", idx, err)
		}
		records = append(records, record)
	}
	return records, nil
}
