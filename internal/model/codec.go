package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
)

// DecodeStrict unmarshals a single JSON object into v, rejecting unknown
// fields, trailing data, a top-level null and any field of v that is
// absent or null in the payload. Entity structs are the only description
// of the row shape, so a column added to or dropped from a table without
// a matching field change fails loudly here.
func DecodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("unexpected data after JSON value")
	}

	keys := fieldKeys(v)
	if keys == nil {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return fmt.Errorf("expected a JSON object, got null")
	}

	for _, key := range keys {
		raw, ok := fields[key]
		if !ok {
			return fmt.Errorf("missing field %q", key)
		}
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return fmt.Errorf("field %q is null", key)
		}
	}

	return nil
}

// fieldKeys lists the JSON keys of the struct v points to, or nil when v
// is not a pointer to a struct.
func fieldKeys(v any) []string {
	t := reflect.TypeOf(v)
	if t == nil || t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct {
		return nil
	}
	t = t.Elem()

	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		keys = append(keys, name)
	}
	return keys
}

// contentValue is what is stored under a content key.
type contentValue struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// EncodeContentValue serialises the stored part of c: title and body.
func EncodeContentValue(c Content) (string, error) {
	data, err := json.Marshal(contentValue{Title: c.Title, Body: c.Body})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeContentValue rebuilds a Content from its key and stored value.
func DecodeContentValue(key, value string) (Content, error) {
	var v contentValue
	if err := DecodeStrict([]byte(value), &v); err != nil {
		return Content{}, err
	}
	return Content{Key: key, Title: v.Title, Body: v.Body}, nil
}
