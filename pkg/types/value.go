// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

// valueKind identifies the variant held by a Value.
type valueKind int

const (
	kindNull valueKind = iota
	kindInt
	kindFloat
	kindText
)

// Value is an optional scalar in an exported product record. The zero
// Value is Null and serializes as an explicit null, never as an omitted key.
type Value struct {
	kind valueKind
	i    int64
	f    float64
	s    string
}

// Null returns the empty value.
func Null() Value { return Value{} }

// Int returns an integer value.
func Int(n int64) Value { return Value{kind: kindInt, i: n} }

// Float returns a floating-point value.
func Float(f float64) Value { return Value{kind: kindFloat, f: f} }

// Text returns a text value.
func Text(s string) Value { return Value{kind: kindText, s: s} }

// IsNull reports whether v holds no data.
func (v Value) IsNull() bool { return v.kind == kindNull }

// AsText returns the text held by v and whether v is Text.
func (v Value) AsText() (string, bool) { return v.s, v.kind == kindText }

// String renders v as plain text. Null renders as "".
func (v Value) String() string {
	switch v.kind {
	case kindInt:
		return strconv.FormatInt(v.i, 10)
	case kindFloat:
		return formatFloat(v.f)
	case kindText:
		return v.s
	default:
		return ""
	}
}

// formatFloat keeps a decimal point on whole numbers so 205.0 stays
// distinguishable from the integer 205.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case kindInt:
		return []byte(strconv.FormatInt(v.i, 10)), nil
	case kindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return nil, fmt.Errorf("cannot encode non-finite float %v", v.f)
		}
		return []byte(formatFloat(v.f)), nil
	case kindText:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v.s); err != nil {
			return nil, err
		}
		return bytes.TrimRight(buf.Bytes(), "\n"), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON implements json.Unmarshaler. Numbers written with a
// decimal point or exponent decode as Float, other numbers as Int.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = Null()
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Text(s)
		return nil
	}
	raw := string(data)
	if !strings.ContainsAny(raw, ".eE") {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			*v = Int(n)
			return nil
		}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("decoding value %s: %w", raw, err)
	}
	*v = Float(f)
	return nil
}

// MarshalYAML implements yaml.Marshaler. Whole floats are tagged !!float
// and keep their decimal point, matching MarshalJSON.
func (v Value) MarshalYAML() (interface{}, error) {
	if v.kind == kindFloat && !math.IsNaN(v.f) && !math.IsInf(v.f, 0) {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatFloat(v.f)}, nil
	}
	return v.native(), nil
}

// Value implements driver.Valuer so records can be stored column by column.
func (v Value) Value() (driver.Value, error) {
	return v.native(), nil
}

// Scan implements sql.Scanner.
func (v *Value) Scan(src interface{}) error {
	switch s := src.(type) {
	case nil:
		*v = Null()
	case int64:
		*v = Int(s)
	case float64:
		*v = Float(s)
	case string:
		*v = Text(s)
	case []byte:
		*v = Text(string(s))
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
	return nil
}

func (v Value) native() interface{} {
	switch v.kind {
	case kindInt:
		return v.i
	case kindFloat:
		return v.f
	case kindText:
		return v.s
	default:
		return nil
	}
}
