package entity

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// ParsePayload validates a decoded JSON body against the descriptor and
// returns the optional record id plus the typed field values keyed by column
// name.
//
// The payload must contain exactly the descriptor's fields (the id key is
// optional and may be null); a missing field, a null field, an unknown key,
// or a value of the wrong type is a validation error. Values are normalised
// to driver-friendly types: string, int32, bool — dates stay "yyyy-mm-dd"
// strings.
//
// The body is expected to have been decoded with json.Decoder.UseNumber so
// that integer fields arrive as json.Number rather than float64.
func (d Descriptor) ParsePayload(payload map[string]any) (*int32, map[string]any, error) {
	var id *int32

	if raw, ok := payload["id"]; ok && raw != nil {
		parsed, err := coerceInt32(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: field %q: %w", ErrInvalidField, "id", err)
		}
		id = &parsed
	}

	values := make(map[string]any, len(d.Fields))
	for _, f := range d.Fields {
		raw, ok := payload[f.Name]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q", ErrMissingField, f.Name)
		}
		if raw == nil {
			return nil, nil, fmt.Errorf("%w: %q", ErrNullField, f.Name)
		}

		value, err := coerceValue(f.Kind, raw)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: field %q: %w", ErrInvalidField, f.Name, err)
		}
		values[f.Name] = value
	}

	// exactly the descriptor's fields: anything beyond id + fields is rejected
	for key := range payload {
		if key == "id" {
			continue
		}
		if _, ok := d.FieldByName(key); !ok {
			return nil, nil, fmt.Errorf("%w: %q", ErrUnknownField, key)
		}
	}

	return id, values, nil
}

// ParseFilters builds the equality-filter map for a find operation from URL
// query parameters.
//
// Every descriptor field, plus the id column, is filterable; a parameter
// that is absent or empty imposes no constraint. Parameters outside the
// descriptor's field set are ignored. A present value that cannot be parsed
// for the field's kind is a validation error.
func (d Descriptor) ParseFilters(query url.Values) (map[string]any, error) {
	filters := make(map[string]any)

	if raw := query.Get(d.IDColumn); raw != "" {
		id, err := parseInt32(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidField, d.IDColumn, err)
		}
		filters[d.IDColumn] = id
	}

	for _, f := range d.Fields {
		raw := query.Get(f.Name)
		if raw == "" {
			continue
		}

		value, err := parseValue(f.Kind, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidField, f.Name, err)
		}
		filters[f.Name] = value
	}

	return filters, nil
}

// coerceValue converts a decoded JSON value to the driver-friendly
// representation for the given kind.
func coerceValue(kind Kind, raw any) (any, error) {
	switch kind {
	case KindText:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", raw)
		}
		return s, nil

	case KindInt:
		return coerceInt32(raw)

	case KindDate:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected date string, got %T", raw)
		}
		if _, err := time.Parse(dateLayout, s); err != nil {
			return nil, fmt.Errorf("expected yyyy-mm-dd date: %w", err)
		}
		return s, nil

	case KindBool:
		b, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("expected bool, got %T", raw)
		}
		return b, nil
	}

	return nil, fmt.Errorf("unsupported field kind %d", kind)
}

// coerceInt32 converts a decoded JSON value to int32, rejecting fractional
// numbers and values outside the signed 32-bit range.
func coerceInt32(raw any) (int32, error) {
	number, ok := raw.(json.Number)
	if !ok {
		// tolerate float64 for callers that decoded without UseNumber
		f, isFloat := raw.(float64)
		if !isFloat {
			return 0, fmt.Errorf("expected integer, got %T", raw)
		}
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("expected integer, got fractional number")
		}
		number = json.Number(strconv.FormatFloat(f, 'f', -1, 64))
	}

	n, err := strconv.ParseInt(number.String(), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("expected 32-bit integer: %w", err)
	}

	return int32(n), nil
}

// parseValue converts a raw query-parameter string for the given kind.
func parseValue(kind Kind, raw string) (any, error) {
	switch kind {
	case KindText:
		return raw, nil

	case KindInt:
		return parseInt32(raw)

	case KindDate:
		if _, err := time.Parse(dateLayout, raw); err != nil {
			return nil, fmt.Errorf("expected yyyy-mm-dd date: %w", err)
		}
		return raw, nil

	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("expected bool: %w", err)
		}
		return b, nil
	}

	return nil, fmt.Errorf("unsupported field kind %d", kind)
}

func parseInt32(raw string) (int32, error) {
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("expected 32-bit integer: %w", err)
	}
	return int32(n), nil
}
