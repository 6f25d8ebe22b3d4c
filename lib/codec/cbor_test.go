// Copyright 2026 The Wavelink Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"
)

// TestRoundTripShapes verifies decode(encode(v)) structural equality
// for every supported value shape. Expected values account for CBOR's
// decoding into any: non-negative integers become uint64, negative
// integers int64, maps map[string]any.
func TestRoundTripShapes(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  any
	}{
		{"nil", nil, nil},
		{"bool_true", true, true},
		{"bool_false", false, false},
		{"int_positive", 42, uint64(42)},
		{"int_negative", -7, int64(-7)},
		{"int_large", uint64(math.MaxUint64), uint64(math.MaxUint64)},
		{"int_min", int64(math.MinInt64), int64(math.MinInt64)},
		{"float", 3.25, 3.25},
		{"float_small", 0.1, 0.1},
		{"string", "hello", "hello"},
		{"string_unicode", "日本語 🪐", "日本語 🪐"},
		{"bytes", []byte{0x00, 0xFF, 0x10}, []byte{0x00, 0xFF, 0x10}},
		{"sequence", []any{uint64(1), "two", 3.0}, []any{uint64(1), "two", 3.0}},
		{"mapping", map[string]any{"a": uint64(1), "b": "x"},
			map[string]any{"a": uint64(1), "b": "x"}},
		{"nested", map[string]any{
			"peers": []any{"alice", "bob"},
			"meta":  map[string]any{"count": uint64(2)},
		}, map[string]any{
			"peers": []any{"alice", "bob"},
			"meta":  map[string]any{"count": uint64(2)},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := Marshal(tc.value)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			var decoded any
			if err := Unmarshal(data, &decoded); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if !reflect.DeepEqual(decoded, tc.want) {
				t.Errorf("round-trip = %#v, want %#v", decoded, tc.want)
			}
		})
	}
}

// TestIntegerExactness pins exact numeric round-trips through typed
// targets: no silent conversion to float, no precision loss.
func TestIntegerExactness(t *testing.T) {
	original := int64(1<<53 + 1) // beyond float64's exact integer range
	data, err := Marshal(original)
	if err != nil {
		t.Fatal(err)
	}
	var decoded int64
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded != original {
		t.Errorf("int64 round-trip = %d, want %d", decoded, original)
	}
}

func TestDeterministicEncoding(t *testing.T) {
	value := map[string]any{"zebra": 1, "apple": 2, "mango": []any{3, 4}}

	first, err := Marshal(value)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Marshal(value)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("same value produced different encodings")
	}
}

func TestUnmarshalTruncated(t *testing.T) {
	data, err := Marshal(map[string]any{"key": "a long enough value"})
	if err != nil {
		t.Fatal(err)
	}
	var decoded any
	if err := Unmarshal(data[:len(data)-3], &decoded); err == nil {
		t.Error("truncated input decoded without error")
	}
}

func TestUnmarshalTrailingBytes(t *testing.T) {
	data, err := Marshal("value")
	if err != nil {
		t.Fatal(err)
	}
	var decoded any
	if err := Unmarshal(append(data, 0x01), &decoded); err == nil {
		t.Error("input with trailing bytes decoded without error")
	}
}

func TestStreamEncoderDecoder(t *testing.T) {
	var buffer bytes.Buffer
	encoder := NewEncoder(&buffer)
	for _, v := range []any{"one", 2, true} {
		if err := encoder.Encode(v); err != nil {
			t.Fatal(err)
		}
	}

	decoder := NewDecoder(&buffer)
	var first string
	var second uint64
	var third bool
	if err := decoder.Decode(&first); err != nil {
		t.Fatal(err)
	}
	if err := decoder.Decode(&second); err != nil {
		t.Fatal(err)
	}
	if err := decoder.Decode(&third); err != nil {
		t.Fatal(err)
	}
	if first != "one" || second != 2 || third != true {
		t.Errorf("stream round-trip = %q, %d, %v", first, second, third)
	}
}

func TestDiagnose(t *testing.T) {
	data, err := Marshal(map[string]any{"count": 42})
	if err != nil {
		t.Fatal(err)
	}
	diag, err := Diagnose(data)
	if err != nil {
		t.Fatal(err)
	}
	// Exact EDN whitespace is the library's business; the notation
	// must preserve the key and the integer (not render it a float).
	if !strings.Contains(diag, `"count"`) || !strings.Contains(diag, "42") {
		t.Errorf("diagnostic notation = %s", diag)
	}
}
