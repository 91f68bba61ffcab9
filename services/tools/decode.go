package tools

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"
)

var errTrailingData = errors.New("unexpected data after top-level value")

// unmarshal decodes data into v, accepting integral floats such as 1.0 or 2e0
// for integer fields. Models often send whole numbers that way.
func unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var tree any
	if err := dec.Decode(&tree); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	normalized, err := json.Marshal(integralNumbers(tree))
	if err != nil {
		return err
	}
	return json.Unmarshal(normalized, v)
}

func integralNumbers(node any) any {
	switch n := node.(type) {
	case map[string]any:
		for k, child := range n {
			n[k] = integralNumbers(child)
		}
	case []any:
		for i, child := range n {
			n[i] = integralNumbers(child)
		}
	case json.Number:
		if _, err := strconv.ParseInt(string(n), 10, 64); err == nil {
			return n
		}
		f, err := strconv.ParseFloat(string(n), 64)
		if err == nil && f == math.Trunc(f) && math.Abs(f) <= 1<<53 {
			return json.Number(strconv.FormatInt(int64(f), 10))
		}
	}
	return node
}
