package e2e_test

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsondom/internal/decoder"
	"github.com/mcncl/jsondom/internal/encoder"
)

// generateNestedJSON creates a deeply nested JSON structure for benchmarking
func generateNestedJSON(depth int, width int) map[string]interface{} {
	if depth <= 0 {
		return map[string]interface{}{
			"leaf_value": "data",
			"timestamp":  time.Now().Format(time.RFC3339),
			"count":      rand.Intn(100),
			"enabled":    rand.Intn(2) == 1,
		}
	}

	result := make(map[string]interface{})

	for i := 0; i < width; i++ {
		key := fmt.Sprintf("nested_%d_%d", depth, i)
		result[key] = generateNestedJSON(depth-1, width)
	}

	return result
}

// generateWideJSON creates a JSON object with many fields at the same level
func generateWideJSON(fieldCount int) map[string]interface{} {
	result := make(map[string]interface{})

	for i := 0; i < fieldCount; i++ {
		// Mix different types of fields
		switch i % 5 {
		case 0:
			result[fmt.Sprintf("string_field_%d", i)] = fmt.Sprintf("value_%d", i)
		case 1:
			result[fmt.Sprintf("int_field_%d", i)] = i
		case 2:
			result[fmt.Sprintf("bool_field_%d", i)] = i%2 == 0
		case 3:
			result[fmt.Sprintf("float_field_%d", i)] = float64(i) + 0.5
		case 4:
			// Nested object
			result[fmt.Sprintf("object_field_%d", i)] = map[string]interface{}{
				"id":    i,
				"name":  fmt.Sprintf("Object %d", i),
				"value": i * 10,
			}
		}
	}

	return result
}

// BenchmarkDecodeDeepNesting benchmarks decoding deeply nested documents
func BenchmarkDecodeDeepNesting(b *testing.B) {
	// Skip in short mode
	if testing.Short() {
		b.Skip("skipping benchmark in short mode")
	}

	// Test different nesting depths
	depths := []struct {
		name  string
		depth int
		width int
	}{
		{"Depth3Width3", 3, 3},   // Moderate nesting
		{"Depth5Width2", 5, 2},   // Deep nesting
		{"Depth2Width10", 2, 10}, // Wide but shallow
	}

	for _, depth := range depths {
		b.Run(depth.name, func(b *testing.B) {
			nestedData := generateNestedJSON(depth.depth, depth.width)
			jsonData, err := json.MarshalIndent(nestedData, "", "  ")
			require.NoError(b, err)
			text := string(jsonData)

			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := decoder.Decode(text); err != nil {
					b.Fatalf("Decode failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkDecodeWideStructures benchmarks decoding wide documents (many fields)
func BenchmarkDecodeWideStructures(b *testing.B) {
	// Skip in short mode
	if testing.Short() {
		b.Skip("skipping benchmark in short mode")
	}

	for _, fieldCount := range []int{50, 200, 1000} {
		b.Run(fmt.Sprintf("Fields%d", fieldCount), func(b *testing.B) {
			wideData := generateWideJSON(fieldCount)
			jsonData, err := json.Marshal(wideData)
			require.NoError(b, err)
			text := string(jsonData)

			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := decoder.Decode(text); err != nil {
					b.Fatalf("Decode failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkRoundTrip benchmarks a full decode → encode cycle
func BenchmarkRoundTrip(b *testing.B) {
	if testing.Short() {
		b.Skip("skipping benchmark in short mode")
	}

	jsonData, err := json.Marshal(generateNestedJSON(4, 3))
	require.NoError(b, err)
	text := string(jsonData)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		root, err := decoder.Decode(text)
		if err != nil {
			b.Fatalf("Decode failed: %v", err)
		}
		if out := encoder.Encode(root); out == "" {
			b.Fatal("Encode returned empty output")
		}
	}
}
