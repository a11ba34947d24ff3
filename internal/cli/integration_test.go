package cli_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCLI_FileInputOutput tests the CLI with file input and output
func TestCLI_FileInputOutput(t *testing.T) {
	tempDir := t.TempDir()

	// Create a test JSON file
	jsonContent := `{
		"name": "John Doe",
		"age": 30,
		"email": "john.doe@example.com",
		"address": {
			"street": "123 Main St",
			"city": "Anytown",
			"zip": "12345"
		},
		"phones": [
			{
				"type": "home",
				"number": "555-1234"
			},
			{
				"type": "work",
				"number": "555-5678"
			}
		],
		"active": true
	}`
	jsonFile := filepath.Join(tempDir, "test.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(jsonContent), 0644))

	outputFile := filepath.Join(tempDir, "output.json")

	// Run the CLI command
	cmd := exec.Command("go", "run", "../../main.go", "-i", jsonFile, "-o", outputFile, "--compact")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "CLI command failed: %s", string(output))

	// Re-encoded output is compact, key order preserved
	out, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	want := `{"name":"John Doe","age":30,"email":"john.doe@example.com",` +
		`"address":{"street":"123 Main St","city":"Anytown","zip":"12345"},` +
		`"phones":[{"type":"home","number":"555-1234"},{"type":"work","number":"555-5678"}],` +
		`"active":true}` + "\n"
	assert.Equal(t, want, string(out))
}

// TestCLI_StdinInput tests the CLI reading piped JSON from stdin
func TestCLI_StdinInput(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go", "--compact")
	cmd.Stdin = strings.NewReader(`{"a": [1, 2.5, null]}`)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	require.NoError(t, cmd.Run(), "CLI command failed: %s", stderr.String())
	assert.Equal(t, "{\"a\":[1,2.5,null]}\n", stdout.String())
}

// TestCLI_StatsFlag tests the shape report output
func TestCLI_StatsFlag(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go", "--stats")
	cmd.Stdin = strings.NewReader(`{"a": {"b": [true, false]}}`)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	require.NoError(t, cmd.Run())
	assert.Contains(t, stdout.String(), "nodes: 5")
	assert.Contains(t, stdout.String(), "max depth: 4")
	assert.Contains(t, stdout.String(), "bools: 2")
}

// TestCLI_InvalidJSON tests that malformed input produces a non-zero exit
// and a decode error message
func TestCLI_InvalidJSON(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go")
	cmd.Stdin = strings.NewReader(`{"a": truu}`)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	require.Error(t, err, "expected non-zero exit for malformed JSON")
	assert.Contains(t, stderr.String(), "JSON decode error")
}

// TestCLI_RekeyFlag tests object key rewriting
func TestCLI_RekeyFlag(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go", "--compact", "--rekey", "camel")
	cmd.Stdin = strings.NewReader(`{"first_name": "Ada"}`)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	require.NoError(t, cmd.Run(), "CLI command failed: %s", stderr.String())
	assert.Equal(t, "{\"firstName\":\"Ada\"}\n", stdout.String())
}
