package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the command tree in a scratch directory with no config file.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	wd, werr := os.Getwd()
	require.NoError(t, werr)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "--version")
	require.NoError(t, err)
	assert.Equal(t, "dmtx version dev\n", out)
}

func TestEncodeTerminal(t *testing.T) {
	out, err := run(t, "", "encode", "--size", "12x12", "--quiet-zone", "2", "HELLO")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, 8)
	// the solid left finder edge shows as full blocks below the quiet zone
	assert.Equal(t, "  █", string([]rune(lines[2])[:3]))
}

func TestEncodeStdin(t *testing.T) {
	fromArg, err := run(t, "", "encode", "--size", "16x16", "ODOO 17!")
	require.NoError(t, err)
	fromStdin, err := run(t, "ODOO 17!\n", "encode", "--size", "16x16")
	require.NoError(t, err)
	assert.Equal(t, fromArg, fromStdin)
}

func TestEncodeTooLarge(t *testing.T) {
	_, err := run(t, "", "encode", "--size", "10x10", "HELLO WORLD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

func TestEncodeUnsupportedCharacter(t *testing.T) {
	_, err := run(t, "", "encode", "price 5€")
	require.Error(t, err)
}

func TestEncodeInvalidSize(t *testing.T) {
	_, err := run(t, "", "encode", "--size", "11x11", "A")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

func TestEncodeDump(t *testing.T) {
	out, err := run(t, "", "encode", "--size", "10x10", "--dump", "--verify", "")
	require.NoError(t, err)

	var d symbolDump
	require.NoError(t, yaml.Unmarshal([]byte(out), &d))
	assert.Equal(t, "10x10", d.Size)
	assert.Equal(t, []int{230, 254, 129, 94, 246, 105, 38, 102}, d.Codewords)
	require.Len(t, d.Matrix, 10)
	assert.Equal(t, "##########", d.Matrix[9])
	assert.Equal(t, "#.#.#.#.#.", d.Matrix[0])
}

func TestEncodeDumpJSON(t *testing.T) {
	out, err := run(t, "", "encode", "--size", "auto", "--dump", "--format", "json", "ABCD")
	require.NoError(t, err)

	var d symbolDump
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, "12x12", d.Size)
	assert.Len(t, d.Codewords, 12)
}

func TestEncodeDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "label.png")

	_, err := run(t, "", "encode", "-o", path, "--module-size", "6", "--width", "576", "HELLO WORLD")
	require.NoError(t, err)

	out, err := run(t, "", "decode", path)
	require.NoError(t, err)
	assert.Equal(t, "HELLO WORLD\n", out)

	out, err = run(t, "", "decode", "--backend", "native", "--format", "yaml", path)
	require.NoError(t, err)
	var results []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "HELLO WORLD", results[0]["text"])
	assert.Equal(t, "native", results[0]["backend"])
}

func TestEncodeBadExtension(t *testing.T) {
	_, err := run(t, "", "encode", "-o", "label.svg", "A")
	require.Error(t, err)
}

func TestDecodeMissingFile(t *testing.T) {
	_, err := run(t, "", "decode", "nope.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 images")
}

func TestSizes(t *testing.T) {
	out, err := run(t, "", "sizes", "--format", "yaml")
	require.NoError(t, err)
	var entries []sizeEntry
	require.NoError(t, yaml.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 29)
	assert.Equal(t, "10x10", entries[0].Size)
	assert.Equal(t, 3, entries[0].MaxC40Chars)
	assert.Equal(t, "132x132", entries[28].Size)

	out, err = run(t, "", "sizes", "--shape", "rectangle")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "SIZE"))
	assert.True(t, strings.HasPrefix(lines[1], "8x18"))
}

func TestEncodeInputCharset(t *testing.T) {
	// "Café" in windows-1252
	out, err := run(t, "Caf\xe9", "encode", "--size", "auto", "--dump", "--verify", "--input-charset", "windows-1252")
	require.NoError(t, err)
	want, err := run(t, "", "encode", "--size", "auto", "--dump", "Café")
	require.NoError(t, err)
	assert.Equal(t, want, out)
}
