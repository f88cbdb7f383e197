package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jpicht/vsel/lib/vsel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	out := bytes.NewBuffer(nil)
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(bytes.NewBuffer(nil))
	err := cmd.Execute()
	return strings.TrimSuffix(out.String(), "\n"), err
}

func TestEncodeDecode(t *testing.T) {
	encoded, err := run(t, "", "encode", "--seed", "5", "attack at dawn", "the weather is lovely today")
	require.NoError(t, err)
	assert.Equal(t, "the weather is lovely today", vsel.Strip(encoded))

	decoded, err := run(t, "", "decode", encoded)
	require.NoError(t, err)
	assert.Equal(t, "attack at dawn", decoded)

	decoded, err = run(t, encoded+"\n", "decode")
	require.NoError(t, err)
	assert.Equal(t, "attack at dawn", decoded)

	stripped, err := run(t, "", "decode", "--strip", encoded)
	require.NoError(t, err)
	assert.Equal(t, "the weather is lovely today", stripped)
}

func TestEncodeDefaults(t *testing.T) {
	encoded, err := run(t, "", "encode", "hi")
	require.NoError(t, err)
	assert.Equal(t, vsel.Encode("hi", "A", vsel.Options{}), encoded)

	encoded, err = run(t, "", "encode", "--full", "hi", "XY")
	require.NoError(t, err)
	assert.Equal(t, vsel.Encode("hi", "XY", vsel.Options{FullTextPerChar: true}), encoded)
}

func TestEncodeConfigFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "vsel.yml")
	require.NoError(t, os.WriteFile(p, []byte("carrier: \"XY\"\nfull_text_per_char: true\n"), 0644))

	encoded, err := run(t, "", "--config", p, "encode", "hi")
	require.NoError(t, err)
	assert.Equal(t, vsel.Encode("hi", "XY", vsel.Options{FullTextPerChar: true}), encoded)

	_, err = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yml"), "encode", "hi")
	assert.Error(t, err)
}

func TestDecodeRaw(t *testing.T) {
	out, err := run(t, "", "decode", "--raw", vsel.Encode("abab", "carrier", vsel.Options{}))
	require.NoError(t, err)
	assert.Equal(t, "61626162", out)
}

func TestChat(t *testing.T) {
	input := strings.Join([]string{
		`encode "XY" "hi" full`,
		``,
		`bogus`,
		`decode "` + vsel.Encode("hi", "XY", vsel.Options{FullTextPerChar: true}) + `"`,
	}, "\n")

	out, err := run(t, input, "chat")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, vsel.Encode("hi", "XY", vsel.Options{FullTextPerChar: true}), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "usage:"))
	assert.Equal(t, "hi", lines[2])
}

func TestArgs(t *testing.T) {
	_, err := run(t, "", "encode")
	assert.Error(t, err)

	_, err = run(t, "", "decode", "a", "b")
	assert.Error(t, err)
}
