package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/postguard/internal/model"
	"github.com/ppiankov/postguard/internal/pipeline"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		outputFormat, outJSON, outMD = "", "", ""
		noCache, noColor, failOnViolation = false, false, false
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "postguard "+Version+"\n", out)
}

func TestCheckCommand_JSON(t *testing.T) {
	out, err := execute(t, "", "check", "--output", "json", "--no-cache", "Hello idiot")
	require.NoError(t, err)

	var a model.Analysis
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, "Hello idiot", a.OriginalPost)
	assert.Equal(t, model.StatusViolation, a.Classification.Status)
	assert.Equal(t, "hello ***", a.Transformation.TransformedText)
}

func TestCheckCommand_Stdin(t *testing.T) {
	out, err := execute(t, "nice *day*\n", "check", "--output", "text", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "Classification: [Safe]")
	assert.Contains(t, out, "Validation: [Valid]")
	assert.Contains(t, out, "Preview:")
}

func TestCheckCommand_FailOnViolation(t *testing.T) {
	_, err := execute(t, "", "check", "--fail-on-violation", "--no-cache", "slur1")
	assert.True(t, errors.Is(err, ErrViolation))
}

func TestCheckCommand_WritesReports(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "a.json")
	mdPath := filepath.Join(dir, "a.md")

	_, err := execute(t, "", "check", "--json", jsonPath, "--md", mdPath, "hi #a #b #c")
	require.NoError(t, err)

	assert.FileExists(t, jsonPath)
	md, err := os.ReadFile(mdPath)
	require.NoError(t, err)
	assert.Contains(t, string(md), "Flags: spam")
}

func TestReadPost(t *testing.T) {
	post, err := readPost(strings.NewReader("ignored"), []string{"from args"})
	require.NoError(t, err)
	assert.Equal(t, "from args", post)

	post, err = readPost(strings.NewReader("line one\nline two\r\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", post)
}

func TestWriteAnalysis_Text(t *testing.T) {
	a := pipeline.NewPipeline(nil).Process("you are stupid #x #y #z extra")

	var out bytes.Buffer
	require.NoError(t, writeAnalysis(&out, a, model.FormatText, false))

	text := out.String()
	assert.Contains(t, text, "Classification: [Violation]")
	assert.Contains(t, text, "Transformed: you are *** #x #y #z extra")
	assert.Contains(t, text, "Warning: offensive language detected.")
	assert.Contains(t, text, "Validation: [Invalid]")
	assert.Contains(t, text, "word after the trailing hashtags and links")
	assert.NotContains(t, text, "Preview:")
}

func TestWriteAnalysis_UnknownFormat(t *testing.T) {
	a := pipeline.NewPipeline(nil).Process("hi")

	err := writeAnalysis(&bytes.Buffer{}, a, "xml", false)
	assert.Error(t, err)
}

func TestWriteDefaultConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".postguard")

	path, err := writeDefaultConfig(dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var cfg model.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, model.DefaultConfig(), &cfg)

	_, err = writeDefaultConfig(dir)
	assert.ErrorContains(t, err, "already exists")
}
