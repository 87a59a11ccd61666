package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clockFace = []string{
	"ESKISTAFÜNF",
	"ZEHNZWANZIG",
	"DREIVIERTEL",
	"VORFUNKNACH",
	"HALBAELFÜNF",
	"EINSXAMZWEI",
	"DREIPMJVIER",
	"SECHSNLACHT",
	"SIEBENZWÖLF",
	"ZEHNEUNKUHR",
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cfg := filepath.Join(t.TempDir(), "config.json")
	err := run(append([]string{"--config", cfg, "--log-level", "error"}, args...), &out)
	return out.String(), err
}

func TestRun_Resolve(t *testing.T) {
	dir := t.TempDir()
	grid := writeFile(t, dir, "face.csv", strings.Join(clockFace, "\n")+"\n")

	out, err := runCLI(t, "resolve", "--grid", grid)
	require.NoError(t, err)
	assert.Contains(t, out, "UHR")
	assert.Contains(t, out, "row=9 start=0 end=2")

	out, err = runCLI(t, "resolve", "-g", grid, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"front_word": "uhr"`)
}

func TestRun_ScriptRefusesMissingWords(t *testing.T) {
	dir := t.TempDir()
	grid := writeFile(t, dir, "small.csv", "UHR\nIST\n")
	out := filepath.Join(dir, "out", "De2x3.h")

	_, err := runCLI(t, "script", "--grid", grid, "-o", out, "--layout", "tabular")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")
	assert.NoFileExists(t, out)

	_, err = runCLI(t, "script", "--grid", grid, "-o", out, "--layout", "tabular", "--force")
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "De2x3_t")
}

func TestRun_FaceRefusesEmptyCells(t *testing.T) {
	dir := t.TempDir()
	grid := writeFile(t, dir, "gap.csv", "U,,R\n")
	out := filepath.Join(dir, "face.dxf")

	_, err := runCLI(t, "face", "--grid", grid, "-o", out)
	require.Error(t, err)

	_, err = runCLI(t, "face", "--grid", grid, "-o", out, "--force")
	require.NoError(t, err)
	assert.FileExists(t, out)
}

func TestRun_DividerAndInspect(t *testing.T) {
	dir := t.TempDir()
	dxfPath := filepath.Join(dir, "divider.dxf")
	pdfPath := filepath.Join(dir, "divider.pdf")
	settings := writeFile(t, dir, "divider.json", `{SCHLITZABSTAND: "16,6666", ANZAHL_SCHLITZE: 12, VERSCHIEBUNG: 8.3333}`)

	_, err := runCLI(t, "divider", "-o", dxfPath, "--pdf", pdfPath, "--settings", settings,
		"--orientation", "horizontal", "--sheet-width", "600", "--sheet-height", "400")
	require.NoError(t, err)
	assert.FileExists(t, pdfPath)

	out, err := runCLI(t, "inspect", dxfPath)
	require.NoError(t, err)
	assert.Contains(t, out, "LWPOLYLINE")
	assert.Contains(t, out, "239.50 x 89.60 mm")
}

func TestRun_ImportThenReport(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "face.csv", strings.Join(clockFace, "\n")+"\n")
	tmplPath := filepath.Join(dir, "face.json")

	_, err := runCLI(t, "import", "--in", csvPath, "-o", tmplPath)
	require.NoError(t, err)

	report := filepath.Join(dir, "report.json")
	_, err = runCLI(t, "report", "--grid", tmplPath, "-o", report)
	require.NoError(t, err)
	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"word": "ZWÖLF"`)
}

func TestRun_Errors(t *testing.T) {
	_, err := runCLI(t)
	assert.Error(t, err)

	_, err = runCLI(t, "frobnicate")
	assert.Error(t, err)

	_, err = runCLI(t, "resolve")
	assert.Error(t, err)

	_, err = runCLI(t, "inspect")
	assert.Error(t, err)

	_, err = runCLI(t, "resolve", "--grid", "missing.csv")
	assert.Error(t, err)
}
