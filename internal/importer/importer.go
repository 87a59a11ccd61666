// Package importer reads letter grids from CSV and Excel files and inspects
// DXF drawings. It detects CSV delimiters and accepts either one cell per
// column or one string of letters per row.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Grid     *model.Grid
	Errors   []string
	Warnings []string
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		records, err := readCSV(bytes.NewReader(data), delim)
		if err != nil || len(records) < 1 {
			continue
		}
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}
		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}
		if weighted := score*10 + firstCols; weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}
	return bestDelimiter
}

func readCSV(r io.Reader, delimiter rune) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportGridCSV imports a letter grid from a CSV file.
func ImportGridCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}
	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	records, err := readCSV(bytes.NewReader(data), delimiter)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}
	return gridFromRows(records, "Line", result.Warnings)
}

// ImportGridCSVFromReader imports a letter grid from a CSV reader with a known delimiter.
func ImportGridCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	records, err := readCSV(reader, delimiter)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read CSV: %v", err)}}
	}
	return gridFromRows(records, "Line", nil)
}

// ImportGridExcel imports a letter grid from the first sheet of an Excel file.
func ImportGridExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}
	return gridFromRows(rows, "Row", nil)
}

// ImportGrid picks the importer by file extension.
func ImportGrid(path string) ImportResult {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xlsm") {
		return ImportGridExcel(path)
	}
	return ImportGridCSV(path)
}

// splitRow turns a record into cells: a record with a single non-empty
// field longer than one character is read as a string of letters.
func splitRow(row []string) []string {
	var fields []string
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			fields = append(fields, f)
		}
	}
	if len(fields) == 1 && utf8.RuneCountInString(strings.TrimSpace(fields[0])) > 1 {
		var cells []string
		for _, r := range strings.TrimSpace(fields[0]) {
			cells = append(cells, string(r))
		}
		return cells
	}
	return row
}

// gridFromRows is the shared import logic for CSV and Excel data.
func gridFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{Warnings: initialWarnings}

	var lines [][]string
	var lineNums []int
	cols := 0
	for i, row := range rows {
		if isEmptyRow(row) {
			continue
		}
		cells := splitRow(row)
		lines = append(lines, cells)
		lineNums = append(lineNums, i+1)
		if len(cells) > cols {
			cols = len(cells)
		}
	}
	if len(lines) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	g, err := model.NewGrid(len(lines), cols)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	for r, cells := range lines {
		if len(cells) < cols {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s %d: %d of %d cells, rest left blank", rowPrefix, lineNums[r], len(cells), cols))
		}
		for c, v := range cells {
			if err := g.SetCell(r, c, v); err != nil {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%s %d: column %d skipped: %v", rowPrefix, lineNums[r], c+1, err))
			}
		}
	}
	result.Grid = g
	return result
}
