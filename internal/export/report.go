package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
)

// Sheet names of the placements workbook.
const (
	SheetPlacements = "Placements"
	SheetFace       = "Face"
)

var statusFills = map[model.Status]string{
	model.StatusFound:    "#C6EFCE",
	model.StatusMissing:  "#FFC7CE",
	model.StatusExcluded: "#FFEB9C",
	model.StatusDisabled: "#BDD7EE",
}

// WritePlacementsXLSX writes one row per placement plus a sheet with the
// face letters.
func WritePlacementsXLSX(path string, grid *model.Grid, placements []model.Placement) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetPlacements); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	fills := map[model.Status]int{}
	for status, c := range statusFills {
		id, err := f.NewStyle(&excelize.Style{Fill: excelize.Fill{Type: "pattern", Color: []string{c}, Pattern: 1}})
		if err != nil {
			return fmt.Errorf("failed to create status style: %w", err)
		}
		fills[status] = id
	}

	headers := []string{"Index", "Word", "Identifier", "Status", "Row", "Start", "End"}
	if err := f.SetSheetRow(SheetPlacements, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetCellStyle(SheetPlacements, "A1", "G1", header); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, p := range placements {
		row := []interface{}{p.Index, p.Word, p.Front, p.Status.String(), "", "", ""}
		if p.Found() {
			row[4], row[5], row[6] = p.Row, p.Start, p.End
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetPlacements, cell, &row); err != nil {
			return fmt.Errorf("failed to write placement %d: %w", i, err)
		}
		statusCell, _ := excelize.CoordinatesToCellName(4, i+2)
		if err := f.SetCellStyle(SheetPlacements, statusCell, statusCell, fills[p.Status]); err != nil {
			return fmt.Errorf("failed to style placement %d: %w", i, err)
		}
	}
	if err := f.SetColWidth(SheetPlacements, "B", "D", 14); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	if grid != nil {
		if _, err := f.NewSheet(SheetFace); err != nil {
			return fmt.Errorf("failed to add face sheet: %w", err)
		}
		for r, cells := range grid.Cells() {
			row := make([]interface{}, len(cells))
			for c, v := range cells {
				row[c] = v
			}
			cell, _ := excelize.CoordinatesToCellName(1, r+1)
			if err := f.SetSheetRow(SheetFace, cell, &row); err != nil {
				return fmt.Errorf("failed to write face row %d: %w", r, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// WritePlacementsJSON writes the placements as an indented JSON array.
func WritePlacementsJSON(w io.Writer, placements []model.Placement) error {
	if placements == nil {
		placements = []model.Placement{}
	}
	data, err := json.MarshalIndent(placements, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal placements: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write placements: %w", err)
	}
	return nil
}
