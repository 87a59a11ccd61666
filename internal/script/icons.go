package script

import (
	"fmt"
	"strings"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
)

// maxIconCols is the width of one uint16_t row.
const maxIconCols = 16

// Icon is a bitmap with one bit string per row, leftmost character first.
type Icon struct {
	Name string
	Rows []string
}

// builtinIcons are appended after the face icon on the 11x10 face.
var builtinIcons = []Icon{
	{Name: "heart", Rows: []string{
		"00110001100",
		"01111011110",
		"11111111111",
		"11111111111",
		"11111111111",
		"01111111110",
		"00111111100",
		"00011111000",
		"00001110000",
		"00000100000",
	}},
	{Name: "smiley", Rows: []string{
		"00011111000",
		"00111111100",
		"01101110110",
		"11111111111",
		"11111111111",
		"10111111101",
		"11001110011",
		"01110001110",
		"00111111100",
		"00011111000",
	}},
	{Name: "dots", Rows: []string{
		"00110000000",
		"00000000000",
		"00000000000",
		"00000000000",
		"00000001100",
		"00000000000",
		"00000000000",
		"00000000000",
		"00000000000",
		"00000111000",
	}},
	{Name: "mum", Rows: []string{
		"00000000000",
		"00000000000",
		"00000000000",
		"10001010001",
		"11011011011",
		"10101010101",
		"10001010001",
		"10001010001",
		"00000000000",
		"00000000000",
	}},
}

// IconFromGrid turns the selection mask into an icon. Column C-1 becomes the
// leftmost bit.
func IconFromGrid(name string, grid *model.Grid) Icon {
	mask := grid.SelectionMask()
	icon := Icon{Name: name, Rows: make([]string, len(mask))}
	for r, row := range mask {
		var b strings.Builder
		for c := len(row) - 1; c >= 0; c-- {
			if row[c] {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		icon.Rows[r] = b.String()
	}
	return icon
}

// IconHeader renders the PROGMEM icon table: the face selection copies times,
// followed by the built-in icons when they fit the grid.
func IconHeader(grid *model.Grid, copies int) (string, error) {
	rows, cols := grid.Rows(), grid.Cols()
	if cols > maxIconCols {
		return "", fmt.Errorf("%w: icons hold at most %d columns, grid has %d", model.ErrInvalidInput, maxIconCols, cols)
	}
	if copies < 1 {
		copies = 1
	}

	icons := make([]Icon, 0, copies+len(builtinIcons))
	face := IconFromGrid("face", grid)
	for i := 0; i < copies; i++ {
		icons = append(icons, face)
	}
	if rows == model.DefaultRows && cols == model.DefaultCols {
		icons = append(icons, builtinIcons...)
	}

	name := fmt.Sprintf("GRAFIK_%dX%d", cols, rows)
	var b strings.Builder
	b.WriteString("#pragma once\n\n")
	fmt.Fprintf(&b, "#define %s_ROWS %d\n", name, rows)
	fmt.Fprintf(&b, "#define %s_COLS %d\n\n", name, cols)
	// The firmware declares the inner dimension with the column count.
	fmt.Fprintf(&b, "const uint16_t %s[][%d] PROGMEM = {\n", strings.ToLower(name), max(rows, cols))

	width := len("{0b" + strings.Repeat("0", cols) + ",")
	for i, icon := range icons {
		for r, bits := range icon.Rows {
			var line string
			switch {
			case r == 0 && len(icon.Rows) == 1:
				line = "{0b" + bits + "},"
			case r == 0:
				line = "{0b" + bits + ","
			case r == len(icon.Rows)-1:
				line = " 0b" + bits + "},"
			default:
				line = " 0b" + bits + ","
			}
			comment := iconComment(grid, icon, r)
			if r == 0 {
				comment += fmt.Sprintf("  %d %s", i, icon.Name)
			}
			fmt.Fprintf(&b, "%-*s // %s\n", width+1, line, comment)
		}
	}
	b.WriteString("};\n")
	return b.String(), nil
}

// iconComment shows the face letters of the lit bits of row r in reading order.
func iconComment(grid *model.Grid, icon Icon, r int) string {
	bits := icon.Rows[r]
	cols := len(bits)
	parts := make([]string, cols)
	for c := 0; c < cols; c++ {
		if bits[cols-1-c] != '1' {
			parts[c] = "."
			continue
		}
		s, err := grid.Cell(r, c)
		if err != nil || s == model.Blank {
			s = "#"
		}
		parts[c] = s
	}
	return strings.Join(parts, " ")
}
