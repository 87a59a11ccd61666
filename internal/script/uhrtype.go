// Package script renders the C++ headers the clock firmware compiles in:
// the FrontWord switch of a face layout and the icon bitmaps.
package script

import (
	"fmt"
	"strings"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/resolver"
)

const indent = "        "

// secondLabels are firmware enum values that share a case with a word.
var secondLabels = map[model.WordID]string{
	model.WordVor:  "v_vor",
	model.WordNach: "v_nach",
}

// ClassName returns the C++ class name for a grid size, e.g. De10x11_t.
func ClassName(rows, cols int) string {
	return fmt.Sprintf("De%dx%d_t", rows, cols)
}

// Check returns one warning per layout word that is neither found nor
// switched off by the options.
func Check(states []model.WordState) []string {
	var warnings []string
	for _, st := range states {
		switch st.Status {
		case model.StatusMissing:
			warnings = append(warnings, fmt.Sprintf("word %d %q is not on the face", st.Index, st.Word.Text))
		case model.StatusExcluded:
			warnings = append(warnings, fmt.Sprintf("word %d %q is only in the wrong place", st.Index, st.Word.Text))
		}
	}
	return warnings
}

type caseBlock struct {
	labels []string
	spans  []model.Span
}

// cases builds the switch cases in emission order. Only the first placement
// of each identity is used.
func cases(layout model.Layout, placements []model.Placement, opts model.Options) []caseBlock {
	var out []caseBlock

	if es, ok := resolver.First(placements, model.WordEs); ok {
		spans := []model.Span{es.Span()}
		if ist, ok := resolver.First(placements, model.WordIst); ok {
			spans = append(spans, ist.Span())
		}
		out = append(out, caseBlock{labels: []string{"es_ist"}, spans: spans})
	}

	seen := map[model.WordID]bool{model.WordEs: true, model.WordIst: true}
	for _, w := range layout.Words {
		if seen[w.ID] {
			continue
		}
		seen[w.ID] = true
		name, ok := w.ID.FrontWord()
		if !ok || resolver.Disabled(w.ID, opts) {
			continue
		}
		p, ok := resolver.First(placements, w.ID)
		if !ok {
			continue
		}
		spans := []model.Span{p.Span()}
		if w.ID == model.WordDreiviertel {
			v, ok := resolver.First(placements, model.WordViertel)
			if !ok {
				continue
			}
			spans = combine(p.Span(), v.Span())
		}
		labels := []string{name}
		if second, ok := secondLabels[w.ID]; ok {
			labels = append(labels, second)
		}
		out = append(out, caseBlock{labels: labels, spans: spans})
	}

	for _, extra := range layout.Extras {
		if len(extra.Spans) > 0 {
			out = append(out, caseBlock{labels: []string{extra.Name}, spans: extra.Spans})
		}
	}
	return out
}

// combine merges two adjacent words into one span when they share a row.
func combine(a, b model.Span) []model.Span {
	if a.Row != b.Row {
		return []model.Span{a, b}
	}
	return []model.Span{{Row: a.Row, Start: min(a.Start, b.Start), End: max(a.End, b.End)}}
}

// Header renders the uhrtype header for a face.
func Header(grid *model.Grid, layout model.Layout, placements []model.Placement, opts model.Options) string {
	var b strings.Builder
	rows, cols := grid.Rows(), grid.Cols()
	class := ClassName(rows, cols)

	b.WriteString("#pragma once\n\n#include \"Uhrtype.hpp\"\n\n")
	writeGridComment(&b, grid)
	b.WriteString("\n")

	fmt.Fprintf(&b, "class %s : public iUhrType {\n", class)
	b.WriteString("public:\n")
	b.WriteString("    virtual LanguageAbbreviation usedLang() override {\n")
	b.WriteString("        return LanguageAbbreviation::DE;\n")
	b.WriteString("    };\n\n")
	fmt.Fprintf(&b, "    virtual const bool hasZwanzig() override { return %t; }\n", !opts.NoZwanzig)
	fmt.Fprintf(&b, "    virtual const bool hasDreiviertel() override { return %t; }\n\n", !opts.NoDreiviertel)
	b.WriteString("    //------------------------------------------------------------------------------\n\n")
	b.WriteString("    void show(FrontWord word) override {\n")
	b.WriteString("        switch (word) {\n\n")

	for _, cb := range cases(layout, placements, opts) {
		for _, l := range cb.labels {
			fmt.Fprintf(&b, "%scase FrontWord::%s:\n", indent, l)
		}
		for _, s := range cb.spans {
			fmt.Fprintf(&b, "%s    setFrontMatrixWord(%d, %d, %d);\n", indent, s.Row, s.Start, s.End)
		}
		fmt.Fprintf(&b, "%s    break;\n\n", indent)
	}

	fmt.Fprintf(&b, "%sdefault:\n%s    break;\n", indent, indent)
	b.WriteString("        };\n")
	b.WriteString("    };\n")
	b.WriteString("};\n\n")
	fmt.Fprintf(&b, "%s _%s;\n", class, strings.TrimSuffix(strings.ToLower(class), "_t"))
	return b.String()
}

// writeGridComment draws the face as a C comment with right-to-left column numbers.
func writeGridComment(b *strings.Builder, grid *model.Grid) {
	rows, cols := grid.Rows(), grid.Cols()
	b.WriteString("/*\n")
	b.WriteString(" *           Layout Front\n")
	fmt.Fprintf(b, " *%sCOL\n", strings.Repeat(" ", 6+cols*3/2))
	b.WriteString(" *      ")
	for c := cols - 1; c >= 0; c-- {
		fmt.Fprintf(b, "%3d", c)
	}
	b.WriteString("\n * ROW +")
	b.WriteString(strings.Repeat("  -", cols))
	b.WriteString("\n")
	for r := 0; r < rows; r++ {
		fmt.Fprintf(b, " * %3d |", r)
		for c := 0; c < cols; c++ {
			s, _ := grid.Cell(r, c)
			fmt.Fprintf(b, "%3s", s)
		}
		b.WriteString("\n")
	}
	b.WriteString(" */\n")
}
