package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/Miklesoft/HilfsProg-Wortuhr/internal/model"
)

// qrSize is the printed QR code size in mm.
const qrSize = 35.0

// QRSpan is the compact form of a found placement encoded in the QR code.
type QRSpan struct {
	Front string `json:"w"`
	Row   int    `json:"r"`
	Start int    `json:"s"`
	End   int    `json:"e"`
}

// CollectQRSpans keeps the first found placement of every mapped word.
func CollectQRSpans(placements []model.Placement) []QRSpan {
	seen := map[model.WordID]bool{}
	var out []QRSpan
	for _, p := range placements {
		if !p.Found() || p.Front == "" || seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		out = append(out, QRSpan{Front: p.Front, Row: p.Row, Start: p.Start, End: p.End})
	}
	return out
}

// renderQR draws a QR code of the placements at x, y.
func renderQR(pdf *fpdf.Fpdf, placements []model.Placement, x, y float64) error {
	spans := CollectQRSpans(placements)
	if len(spans) == 0 {
		return nil
	}
	qrData, err := json.Marshal(spans)
	if err != nil {
		return fmt.Errorf("failed to marshal placements: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Low, 512)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_placements_%d", len(spans))
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions(imgName, x, y, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(x, y+qrSize)
	pdf.CellFormat(qrSize, 3, fmt.Sprintf("%d words", len(spans)), "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	return nil
}
