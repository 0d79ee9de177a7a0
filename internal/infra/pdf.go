package infra

// pdf.go: invoice rendering with go-pdf/fpdf. A4 portrait:
//   - Business name header
//   - Invoice number, issue date and status
//   - Client block (when the invoice has one)
//   - Bold total

import (
	"bytes"
	"fmt"

	"gestionpos/internal/model"

	"github.com/go-pdf/fpdf"
)

// PDFRenderer renders invoices in memory. Nothing is written to disk.
type PDFRenderer struct {
	Empresa string
}

func NewPDFRenderer(empresa string) *PDFRenderer {
	return &PDFRenderer{Empresa: empresa}
}

// RenderFactura returns the PDF bytes for f.
func (r *PDFRenderer) RenderFactura(f *model.Factura) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 10, tr(r.Empresa), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Factura", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Invoice info ──────────────────────────────────────────────────────────
	labelW := contentW * 0.3
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(labelW, 7, tr(label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(contentW-labelW, 7, tr(value), "", 1, "L", false, 0, "")
	}
	row("Número:", f.Numero)
	row("Fecha de emisión:", f.FechaEmision.Format("02/01/2006"))
	row("Estado:", f.Estado)

	// ── Client ────────────────────────────────────────────────────────────────
	if c := f.Cliente; c != nil {
		pdf.Ln(2)
		row("Cliente:", c.Nombre+" "+c.Apellido)
		if c.DNI != "" {
			row("DNI:", c.DNI)
		}
		if c.Direccion != "" {
			row("Dirección:", c.Direccion)
		}
	}

	pdf.Ln(4)
	y := pdf.GetY()
	pdf.Line(15, y, pageW-15, y)
	pdf.Ln(4)

	// ── Total ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW*0.7, 9, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.3, 9, "$"+f.Total.StringFixed(2), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render factura %s: %w", f.Numero, err)
	}
	return buf.Bytes(), nil
}
