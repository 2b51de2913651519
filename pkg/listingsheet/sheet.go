// Package listingsheet renders the printable "Ficha de Propiedad" of a listing.
package listingsheet

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	noDescription = "No se proporcionó descripción."
	noServices    = "No hay servicios disponibles"
	noAmenities   = "No hay amenidades"
)

// Sheet holds the already formatted values printed on the listing sheet.
type Sheet struct {
	Agency      string
	Date        string
	Year        int
	Title       string
	Type        string
	Status      string
	Price       string
	Location    string
	CoveredArea string
	TotalArea   string
	Bedrooms    string
	Bathrooms   string
	Owner       string
	Description string
	Services    []string
	Amenities   []string
}

type section struct {
	fill   [3]int
	border [3]int
}

var (
	plainSection    = section{fill: [3]int{249, 249, 249}, border: [3]int{224, 224, 224}}
	servicesSection = section{fill: [3]int{230, 243, 255}, border: [3]int{179, 217, 255}}
	amenitySection  = section{fill: [3]int{240, 230, 255}, border: [3]int{209, 179, 255}}
)

// Render writes an A4 portrait PDF for the sheet.
func Render(s *Sheet) ([]byte, error) {
	if s.Year == 0 {
		s.Year = time.Now().Year()
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(s.Title), false)
	pdf.SetAuthor(tr(s.Agency), false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-20)
		pdf.SetDrawColor(224, 224, 224)
		pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(136, 136, 136)
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("© %d %s - Información Confidencial", s.Year, s.Agency)), "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 5, tr("Documento generado automáticamente"), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	writeHeader(pdf, tr, s)
	writeDetails(pdf, tr, s)

	description := strings.TrimSpace(s.Description)
	if description == "" {
		description = noDescription
	}
	writeSection(pdf, tr, "Descripción", description, plainSection, "I")
	writeSection(pdf, tr, "Servicios", joinOr(s.Services, noServices), servicesSection, "")
	writeSection(pdf, tr, "Amenidades", joinOr(s.Amenities, noAmenities), amenitySection, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering listing sheet: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeader(pdf *fpdf.Fpdf, tr func(string) string, s *Sheet) {
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(26, 26, 26)
	pdf.CellFormat(110, 10, tr("Ficha de Propiedad"), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(44, 62, 80)
	pdf.CellFormat(0, 10, tr(s.Date), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(0, 7, tr("Información detallada y confidencial"), "", 1, "L", false, 0, "")

	pdf.SetDrawColor(224, 224, 224)
	pdf.SetLineWidth(0.6)
	pdf.Line(20, pdf.GetY()+3, 190, pdf.GetY()+3)
	pdf.SetLineWidth(0.2)
	pdf.Ln(10)
}

func writeDetails(pdf *fpdf.Fpdf, tr func(string) string, s *Sheet) {
	pdf.SetFont("Helvetica", "B", 15)
	pdf.SetTextColor(26, 26, 26)
	pdf.MultiCell(0, 8, tr(s.Title), "", "L", false)
	pdf.Ln(2)

	rows := [][2]string{
		{"Tipo", s.Type},
		{"Estado", s.Status},
		{"Precio", s.Price},
		{"Ubicación", s.Location},
		{"Superficie cubierta", s.CoveredArea},
		{"Superficie total", s.TotalArea},
		{"Dormitorios", s.Bedrooms},
		{"Baños", s.Bathrooms},
		{"Propietario", s.Owner},
	}
	for _, row := range rows {
		if strings.TrimSpace(row[1]) == "" {
			continue
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(85, 85, 85)
		pdf.CellFormat(50, 7, tr(row[0]+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(51, 51, 51)
		pdf.MultiCell(0, 7, tr(row[1]), "", "L", false)
	}
	pdf.Ln(6)
}

func writeSection(pdf *fpdf.Fpdf, tr func(string) string, title, body string, style section, bodyStyle string) {
	pdf.SetFillColor(style.fill[0], style.fill[1], style.fill[2])
	pdf.SetDrawColor(style.border[0], style.border[1], style.border[2])

	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(26, 26, 26)
	pdf.CellFormat(0, 10, tr(title), "LTR", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", bodyStyle, 11)
	pdf.SetTextColor(51, 51, 51)
	pdf.MultiCell(0, 6, tr(body), "LRB", "L", true)
	pdf.Ln(8)
}

func joinOr(values []string, empty string) string {
	if len(values) == 0 {
		return empty
	}
	return strings.Join(values, ", ")
}
