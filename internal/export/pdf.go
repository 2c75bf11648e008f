package export

import (
	"bytes"

	"mutirao/internal/utils"
	"mutirao/pkg/types"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMarginLeft = 14.0
	pdfTitleY     = 16.0
	pdfTableY     = 20.0
	pdfRowHeight  = 8.0
)

// PDF renders one collection as a titled single-table A4 document. Unlike the
// CSV serializer, an unlinked area renders as an em-dash placeholder.
func PDF(kind Kind, volunteers []*types.Volunteer, areas []*types.Area, donations []*types.Donation) ([]byte, error) {
	title, head, body, err := pdfTable(kind, volunteers, areas, donations)
	if err != nil {
		return nil, err
	}

	doc := fpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetMargins(pdfMarginLeft, pdfTableY, pdfMarginLeft)
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	doc.SetFont("Helvetica", "", 14)
	doc.Text(pdfMarginLeft, pdfTitleY, tr(title))

	pageWidth, _ := doc.GetPageSize()
	colWidth := (pageWidth - 2*pdfMarginLeft) / float64(len(head))

	doc.SetY(pdfTableY)
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(41, 128, 185)
	doc.SetTextColor(255, 255, 255)
	for _, h := range head {
		doc.CellFormat(colWidth, pdfRowHeight, tr(h), "", 0, "L", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(0, 0, 0)
	for i, row := range body {
		if i%2 == 0 {
			doc.SetFillColor(255, 255, 255)
		} else {
			doc.SetFillColor(245, 245, 245)
		}
		for _, cell := range row {
			doc.CellFormat(colWidth, pdfRowHeight, tr(cell), "", 0, "L", true, 0, "")
		}
		doc.Ln(-1)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pdfTable builds the document pieces: title, capitalized header labels, and
// one body row per record in collection order.
func pdfTable(kind Kind, volunteers []*types.Volunteer, areas []*types.Area, donations []*types.Donation) (string, []string, [][]string, error) {
	switch kind {
	case KindVolunteers:
		body := make([][]string, 0, len(volunteers))
		for _, v := range volunteers {
			body = append(body, []string{
				v.ID,
				v.Name,
				utils.PtrString(v.Phone),
				utils.PtrString(v.Email),
				utils.PtrString(v.Skills),
				areaName(areas, v.AreaID, "—"),
			})
		}
		return "Relatório de Voluntários",
			[]string{"ID", "Nome", "Telefone", "Email", "Skills", "Área"},
			body, nil

	case KindAreas:
		body := make([][]string, 0, len(areas))
		for _, a := range areas {
			body = append(body, []string{
				a.ID,
				a.Name,
				a.CEP,
				utils.PtrString(a.City),
				utils.PtrString(a.State),
			})
		}
		return "Relatório de Áreas",
			[]string{"ID", "Nome", "CEP", "Cidade", "Estado"},
			body, nil

	case KindDonations:
		body := make([][]string, 0, len(donations))
		for _, d := range donations {
			body = append(body, []string{
				d.ID,
				d.Description,
				formatQuantity(d.Quantity),
				areaName(areas, d.AreaID, "—"),
			})
		}
		return "Relatório de Doações",
			[]string{"ID", "Descrição", "Quantidade", "Área"},
			body, nil
	}

	_, err := ParseKind(string(kind))
	return "", nil, nil, err
}
