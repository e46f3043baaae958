package infra

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/format"
	"github.com/Grupo-MCR/refatoracao-sistema-legado/internal/model"

	"github.com/go-pdf/fpdf"
)

// GerarReciboPDF renders a thermal-paper sized receipt for a paid sale and
// writes it to storagePath/recibo_<codigo>.pdf, returning the file path.
// venda must have Itens.Produto and Cliente preloaded.
func GerarReciboPDF(venda *model.Venda, loja, storagePath string, loc *time.Location) (string, error) {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	codigo := format.CodigoVenda(venda.ID)
	filePath := filepath.Join(storagePath, "recibo_"+codigo+".pdf")

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 80, Ht: 140},
	})
	// Core fonts are cp1252; accents in product names need translating.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	w := pageW - 8
	colDesc, colQtd, colSub := w*0.55, w*0.13, w*0.32

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(w, 7, tr(loja), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(w, 5, tr("Recibo de venda"), "", 1, "C", false, 0, "")
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(w, 5, "Venda "+codigo, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(w, 4, venda.DataVenda.In(loc).Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	cliente := "Cliente não identificado"
	if venda.Cliente != nil {
		cliente = venda.Cliente.Nome
	}
	pdf.CellFormat(w, 4, tr(cliente), "", 1, "L", false, 0, "")
	pdf.Ln(1)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(colDesc, 5, tr("Descrição"), "B", 0, "L", false, 0, "")
	pdf.CellFormat(colQtd, 5, "Qtd", "B", 0, "C", false, 0, "")
	pdf.CellFormat(colSub, 5, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, item := range venda.Itens {
		desc := fmt.Sprintf("Produto %d", item.ProdutoID)
		if item.Produto != nil {
			desc = item.Produto.Descricao
		}
		pdf.CellFormat(colDesc, 5, tr(format.Truncar(desc, 26)), "", 0, "L", false, 0, "")
		pdf.CellFormat(colQtd, 5, fmt.Sprintf("%d", item.Quantidade), "", 0, "C", false, 0, "")
		pdf.CellFormat(colSub, 5, tr(format.FormatarMoeda(item.Subtotal)), "", 1, "R", false, 0, "")
	}

	pdf.Ln(1)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(colDesc+colQtd, 6, "TOTAL", "", 0, "L", false, 0, "")
	pdf.CellFormat(colSub, 6, tr(format.FormatarMoeda(venda.TotalVenda)), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(colDesc+colQtd, 4, "Troco", "", 0, "L", false, 0, "")
	pdf.CellFormat(colSub, 4, tr(format.FormatarMoeda(venda.Troco)), "", 1, "R", false, 0, "")

	if venda.Observacoes != "" {
		pdf.Ln(2)
		pdf.MultiCell(w, 3.5, tr(venda.Observacoes), "", "L", false)
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(w, 4, tr("Obrigado pela preferência!"), "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
