package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"backoffice/internal/dto"
	"backoffice/internal/utils"

	"github.com/phpdave11/gofpdf"
	"go.uber.org/zap"
)

// ProductsByCategoryPDF renders the product-by-category report as an A4 PDF.
func (s *ReportService) ProductsByCategoryPDF(ctx context.Context, requestID string) ([]byte, string, error) {
	reports, err := s.ProductsByCategory(ctx)
	if err != nil {
		return nil, "", err
	}
	at := s.clock()
	utils.LogEvent(s.Log, requestID, "reports", "products_by_category_pdf", "report rendered",
		zap.Int("categories", len(reports)))
	return buildProductCategoryPDF(reports, at)
}

// StockHistoryPDF renders the stock history report for the given range.
func (s *ReportService) StockHistoryPDF(ctx context.Context, requestID string, start, end *time.Time) ([]byte, string, error) {
	report, err := s.StockHistory(ctx, start, end)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.Log, requestID, "reports", "stock_history_pdf", "report rendered",
		zap.Int("changes", report.TotalChanges))
	return buildStockHistoryPDF(report)
}

func newReportPDF(title string, at time.Time) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, strings.ToUpper(title))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated: "+utils.FormatDateTime(at)+" UTC")
	pdf.Ln(10)
	return pdf
}

func buildProductCategoryPDF(reports []dto.ProductCategoryReportDTO, at time.Time) ([]byte, string, error) {
	pdf := newReportPDF("Products by category", at)

	if len(reports) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.Cell(0, 7, "No categories.")
		pdf.Ln(7)
	}
	for _, r := range reports {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, safe(r.CategoryName, "-"))
		pdf.Ln(8)

		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 6, fmt.Sprintf("Products: %d   Total: %s   Average: %s",
			r.ProductCount, utils.FormatMoney(r.TotalPrice), utils.FormatMoney(r.AveragePrice)))
		pdf.Ln(8)

		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(80, 6, "Name", "B", 0, "", false, 0, "")
		pdf.CellFormat(30, 6, "Price", "B", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, "Created", "B", 1, "R", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		for _, p := range r.Products {
			pdf.CellFormat(80, 6, utils.Truncate(safe(p.Name, "-"), 45), "", 0, "", false, 0, "")
			pdf.CellFormat(30, 6, utils.FormatMoney(p.Price), "", 0, "R", false, 0, "")
			pdf.CellFormat(40, 6, utils.FormatDate(p.CreatedAt), "", 1, "R", false, 0, "")
		}
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("PRODUCTS_BY_CATEGORY_%s.pdf", at.UTC().Format("20060102")), nil
}

func buildStockHistoryPDF(r dto.StockHistoryReportDTO) ([]byte, string, error) {
	pdf := newReportPDF("Stock history", r.EndDate)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Period: %s to %s", utils.FormatDate(r.StartDate), utils.FormatDate(r.EndDate)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Changes: %d   Additions: %d   Reductions: %d   Adjustments: %d",
		r.TotalChanges, r.TotalAdditions, r.TotalReductions, r.TotalAdjustments))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(35, 6, "When", "B", 0, "", false, 0, "")
	pdf.CellFormat(60, 6, "Product", "B", 0, "", false, 0, "")
	pdf.CellFormat(25, 6, "Type", "B", 0, "", false, 0, "")
	pdf.CellFormat(20, 6, "Before", "B", 0, "R", false, 0, "")
	pdf.CellFormat(20, 6, "After", "B", 0, "R", false, 0, "")
	pdf.CellFormat(20, 6, "Change", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, c := range r.Changes {
		pdf.CellFormat(35, 6, utils.FormatDateTime(c.ChangedAt), "", 0, "", false, 0, "")
		pdf.CellFormat(60, 6, utils.Truncate(safe(c.ProductName, c.ProductID.String()), 32), "", 0, "", false, 0, "")
		pdf.CellFormat(25, 6, c.ChangeType, "", 0, "", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", c.PreviousQuantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", c.NewQuantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%+d", c.QuantityChange), "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("STOCK_HISTORY_%s_%s.pdf",
		r.StartDate.UTC().Format("20060102"), r.EndDate.UTC().Format("20060102"))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
