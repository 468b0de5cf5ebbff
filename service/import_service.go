package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/pigmint/ingestion-service/dto"
	"github.com/pigmint/ingestion-service/utils"
)

// Field synonym sets, ordered by preference. Order is the only tie-break
// when multiple candidates could match a column.
var (
	vendorFields   = []string{"vendor", "merchant", "description", "name", "payee", "store", "shop"}
	amountFields   = []string{"amount", "total", "price", "cost", "value", "sum", "charge", "payment"}
	categoryFields = []string{"category", "type", "class", "group", "tag"}
	dateFields     = []string{"date", "transaction_date", "purchase_date", "posted_date", "time", "timestamp"}
)

// ImportService normalizes uploaded files into canonical transactions.
// Stateless: every call is an independent unit of work.
type ImportService struct {
	receipts *ReceiptService
	log      zerolog.Logger
}

// NewImportService creates an import service. The receipt service handles
// the image path.
func NewImportService(receipts *ReceiptService, log zerolog.Logger) *ImportService {
	return &ImportService{receipts: receipts, log: log}
}

// ImportFile dispatches on the filename extension and returns the canonical
// records recovered from the file. Unrecognized extensions fail with
// dto.ErrUnsupportedFormat.
func (s *ImportService) ImportFile(ctx context.Context, filename string, content []byte) ([]dto.Transaction, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".xlsx", ".xls":
		rows, err := decodeWorkbook(content)
		if err != nil {
			return nil, err
		}
		return s.extractRows(filename, rows), nil
	case ".csv":
		rows, err := decodeCSV(content)
		if err != nil {
			return nil, err
		}
		return s.extractRows(filename, rows), nil
	case ".pdf":
		return []dto.Transaction{s.statementPlaceholder(filename, content)}, nil
	case ".jpg", ".jpeg", ".png":
		result := s.receipts.ScanReceipt(ctx, content, filename)
		return []dto.Transaction{result.Transaction()}, nil
	default:
		return nil, dto.ErrUnsupportedFormat
	}
}

// extractRows maps decoded rows through the tabular extractor and drops the
// ones that don't survive the filter. Sparse or irrelevant rows are
// expected in arbitrary uploads; dropping them is not an error.
func (s *ImportService) extractRows(filename string, rows []dto.RawRow) []dto.Transaction {
	transactions := make([]dto.Transaction, 0, len(rows))
	for _, row := range rows {
		if t, ok := extractRecord(row); ok {
			transactions = append(transactions, t)
		}
	}

	s.log.Info().
		Str("filename", filename).
		Int("rows", len(rows)).
		Int("transactions", len(transactions)).
		Msg("tabular import complete")
	return transactions
}

// extractRecord resolves the canonical fields of one decoded row. A row
// yields a record only when the vendor is usable and the amount is
// positive.
func extractRecord(row dto.RawRow) (dto.Transaction, bool) {
	vendor := strings.TrimSpace(utils.ResolveField(row, vendorFields))
	amount := utils.NormalizeAmount(strings.TrimSpace(utils.ResolveField(row, amountFields)))
	category := strings.TrimSpace(utils.ResolveField(row, categoryFields))
	if category == "" {
		category = dto.DefaultCategory
	}
	date := utils.NormalizeDate(utils.ResolveCell(row, dateFields))

	if vendor == "" || vendor == "undefined" || amount <= 0 {
		return dto.Transaction{}, false
	}
	return dto.Transaction{Vendor: vendor, Amount: amount, Category: category, Date: date}, true
}

// statementPlaceholder produces the inert stand-in record for PDF uploads.
// The bytes are only inspected for audit logging; true PDF parsing is not
// attempted.
func (s *ImportService) statementPlaceholder(filename string, content []byte) dto.Transaction {
	pages, err := api.PageCount(bytes.NewReader(content), model.NewDefaultConfiguration())
	if err != nil {
		s.log.Warn().Str("filename", filename).Err(err).Msg("pdf validation failed")
	} else {
		s.log.Info().Str("filename", filename).Int("pages", pages).Msg("pdf statement received")
	}

	return dto.Transaction{
		Vendor:   "Statement from " + baseName(filename),
		Amount:   0,
		Category: "Statement",
		Date:     utils.Today(),
	}
}

// decodeWorkbook decodes the first sheet of an Excel workbook, first row as
// headers. Cells that parse as numbers keep their numeric kind so that
// date serials survive until normalization.
func decodeWorkbook(content []byte) ([]dto.RawRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing workbook: %v", dto.ErrDecodeFailure, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, dto.ErrEmptyDataset
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet %q: %v", dto.ErrDecodeFailure, sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, dto.ErrEmptyDataset
	}

	headers := rows[0]
	decoded := make([]dto.RawRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		var row dto.RawRow
		for i, header := range headers {
			if i >= len(cells) || cells[i] == "" {
				row.Add(header, dto.Empty())
				continue
			}
			if n, err := strconv.ParseFloat(cells[i], 64); err == nil {
				row.Add(header, dto.Number(n))
			} else {
				row.Add(header, dto.Text(cells[i]))
			}
		}
		decoded = append(decoded, row)
	}
	return decoded, nil
}

// decodeCSV decodes a CSV file with header-row inference. Tolerates a UTF-8
// BOM, ragged rows, and stray quotes.
func decodeCSV(content []byte) ([]dto.RawRow, error) {
	content = bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))

	r := csv.NewReader(bytes.NewReader(content))
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	headers, err := r.Read()
	if err == io.EOF {
		return nil, dto.ErrEmptyDataset
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading csv header: %v", dto.ErrDecodeFailure, err)
	}

	var decoded []dto.RawRow
	for {
		cells, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading csv row: %v", dto.ErrDecodeFailure, err)
		}

		var row dto.RawRow
		for i, header := range headers {
			if i >= len(cells) {
				row.Add(header, dto.Empty())
				continue
			}
			row.Add(header, dto.Text(cells[i]))
		}
		decoded = append(decoded, row)
	}

	if len(decoded) == 0 {
		return nil, dto.ErrEmptyDataset
	}
	return decoded, nil
}

// baseName returns the filename portion before the first dot.
func baseName(filename string) string {
	if i := strings.IndexByte(filename, '.'); i >= 0 {
		return filename[:i]
	}
	return filename
}
