package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pigmint/ingestion-service/dto"
	"github.com/pigmint/ingestion-service/service"
	"github.com/pigmint/ingestion-service/utils"
)

// ReceiptHandler handles receipt scan requests. Scans never hard-fail:
// every response is 200 with a best-effort record, degraded results carry
// an error annotation.
type ReceiptHandler struct {
	receipts     *service.ReceiptService
	transactions *service.TransactionService
	log          zerolog.Logger
}

func NewReceiptHandler(receipts *service.ReceiptService, transactions *service.TransactionService, log zerolog.Logger) *ReceiptHandler {
	return &ReceiptHandler{receipts: receipts, transactions: transactions, log: log}
}

// ScanReceipt handles POST /api/v1/receipts/scan.
func (h *ReceiptHandler) ScanReceipt(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		h.log.Warn().Err(err).Msg("receipt scan request without a file")
		h.respond(c, dto.ScanResult{
			Vendor:   "Unknown",
			Category: dto.DefaultCategory,
			Date:     utils.Today(),
			Error:    "No file uploaded",
		})
		return
	}

	f, err := header.Open()
	if err != nil {
		sendError(c, http.StatusInternalServerError, "failed to open uploaded file", err)
		return
	}
	defer f.Close()

	image, err := io.ReadAll(f)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "failed to read uploaded file", err)
		return
	}

	result := h.receipts.ScanReceipt(c.Request.Context(), image, header.Filename)
	h.respond(c, result)
}

// respond persists the scan as a transaction and writes the scan body.
// Persistence failures are the only hard failure on this path.
func (h *ReceiptHandler) respond(c *gin.Context, result dto.ScanResult) {
	t := result.Transaction()
	saved, err := h.transactions.SaveImported([]dto.Transaction{t})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "failed to save scanned transaction", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transaction": saved[0],
		"raw_text":    result.RawText,
		"error":       result.Error,
	})
}
