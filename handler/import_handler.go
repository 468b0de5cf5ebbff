package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pigmint/ingestion-service/dto"
	"github.com/pigmint/ingestion-service/service"
)

// ImportHandler handles file import requests.
type ImportHandler struct {
	imports      *service.ImportService
	transactions *service.TransactionService
	maxUpload    int64
	log          zerolog.Logger
}

func NewImportHandler(imports *service.ImportService, transactions *service.TransactionService, maxUpload int64, log zerolog.Logger) *ImportHandler {
	return &ImportHandler{
		imports:      imports,
		transactions: transactions,
		maxUpload:    maxUpload,
		log:          log,
	}
}

// ImportFile handles POST /api/v1/imports. The uploaded file is normalized
// into transactions, persisted, and echoed back.
func (h *ImportHandler) ImportFile(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		sendError(c, http.StatusBadRequest, "a file is required", err)
		return
	}
	if h.maxUpload > 0 && header.Size > h.maxUpload {
		sendError(c, http.StatusBadRequest, "file exceeds the upload size limit", nil)
		return
	}

	f, err := header.Open()
	if err != nil {
		sendError(c, http.StatusInternalServerError, "failed to open uploaded file", err)
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "failed to read uploaded file", err)
		return
	}

	h.log.Info().Str("filename", header.Filename).Int64("size", header.Size).Msg("import request received")

	records, err := h.imports.ImportFile(c.Request.Context(), header.Filename, content)
	if err != nil {
		switch {
		case errors.Is(err, dto.ErrUnsupportedFormat),
			errors.Is(err, dto.ErrEmptyDataset),
			errors.Is(err, dto.ErrDecodeFailure):
			sendError(c, http.StatusBadRequest, "could not import file", err)
		default:
			sendError(c, http.StatusInternalServerError, "import failed", err)
		}
		return
	}

	saved, err := h.transactions.SaveImported(records)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "failed to save imported transactions", err)
		return
	}

	c.JSON(http.StatusOK, dto.ImportResponse{
		Filename:     header.Filename,
		Count:        len(saved),
		Transactions: saved,
	})
}
