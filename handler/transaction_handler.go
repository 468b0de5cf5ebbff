package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pigmint/ingestion-service/dto"
	"github.com/pigmint/ingestion-service/service"
)

// TransactionHandler handles transaction CRUD requests.
type TransactionHandler struct {
	transactions *service.TransactionService
	rules        *service.RuleService
	log          zerolog.Logger
}

func NewTransactionHandler(transactions *service.TransactionService, rules *service.RuleService, log zerolog.Logger) *TransactionHandler {
	return &TransactionHandler{transactions: transactions, rules: rules, log: log}
}

// CreateTransaction handles POST /api/v1/transactions.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		sendError(c, http.StatusBadRequest, "invalid transaction", err)
		return
	}

	t, err := h.transactions.CreateTransaction(req)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "failed to save transaction", err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// ListTransactions handles GET /api/v1/transactions with limit/offset
// query parameters.
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	limit, offset := pagination(c)

	transactions, err := h.transactions.ListTransactions(limit, offset)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "failed to list transactions", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": transactions, "count": len(transactions)})
}

// GetTransaction handles GET /api/v1/transactions/:id.
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	t, err := h.transactions.GetTransaction(c.Param("id"))
	if err != nil {
		notFoundOr(c, err, "transaction")
		return
	}
	c.JSON(http.StatusOK, t)
}

// UpdateTransaction handles PUT /api/v1/transactions/:id. Absent body
// fields are left unchanged.
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	t, err := h.transactions.UpdateTransaction(c.Param("id"), req)
	if err != nil {
		notFoundOr(c, err, "transaction")
		return
	}
	c.JSON(http.StatusOK, t)
}

// DeleteTransaction handles DELETE /api/v1/transactions/:id.
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.transactions.DeleteTransaction(c.Param("id")); err != nil {
		notFoundOr(c, err, "transaction")
		return
	}
	c.Status(http.StatusNoContent)
}

// MatchRules handles GET /api/v1/transactions/:id/rules, returning the
// active savings rules matching the transaction's vendor.
func (h *TransactionHandler) MatchRules(c *gin.Context) {
	t, err := h.transactions.GetTransaction(c.Param("id"))
	if err != nil {
		notFoundOr(c, err, "transaction")
		return
	}

	matched, err := h.rules.MatchTransaction(*t)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "failed to match rules", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction_id": t.ID, "rules": matched})
}
