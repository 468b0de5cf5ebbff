package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pigmint/ingestion-service/dto"
	"github.com/pigmint/ingestion-service/service"
)

// RuleHandler handles savings rule CRUD requests.
type RuleHandler struct {
	rules *service.RuleService
	log   zerolog.Logger
}

func NewRuleHandler(rules *service.RuleService, log zerolog.Logger) *RuleHandler {
	return &RuleHandler{rules: rules, log: log}
}

// CreateRule handles POST /api/v1/rules.
func (h *RuleHandler) CreateRule(c *gin.Context) {
	var req dto.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		sendError(c, http.StatusBadRequest, "invalid rule", err)
		return
	}

	rule, err := h.rules.CreateRule(req)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "failed to save rule", err)
		return
	}
	c.JSON(http.StatusCreated, rule)
}

// ListRules handles GET /api/v1/rules.
func (h *RuleHandler) ListRules(c *gin.Context) {
	rules, err := h.rules.ListRules()
	if err != nil {
		sendError(c, http.StatusInternalServerError, "failed to list rules", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules, "count": len(rules)})
}

// GetRule handles GET /api/v1/rules/:id.
func (h *RuleHandler) GetRule(c *gin.Context) {
	rule, err := h.rules.GetRule(c.Param("id"))
	if err != nil {
		notFoundOr(c, err, "rule")
		return
	}
	c.JSON(http.StatusOK, rule)
}

// UpdateRule handles PUT /api/v1/rules/:id. Absent body fields are left
// unchanged.
func (h *RuleHandler) UpdateRule(c *gin.Context) {
	var req dto.UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	rule, err := h.rules.UpdateRule(c.Param("id"), req)
	if err != nil {
		notFoundOr(c, err, "rule")
		return
	}
	c.JSON(http.StatusOK, rule)
}

// DeleteRule handles DELETE /api/v1/rules/:id.
func (h *RuleHandler) DeleteRule(c *gin.Context) {
	if err := h.rules.DeleteRule(c.Param("id")); err != nil {
		notFoundOr(c, err, "rule")
		return
	}
	c.Status(http.StatusNoContent)
}
