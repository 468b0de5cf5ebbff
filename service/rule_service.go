package service

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/pigmint/ingestion-service/dto"
	"github.com/pigmint/ingestion-service/storage"
)

// DefaultRuleType is assigned when a rule is created without one.
const DefaultRuleType = "vendor_match"

// RuleService manages savings rules and matches them against transactions.
type RuleService struct {
	store storage.Store
	log   zerolog.Logger
}

func NewRuleService(store storage.Store, log zerolog.Logger) *RuleService {
	return &RuleService{store: store, log: log}
}

// CreateRule persists a new rule. New rules start active.
func (s *RuleService) CreateRule(req dto.CreateRuleRequest) (*dto.Rule, error) {
	ruleType := req.RuleType
	if ruleType == "" {
		ruleType = DefaultRuleType
	}

	rule := &dto.Rule{
		VendorMatch: req.VendorMatch,
		SaveAmount:  req.SaveAmount,
		RuleType:    ruleType,
		IsActive:    true,
	}
	if err := s.store.SaveRule(rule); err != nil {
		return nil, err
	}

	s.log.Info().Str("rule_id", rule.ID).Str("vendor_match", rule.VendorMatch).Msg("rule created")
	return rule, nil
}

// UpdateRule applies the non-nil fields of req to an existing rule.
func (s *RuleService) UpdateRule(id string, req dto.UpdateRuleRequest) (*dto.Rule, error) {
	rule, err := s.store.GetRule(id)
	if err != nil {
		return nil, err
	}

	if req.VendorMatch != nil {
		rule.VendorMatch = *req.VendorMatch
	}
	if req.SaveAmount != nil {
		rule.SaveAmount = *req.SaveAmount
	}
	if req.RuleType != nil {
		rule.RuleType = *req.RuleType
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}

	if err := s.store.SaveRule(rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *RuleService) GetRule(id string) (*dto.Rule, error) {
	return s.store.GetRule(id)
}

func (s *RuleService) ListRules() ([]*dto.Rule, error) {
	return s.store.ListRules()
}

func (s *RuleService) DeleteRule(id string) error {
	return s.store.DeleteRule(id)
}

// MatchTransaction returns the active rules whose vendor pattern appears
// in the transaction's vendor, case-insensitively.
func (s *RuleService) MatchTransaction(t dto.Transaction) ([]*dto.Rule, error) {
	rules, err := s.store.ListRules()
	if err != nil {
		return nil, err
	}

	vendor := strings.ToLower(t.Vendor)
	var matched []*dto.Rule
	for _, rule := range rules {
		if !rule.IsActive || rule.VendorMatch == "" {
			continue
		}
		if strings.Contains(vendor, strings.ToLower(rule.VendorMatch)) {
			matched = append(matched, rule)
		}
	}
	return matched, nil
}
