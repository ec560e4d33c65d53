package services

import (
	"fmt"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driving"
)

// Ensure RuleCatalogService implements the interface.
var _ driving.RuleCatalog = (*RuleCatalogService)(nil)

// RuleCatalogService lists the registered rules.
type RuleCatalogService struct {
	rules driven.RuleFactory
}

// NewRuleCatalogService creates a new rule catalog.
func NewRuleCatalogService(rules driven.RuleFactory) *RuleCatalogService {
	return &RuleCatalogService{rules: rules}
}

// List builds the rules from the default configuration and describes them.
func (s *RuleCatalogService) List() ([]domain.RuleInfo, error) {
	cfg := domain.DefaultConfig()
	set, err := s.rules.BuildSet(&cfg)
	if err != nil {
		return nil, fmt.Errorf("building rules: %w", err)
	}
	return set.Catalog(), nil
}
