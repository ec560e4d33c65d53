package rules

import (
	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
	"github.com/gost-tex/lint-gost-tex/internal/rules/abbrev"
	"github.com/gost-tex/lint-gost-tex/internal/rules/captions"
	"github.com/gost-tex/lint-gost-tex/internal/rules/illustrations"
	"github.com/gost-tex/lint-gost-tex/internal/rules/images"
	"github.com/gost-tex/lint-gost-tex/internal/rules/lists"
	"github.com/gost-tex/lint-gost-tex/internal/rules/refs"
	"github.com/gost-tex/lint-gost-tex/internal/rules/spelling"
	"github.com/gost-tex/lint-gost-tex/internal/rules/styles"
	"github.com/gost-tex/lint-gost-tex/internal/rules/unicodechars"
)

// RegisterDefaults registers all built-in rules with the registry.
// words is used by the spell checker to read its dictionaries.
func RegisterDefaults(r *Registry, words driven.WordlistLoader) {
	r.Register("images", func(cfg *domain.Config) (driven.Rule, error) {
		return images.New(cfg.Rules.Images.RequiredWidth), nil
	})
	r.Register("ref_spacing", func(cfg *domain.Config) (driven.Rule, error) {
		return refs.NewSpacingRule(cfg.Rules.Refs.Commands), nil
	})
	r.Register("link_punctuation", func(cfg *domain.Config) (driven.Rule, error) {
		return refs.NewLinkRule(cfg.Rules.Links.Commands), nil
	})
	r.Register("styles", func(cfg *domain.Config) (driven.Rule, error) {
		return styles.New(cfg.Rules.Styles.Commands), nil
	})
	r.Register("custom_lists", func(cfg *domain.Config) (driven.Rule, error) {
		return lists.NewCustomRule(cfg.Rules.Lists), nil
	})
	r.Register("nested_lists", func(cfg *domain.Config) (driven.Rule, error) {
		return lists.NewNestedRule(cfg.Rules.Lists.ListEnvs), nil
	})
	r.Register("list_item_punctuation", func(cfg *domain.Config) (driven.Rule, error) {
		return lists.NewPunctuationRule(cfg.Rules.Lists.ListEnvs, cfg.Rules.ListItems), nil
	})
	r.Register("list_item_case", func(cfg *domain.Config) (driven.Rule, error) {
		return lists.NewCaseRule(cfg.Rules.Lists.ListEnvs, cfg.Rules.ListItems), nil
	})
	r.Register("captions", func(cfg *domain.Config) (driven.Rule, error) {
		return captions.New(cfg.Rules.Captions.Commands, cfg.Rules.Captions.ForbidTrailing), nil
	})
	r.Register("spelling", func(cfg *domain.Config) (driven.Rule, error) {
		return spelling.New(cfg.Spellcheck, words), nil
	})
	r.Register("illustrations", func(cfg *domain.Config) (driven.Rule, error) {
		return illustrations.New(cfg.Rules.Illustrations.Envs, cfg.Rules.Illustrations.RefCommands), nil
	})
	r.Register("abbrev", func(cfg *domain.Config) (driven.Rule, error) {
		return abbrev.New(cfg.Rules.Abbrev)
	})
	r.Register("unicode", func(cfg *domain.Config) (driven.Rule, error) {
		return unicodechars.New(cfg.Rules.Unicode.AllowedExtra), nil
	})
}
