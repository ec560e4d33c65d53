package domain

// defaultSkipCommands are commands whose arguments never hold prose.
var defaultSkipCommands = []string{
	"include", "input",
	"cite", "citep", "citet", "citealp", "citeauthor", "citeyear", "citeyearpar",
	"ref", "eqref", "autoref", "pageref", "cref", "Cref",
	"label", "url", "href", "hyperref",
	"includegraphics", "includepdf", "graphicspath",
}

var defaultTwoArgCommands = []string{"href", "hyperref"}

var defaultRefCommands = []string{"ref", "eqref", "autoref", "pageref", "cref", "Cref"}

var defaultSpellIgnoreEnvs = []string{
	"lstlisting", "verbatim", "verbatim*", "minted", "tikzpicture",
	"equation", "equation*", "align", "align*",
	"gather", "gather*", "multline", "multline*",
}

// DefaultConfig returns the built-in configuration. Every call returns a
// fresh copy that callers may modify.
func DefaultConfig() Config {
	return Config{
		Document: DocumentConfig{
			Root:    DefaultDocumentRoot,
			Exclude: []string{},
		},
		Rules: RulesConfig{
			Disabled: []string{},
			Images: ImagesRuleConfig{
				RequiredWidth: `0.9\textwidth`,
			},
			Refs: CommandsRuleConfig{
				Commands: clone(defaultRefCommands),
			},
			Links: CommandsRuleConfig{
				Commands: append(clone(defaultRefCommands),
					"cite", "citep", "citet", "citealp", "citeauthor", "citeyear", "citeyearpar",
					"url", "href", "hyperref"),
			},
			Styles: CommandsRuleConfig{
				Commands: []string{"underline", "uline", "ul", "textit", "textsl", "emph", "em", "itshape", "it"},
			},
			Lists: ListsRuleConfig{
				AllowedEnvs:           []string{"itemize", "enumerate"},
				ListEnvs:              []string{"itemize", "enumerate", "description", "list"},
				DisallowBeginOptional: true,
				DisallowItemOptional:  true,
			},
			Captions: CaptionsRuleConfig{
				Commands:       []string{"caption", "captionof"},
				ForbidTrailing: []string{".", ",", ";", ":", "!", "?"},
			},
			Illustrations: IllustrationsRuleConfig{
				Envs:        []string{"figure", "table", "figure*", "table*"},
				RefCommands: []string{"ref", "autoref", "cref", "Cref", "pageref", "eqref"},
			},
			Abbrev: AbbrevRuleConfig{
				BannedWords: []string{"см", "рис", "табл", "стр", "гл", "разд", "прил"},
				BannedPatterns: []string{
					`\bт\.\s*д\.`,
					`\bт\.\s*п\.`,
					`\bи\s+т\.\s*д\.`,
					`\bи\s+т\.\s*п\.`,
					`\bт\.\s*е\.`,
					`\bт\.\s*к\.`,
					`\bт\.\s*о\.`,
					`\bи\s+др\.`,
				},
				AllowWords:     []string{},
				SkipCommands:   clone(defaultSkipCommands),
				TwoArgCommands: clone(defaultTwoArgCommands),
			},
			Unicode: UnicodeRuleConfig{
				AllowedExtra: []string{"№", "«", "»"},
			},
			ListItems: ListItemsRuleConfig{
				SkipCommands:    clone(defaultSkipCommands),
				TwoArgCommands:  clone(defaultTwoArgCommands),
				SentenceEndings: []string{".", "!", "?"},
				LastEnd:         ".",
				NonLastEnd:      ";",
			},
		},
		Spellcheck: SpellcheckConfig{
			CustomDict:              "dictionaries/custom.txt",
			ExtraRuDicts:            []string{"dictionaries/ru.txt"},
			ExtraEnDicts:            []string{},
			SystemEnDicts:           []string{"/usr/share/dict/words", "/usr/dict/words"},
			IgnoreEnvs:              clone(defaultSpellIgnoreEnvs),
			SkipCommands:            clone(defaultSkipCommands),
			KeepCommands:            []string{"textbf", "textrm", "textsf", "texttt", "textsc"},
			MinWordLength:           2,
			IgnoreUppercaseAcronyms: true,
		},
		Baseline: BaselineConfig{
			Dir: ".lint-gost-tex",
		},
		Watch: WatchConfig{
			IntervalMS: 500,
			Extensions: []string{".tex", ".toml", ".txt"},
		},
	}
}

func clone(values []string) []string {
	return append([]string(nil), values...)
}
