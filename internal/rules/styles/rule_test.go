package styles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/rules/ruletest"
)

func TestRule_Check(t *testing.T) {
	text := `Обычный \textit{курсив} и \emph{акцент}.
\item \it x \underline{y} \itshape
% \uline{z}
\textbf{ok} \ul{u}`
	rule := New(domain.DefaultConfig().Rules.Styles.Commands)

	issues, err := rule.Check(context.Background(), ruletest.Context(text))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"TXT001:1:9", "TXT001:1:27",
		"TXT001:2:7", "TXT001:2:13", "TXT001:2:27",
		"TXT001:4:13",
	}, ruletest.Locations(issues))
}

func TestRule_MathIgnored(t *testing.T) {
	issues, err := New([]string{"mathit"}).Check(context.Background(), ruletest.Context(`$\mathit{x}$ \[\mathit{y}\]`))
	require.NoError(t, err)
	assert.Empty(t, issues)
}
