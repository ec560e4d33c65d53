package lists

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/rules/ruletest"
)

const sample = `\begin{itemize}
\item первый пункт;
\item Второй пункт. Ещё предложение;
\item значение 3.5 и \ref{a.b};
\item[-] последний
\end{itemize}
\begin{enumerate}[label=a)]
\item один
  \begin{itemize}
  \item вложенный;
  \end{itemize}
\item два.
\end{enumerate}
\begin{description}
\item \textbf{Термин} описание.
\end{description}
`

func TestCustomRule_Check(t *testing.T) {
	rule := NewCustomRule(domain.DefaultConfig().Rules.Lists)

	issues, err := rule.Check(context.Background(), ruletest.Context(sample))
	require.NoError(t, err)

	assert.Equal(t, []string{"LST001:14:1", "LST001:7:1", "LST001:5:1"}, ruletest.Locations(issues))
	assert.Equal(t, "custom list environment used", issues[0].Message)
	assert.Equal(t, "list has custom begin options", issues[1].Message)
	assert.Equal(t, "list item uses custom label", issues[2].Message)
}

func TestCustomRule_OptionsAllowed(t *testing.T) {
	cfg := domain.DefaultConfig().Rules.Lists
	cfg.DisallowBeginOptional = false
	cfg.DisallowItemOptional = false

	issues, err := NewCustomRule(cfg).Check(context.Background(), ruletest.Context(sample))
	require.NoError(t, err)
	assert.Equal(t, []string{"LST001:14:1"}, ruletest.Locations(issues))
}

func TestNestedRule_Check(t *testing.T) {
	rule := NewNestedRule(domain.DefaultConfig().Rules.Lists.ListEnvs)

	issues, err := rule.Check(context.Background(), ruletest.Context(sample))
	require.NoError(t, err)
	assert.Equal(t, []string{"LST002:9:3"}, ruletest.Locations(issues))
}

func TestPunctuationRule_Check(t *testing.T) {
	cfg := domain.DefaultConfig()
	rule := NewPunctuationRule(cfg.Rules.Lists.ListEnvs, cfg.Rules.ListItems)

	issues, err := rule.Check(context.Background(), ruletest.Context(sample))
	require.NoError(t, err)

	assert.Equal(t, []string{"LST004:3:19", "LST003:5:18", "LST003:11:15"}, ruletest.Locations(issues))
	assert.Equal(t, "list item contains multiple sentences", issues[0].Message)
	assert.Equal(t, "list item must end with '.'", issues[1].Message)
	assert.Equal(t, "list item must end with ';'", issues[2].Message)
}

func TestCaseRule_Check(t *testing.T) {
	cfg := domain.DefaultConfig()
	rule := NewCaseRule(cfg.Rules.Lists.ListEnvs, cfg.Rules.ListItems)

	issues, err := rule.Check(context.Background(), ruletest.Context(sample))
	require.NoError(t, err)
	assert.Equal(t, []string{"LST005:3:7", "LST005:15:15"}, ruletest.Locations(issues))
}

func TestCollectItems(t *testing.T) {
	text := `\begin{itemize}\item a \item[x] b\end{itemize} \item outside`

	lists := collectItems(text, envSet([]string{"itemize"}))

	require.Len(t, lists, 1)
	require.Len(t, lists[0], 2)
	assert.Equal(t, "a ", text[lists[0][0].ContentStart:lists[0][0].End])
	assert.Equal(t, "b", text[lists[0][1].ContentStart:lists[0][1].End])
}

func TestCollectItems_UnterminatedList(t *testing.T) {
	text := `\begin{enumerate*}\item last`

	lists := collectItems(text, envSet([]string{"enumerate"}))

	require.Len(t, lists, 1)
	require.Len(t, lists[0], 1)
	assert.Equal(t, len(text), lists[0][0].End)
}
