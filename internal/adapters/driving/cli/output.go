package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
)

// printer renders reports, styling them only on a terminal.
type printer struct {
	color    bool
	location lipgloss.Style
	rule     lipgloss.Style
	caret    lipgloss.Style
	failure  lipgloss.Style
	success  lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	return &printer{
		color:    !noColor && isTerminal(w),
		location: lipgloss.NewStyle().Bold(true),
		rule:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
		caret:    lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")).Bold(true),
		failure:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
		success:  lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *printer) render(style lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return style.Render(text)
}

// writeReport prints the report in the selected output format.
func writeReport(w io.Writer, report *domain.Report) error {
	if outputFormat == formatJSON {
		return writeJSON(w, report)
	}
	newPrinter(w).writeText(w, report)
	return nil
}

func (p *printer) writeText(w io.Writer, report *domain.Report) {
	for _, issue := range report.Issues {
		fmt.Fprintln(w, p.formatIssue(issue, report.BaseDir))
	}

	switch {
	case report.HasIssues():
		fmt.Fprintln(w, p.render(p.failure, fmt.Sprintf("%d issue(s) found.", len(report.Issues))))
	default:
		fmt.Fprintln(w, p.render(p.success, "No issues found."))
	}
	if report.Suppressed > 0 {
		fmt.Fprintf(w, "%d issue(s) suppressed by the baseline.\n", report.Suppressed)
	}
}

// formatIssue renders one issue followed by its line and a caret under
// the reported column.
func (p *printer) formatIssue(issue domain.Issue, baseDir string) string {
	location := fmt.Sprintf("%s:%d:%d", domain.RelPath(issue.Path, baseDir), issue.Line, issue.Col)
	lines := []string{fmt.Sprintf("%s [%s] %s", p.render(p.location, location), p.render(p.rule, issue.RuleID), issue.Message)}
	if issue.Snippet != "" {
		lines = append(lines, "  | "+issue.Snippet)
		if issue.Col > 0 {
			lines = append(lines, "  | "+strings.Repeat(" ", issue.Col-1)+p.render(p.caret, "^"))
		}
	}
	return strings.Join(lines, "\n")
}

// jsonIssue is an issue with its path relative to the base directory.
type jsonIssue struct {
	domain.Issue
	Path string `json:"path"`
}

type jsonReport struct {
	Issues     []jsonIssue `json:"issues"`
	Count      int         `json:"count"`
	Suppressed int         `json:"suppressed"`
	Files      []string    `json:"files"`
}

func writeJSON(w io.Writer, report *domain.Report) error {
	out := jsonReport{
		Issues:     make([]jsonIssue, len(report.Issues)),
		Count:      len(report.Issues),
		Suppressed: report.Suppressed,
		Files:      make([]string, len(report.Files)),
	}
	for i, issue := range report.Issues {
		out.Issues[i] = jsonIssue{Issue: issue, Path: domain.RelPath(issue.Path, report.BaseDir)}
	}
	for i, path := range report.Files {
		out.Files[i] = domain.RelPath(path, report.BaseDir)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
