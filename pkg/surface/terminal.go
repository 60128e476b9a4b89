package surface

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// TerminalRenderer renders a Report as a ranked table with ANSI color.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
	colorBold  = "\033[1m"
	colorDim   = "\033[2m"
)

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func green(s string) string {
	if noColor() {
		return s
	}
	return colorGreen + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, rep *Report) error {
	fmt.Fprintf(w, "%s\n\n", bold(fmt.Sprintf("Business Fit Ranking (%d tools)", len(rep.Tools))))

	if len(rep.Tools) == 0 {
		fmt.Fprintln(w, "No tools to rank.")
		return nil
	}

	nameWidth := len("TOOL")
	for _, t := range rep.Tools {
		if len(t.Name) > nameWidth {
			nameWidth = len(t.Name)
		}
	}

	fmt.Fprintf(w, "  %4s  %-*s  %s\n", "RANK", nameWidth, "TOOL", "SCORE")
	for _, t := range rep.Tools {
		line := fmt.Sprintf("  %4d  %-*s  %5.2f", t.Rank, nameWidth, t.Name, t.BusinessScore)
		if t.Rank == 1 {
			line = green(line)
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)

	// Weight table footer, stable order.
	criteria := make([]string, 0, len(rep.Weights))
	for c := range rep.Weights {
		criteria = append(criteria, c)
	}
	sort.Strings(criteria)
	for _, c := range criteria {
		fmt.Fprintf(w, "  %s\n", dim(fmt.Sprintf("%s: %.2f", c, rep.Weights[c])))
	}

	return nil
}
