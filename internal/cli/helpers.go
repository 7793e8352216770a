package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/agusx1211/warrior/internal/snapshot"
)

// printHeader prints a formatted section header.
func printHeader(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s%s%s\n", styleBoldCyan, title, colorReset)
	fmt.Fprintln(w, colorDim+strings.Repeat("-", ansi.StringWidth(title)+2)+colorReset)
}

// printField prints a labeled field.
func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s%-16s%s %s\n", colorBold, label+":", colorReset, value)
}

// printFieldColored prints a labeled field with colored value.
func printFieldColored(w io.Writer, label, value, color string) {
	fmt.Fprintf(w, "  %s%-16s%s %s%s%s\n", colorBold, label+":", colorReset, color, value, colorReset)
}

// printTable prints a simple table with headers and rows.
func printTable(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, colorDim+"  (none)"+colorReset)
		return
	}

	// Column widths are measured in terminal cells so emoji labels line up.
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				if cw := ansi.StringWidth(cell); cw > widths[i] {
					widths[i] = cw
				}
			}
		}
	}

	headerLine := "  "
	for i, h := range headers {
		headerLine += fmt.Sprintf("%s%-*s%s", colorBold, widths[i]+2, h, colorReset)
	}
	fmt.Fprintln(w, headerLine)

	sepLine := "  "
	for _, wd := range widths {
		sepLine += colorDim + strings.Repeat("-", wd+2) + colorReset
	}
	fmt.Fprintln(w, sepLine)

	for _, row := range rows {
		rowLine := "  "
		for i, cell := range row {
			if i < len(widths) {
				padding := max(0, widths[i]-ansi.StringWidth(cell))
				rowLine += cell + strings.Repeat(" ", padding+2)
			}
		}
		fmt.Fprintln(w, strings.TrimRight(rowLine, " "))
	}
}

// truncate shortens s to maxLen cells, adding "..." if needed.
func truncate(s string, maxLen int) string {
	return ansi.Truncate(s, maxLen, "...")
}

// check renders a completion mark.
func check(done bool) string {
	if done {
		return colorGreen + "[x]" + colorReset
	}
	return colorDim + "[ ]" + colorReset
}

// bar renders a percentage as a fixed-width progress bar.
func bar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	filled = max(0, min(width, filled))
	return colorGreen + strings.Repeat("█", filled) + colorReset + colorDim + strings.Repeat("░", width-filled) + colorReset
}

// resolveItem finds an item of items by id or by its 1-based position.
func resolveItem(items []snapshot.CycleItem, ref string) (snapshot.CycleItem, error) {
	if i := snapshot.IndexOf(items, ref); i >= 0 {
		return items[i], nil
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(items) {
		return items[n-1], nil
	}
	return snapshot.CycleItem{}, fmt.Errorf("no item %q (use an id or a 1-based position)", ref)
}

// readInput reads a file, or stdin when path is "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if strings.TrimSpace(path) == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
