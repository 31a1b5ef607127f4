package dumpdiff

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// String renders the delta as an operator-facing one-liner, naming the side
// each value came from
func (d *Delta) String() string {
	switch d.Op {
	case OpMissingInLeft:
		return fmt.Sprintf("%s: missing in first (second has %s)", d.Path, FormatValue(d.Right))
	case OpMissingInRight:
		return fmt.Sprintf("%s: missing in second (first has %s)", d.Path, FormatValue(d.Left))
	case OpMismatch:
		return fmt.Sprintf("%s: value mismatch (%s != %s)", d.Path, FormatValue(d.Left), FormatValue(d.Right))
	default:
		return fmt.Sprintf("%s: unknown operation %q", d.Path, string(d.Op))
	}
}

// FormatValue renders any Value on a single line: null, true/false, bare
// numbers, quoted strings, [a, b] lists, and {k: v} objects with sorted keys
func FormatValue(v Value) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case Null:
		return "null"
	case Bool:
		return strconv.FormatBool(bool(x))
	case Number:
		return strconv.FormatFloat(float64(x), 'f', -1, 64)
	case String:
		return strconv.Quote(string(x))
	case List:
		parts := make([]string, len(x))
		for i, el := range x {
			parts[i] = FormatValue(el)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case Object:
		parts := make([]string, 0, len(x))
		for _, k := range sortedKeys(x) {
			parts = append(parts, k+": "+FormatValue(x[k]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FormatPrettyString is a convenience wrapper that outputs to a string
// instead of an io.Writer
func FormatPrettyString(changes Deltas, colorTTY bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatPretty(buf, changes, colorTTY); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatPretty writes a text report to w, one line per delta:
// green "+" for keys only the right tree has
// red "-" for keys only the left tree has
// blue "~" for value mismatches
func FormatPretty(w io.Writer, changes Deltas, colorTTY bool) error {
	var styles map[Operation]lipgloss.Style
	if colorTTY {
		styles = map[Operation]lipgloss.Style{
			OpMissingInLeft:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
			OpMissingInRight: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
			OpMismatch:       lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		}
	}

	for _, d := range changes {
		var line string
		switch d.Op {
		case OpMissingInLeft:
			line = fmt.Sprintf("+ %s: %s", d.Path, FormatValue(d.Right))
		case OpMissingInRight:
			line = fmt.Sprintf("- %s: %s", d.Path, FormatValue(d.Left))
		case OpMismatch:
			line = fmt.Sprintf("~ %s: %s => %s", d.Path, FormatValue(d.Left), FormatValue(d.Right))
		default:
			line = d.String()
		}
		if colorTTY {
			line = styles[d.Op].Render(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// FormatPrettyStats prints a one-line summary of diff stats
func FormatPrettyStats(st *Stats) string {
	if st == nil {
		return ""
	}

	if st.Total() == 0 {
		return "no differences.\n"
	}

	diffWord := "differences"
	if st.Total() == 1 {
		diffWord = "difference"
	}
	mismatchWord := "mismatches"
	if st.Mismatches == 1 {
		mismatchWord = "mismatch"
	}
	return fmt.Sprintf("%d %s. %d only in second. %d only in first. %d %s.\n",
		st.Total(), diffWord,
		st.MissingInLeft, st.MissingInRight,
		st.Mismatches, mismatchWord,
	)
}
