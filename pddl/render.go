package pddl

import (
	"fmt"
	"os"
	"strings"
)

const indent = "    "

// document accumulates indented lines of a nested s-expression.
type document struct {
	b strings.Builder
}

func (d *document) open(header string) {
	d.b.WriteString(header)
	d.b.WriteByte('\n')
}

func (d *document) line(depth int, text string) {
	d.b.WriteString(strings.Repeat(indent, depth))
	d.b.WriteString(text)
	d.b.WriteByte('\n')
}

// section writes head, one line per item one level deeper, and a closing paren.
func (d *document) section(depth int, head string, items []string) {
	d.line(depth, head)
	for _, item := range items {
		d.line(depth+1, item)
	}
	d.line(depth, ")")
}

// block indents every line of a multi-line block.
func (d *document) block(depth int, text string) {
	for _, l := range strings.Split(text, "\n") {
		d.line(depth, l)
	}
}

func (d *document) close() string {
	d.b.WriteString(")\n")
	return d.b.String()
}

func documentPath(base, fallback string) string {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		trimmed = fallback
	}
	return trimmed + ".pddl"
}

// writeDocument writes text to path in one open/write/close, reporting a
// failed close as well as a failed write.
func writeDocument(path, text string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pddl: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("pddl: close %s: %w", path, cerr)
		}
	}()
	if _, err := f.WriteString(text); err != nil {
		return fmt.Errorf("pddl: write %s: %w", path, err)
	}
	return nil
}
