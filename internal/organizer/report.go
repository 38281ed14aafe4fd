// file: internal/organizer/report.go
// version: 1.0.0
// guid: 8588115c-6904-436b-bf82-8468288042ba

package organizer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// Format selects how a change set is printed.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatTable, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown report format %q (want text, table or yaml)", s)
	}
}

// Reporter prints a change set and the notices around applying it.
type Reporter struct {
	w      io.Writer
	format Format
	apply  bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, format Format, apply bool) *Reporter {
	return &Reporter{w: w, format: format, apply: apply}
}

// Summary prints the pending renames, or a no-op notice when there are none.
func (r *Reporter) Summary(cs ChangeSet) error {
	if r.format == FormatYAML {
		return r.writeYAML(cs)
	}
	if cs.Len() == 0 {
		_, err := fmt.Fprintln(r.w, "No files to rename.")
		return err
	}
	if _, err := fmt.Fprintf(r.w, "Found %d file(s) to rename:\n\n", cs.Len()); err != nil {
		return err
	}
	if r.format == FormatTable {
		return r.writeTable(cs)
	}
	for _, op := range cs.Ops {
		if _, err := fmt.Fprintf(r.w, "- %s  ->  %s\n", op.OldName(), op.NewName()); err != nil {
			return err
		}
	}
	return nil
}

// Applying announces that renames are about to start.
func (r *Reporter) Applying() {
	r.notice("\nRenaming...")
}

// Done announces that every rename was applied.
func (r *Reporter) Done() {
	r.notice("Done.")
}

// DryRun explains that nothing was changed and how to apply.
func (r *Reporter) DryRun() {
	r.notice("\n(DRY RUN) No files were changed. Add --apply to perform the rename.")
}

// notice lines are left out of yaml output so it stays parseable.
func (r *Reporter) notice(line string) {
	if r.format == FormatYAML {
		return
	}
	fmt.Fprintln(r.w, line)
}

func (r *Reporter) writeTable(cs ChangeSet) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "From", "To"})
	for i, op := range cs.Ops {
		tw.AppendRow(table.Row{i + 1, op.OldName(), op.NewName()})
	}
	_, err := fmt.Fprintln(r.w, tw.Render())
	return err
}

type yamlChange struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Dir  string `yaml:"dir"`
}

type yamlReport struct {
	RunID     string       `yaml:"run_id,omitempty"`
	Folder    string       `yaml:"folder,omitempty"`
	Apply     bool         `yaml:"apply"`
	Count     int          `yaml:"count"`
	Unchanged int          `yaml:"unchanged"`
	Changes   []yamlChange `yaml:"changes"`
	Skipped   []string     `yaml:"skipped,omitempty"`
}

func (r *Reporter) writeYAML(cs ChangeSet) error {
	doc := yamlReport{
		RunID:     cs.RunID,
		Folder:    cs.Folder,
		Apply:     r.apply,
		Count:     cs.Len(),
		Unchanged: cs.Unchanged,
		Changes:   make([]yamlChange, 0, cs.Len()),
	}
	for _, op := range cs.Ops {
		doc.Changes = append(doc.Changes, yamlChange{
			From: op.OldName(),
			To:   op.NewName(),
			Dir:  filepath.Dir(op.Source),
		})
	}
	for _, s := range cs.Skipped {
		doc.Skipped = append(doc.Skipped, s.Path)
	}

	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}
	return enc.Close()
}
