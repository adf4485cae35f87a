package report

import (
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"

	"github.com/homedash/homedash/internal/model"
)

// Snapshot is the dashboard state rendered by the writers.
type Snapshot struct {
	// Profile is the current profile record.
	Profile model.Profile

	// Shortcuts is the full shortcut collection.
	Shortcuts []model.Shortcut

	// Categories is the collated category order to render groups in.
	Categories []string

	// Background is the current background configuration.
	Background model.BackgroundConfig

	// FocusMode is the current focus-mode flag.
	FocusMode bool

	// GeneratedAt is when the snapshot was taken.
	GeneratedAt time.Time
}

// MarkdownWriter renders a Snapshot as GitHub Flavored Markdown.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that writes to output.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write renders the full dashboard summary.
func (w *MarkdownWriter) Write(snap *Snapshot) error {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, snap)
	w.writeProfile(md, snap)
	w.writeShortcuts(md, snap)

	return md.Build()
}

// writeHeader writes the title and overview table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, snap *Snapshot) {
	md.H1("Dashboard Summary")
	md.PlainText("")

	focus := "off"
	if snap.FocusMode {
		focus = "on (entertainment hidden)"
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Generated", snap.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Shortcuts", strconv.Itoa(len(snap.Shortcuts))},
			{"Categories", strconv.Itoa(len(snap.Categories))},
			{"Focus mode", focus},
			{"Background", describeBackground(snap.Background)},
		},
	})
	md.PlainText("")
}

// writeProfile writes the profile section.
func (w *MarkdownWriter) writeProfile(md *markdown.Markdown, snap *Snapshot) {
	md.H2("Profile")
	md.PlainText("")
	md.BulletList(
		"Name: "+snap.Profile.Name,
		"Bio: "+snap.Profile.Bio,
		"Avatar: "+string(snap.Profile.Avatar.Mode)+" ("+string(snap.Profile.Avatar.MediaType)+")",
	)
	md.PlainText("")
}

// writeShortcuts writes one table per category, in collated order.
func (w *MarkdownWriter) writeShortcuts(md *markdown.Markdown, snap *Snapshot) {
	md.H2("Shortcuts")
	md.PlainText("")

	if len(snap.Shortcuts) == 0 {
		md.PlainText("No shortcuts configured.")
		md.PlainText("")
		return
	}

	grouped := model.GroupByCategory(snap.Shortcuts)
	for _, category := range snap.Categories {
		shortcuts, ok := grouped[category]
		if !ok {
			continue
		}

		md.H3(category)
		md.PlainText("")

		rows := make([][]string, 0, len(shortcuts))
		for _, s := range shortcuts {
			rows = append(rows, []string{
				s.Title,
				string(s.Type),
				"`" + s.URL + "`",
			})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Title", "Type", "URL"},
			Rows:   rows,
		})
		md.PlainText("")
	}
}

// describeBackground renders a one-line description of the background
// without leaking blob references into the report.
func describeBackground(cfg model.BackgroundConfig) string {
	switch cfg.Type {
	case model.BackgroundNone:
		return "none"
	case model.BackgroundColor, model.BackgroundGradient:
		return string(cfg.Type) + " (`" + cfg.Value + "`)"
	default:
		return string(cfg.Type) + " (stored media)"
	}
}
