package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/atomicstack/inline-left-nav/internal/backend"
	"github.com/atomicstack/inline-left-nav/internal/format/table"
	"github.com/atomicstack/inline-left-nav/internal/logging/events"
	"github.com/atomicstack/inline-left-nav/internal/markup"
	"github.com/atomicstack/inline-left-nav/internal/nav"
	"github.com/atomicstack/inline-left-nav/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	File          string
	Root          string
	OptionsPath   string
	Width         int
	Height        int
	ShowFooter    bool
	WatchInterval time.Duration
	Open          []string
	Activate      string
	// HTML makes Dump write the document with state applied instead of the
	// node table.
	HTML bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	doc, err := loadDocument(cfg)
	if err != nil {
		return err
	}
	root, err := chooseRoot(doc, cfg.Root)
	if err != nil {
		return err
	}
	var watcher *backend.Watcher
	if cfg.WatchInterval > 0 {
		watcher = backend.NewWatcher(cfg.File, cfg.WatchInterval)
		defer watcher.Stop()
	}
	model, err := ui.NewModel(ui.Config{
		Title:      root,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Source:     cfg.File,
		Watcher:    watcher,
	}, nav.NewRegistry(), doc, root)
	if err != nil {
		return fmt.Errorf("bind %s: %w", root, err)
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// Dump builds every widget in the markup, applies the configured expansions
// and activation to the chosen root and prints its nodes as a table, or the
// resulting markup when cfg.HTML is set.
func Dump(cfg Config, w io.Writer) error {
	doc, err := loadDocument(cfg)
	if err != nil {
		return err
	}
	root, err := chooseRoot(doc, cfg.Root)
	if err != nil {
		return err
	}
	registry := nav.NewRegistry()
	if _, err := markup.Init(doc, registry, nil); err != nil {
		return err
	}
	widget, _ := registry.Get(root)
	for _, addr := range cfg.Open {
		if _, err := widget.Toggle(addr, true); err != nil {
			return fmt.Errorf("open %s: %w", addr, err)
		}
	}
	if cfg.Activate != "" {
		if err := widget.Activate(cfg.Activate); err != nil {
			return fmt.Errorf("activate %s: %w", cfg.Activate, err)
		}
	}
	if cfg.HTML {
		if err := doc.Render(w); err != nil {
			return fmt.Errorf("render markup: %w", err)
		}
		_, err := fmt.Fprintln(w)
		return err
	}
	if _, err := fmt.Fprintf(w, "root: %s\n", root); err != nil {
		return err
	}
	for _, line := range table.WithHeader(dumpHeader, dumpRows(widget), []table.Alignment{table.AlignLeft, table.AlignRight}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

var dumpHeader = []string{"address", "depth", "kind", "expanded", "reachable", "active", "label"}

func dumpRows(w *nav.Widget) [][]string {
	tree := w.Tree()
	rows := make([][]string, 0, tree.Len())
	tree.Walk(func(n *nav.Node) bool {
		kind := "leaf"
		switch {
		case n.IsNested():
			kind = "nested"
		case n.IsBranch():
			kind = "branch"
		}
		expanded := "-"
		if n.IsBranch() {
			expanded = yesNo(w.Expansion().IsExpanded(n))
		}
		rows = append(rows, []string{
			n.Address,
			strconv.Itoa(n.Depth()),
			kind,
			expanded,
			yesNo(w.Expansion().IsReachable(n)),
			yesNo(w.Selection().IsActive(n)),
			n.Label,
		})
		return true
	})
	return rows
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func loadDocument(cfg Config) (*markup.Document, error) {
	opts, err := markup.LoadOptions(cfg.OptionsPath)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("open markup: %w", err)
	}
	defer f.Close()
	doc, err := markup.Parse(f, opts)
	if err != nil {
		return nil, err
	}
	nodes := 0
	for _, root := range doc.Roots() {
		if b, err := doc.Bind(root); err == nil {
			nodes += b.Tree().Len()
		}
	}
	events.Markup.Parsed(cfg.File, len(doc.Roots()), nodes)
	return doc, nil
}

func chooseRoot(doc *markup.Document, root string) (string, error) {
	roots := doc.Roots()
	if len(roots) == 0 {
		return "", fmt.Errorf("%w: no navigation root found", nav.ErrConstruction)
	}
	if root == "" {
		return roots[0], nil
	}
	if _, ok := doc.Element(root); !ok {
		return "", fmt.Errorf("%w: no navigation root %q (have %v)", nav.ErrConstruction, root, roots)
	}
	return root, nil
}
