package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/burrowpick/burrow/internal/logging"
	"github.com/burrowpick/burrow/internal/logging/events"
	"github.com/burrowpick/burrow/internal/picker"
	"github.com/burrowpick/burrow/internal/picker/state"
	"github.com/burrowpick/burrow/internal/tree"
	"github.com/burrowpick/burrow/internal/watch"
)

const reloadDebounce = 250 * time.Millisecond

// ErrAborted reports that the program ended without a completed selection.
var ErrAborted = errors.New("no selection made")

// Config describes user-provided application options.
type Config struct {
	File             string
	Format           tree.Format
	Keys             tree.Keys
	SelectedID       string
	Placeholder      string
	Width            int
	Height           int
	ShowFooter       bool
	ShowBreadcrumb   bool
	ShowSelectLevel  bool
	SelectLevelLabel string
	Watch            bool
	Verbose          bool
}

type pickResult struct {
	node  *tree.Node
	trail []state.Entry
}

// Run bootstraps and executes the Bubble Tea program. On a completed
// selection the chosen id is written to stdout so the command composes in
// shell pipelines.
func Run(cfg Config) error {
	nodes, err := tree.DecodeFile(cfg.File, cfg.Format, cfg.Keys)
	if err != nil {
		return fmt.Errorf("load tree: %w", err)
	}
	events.App.TreeLoaded(cfg.File, len(nodes))

	var result *pickResult
	model := picker.New(picker.Config{
		Nodes:            nodes,
		SelectedID:       cfg.SelectedID,
		Placeholder:      cfg.Placeholder,
		Width:            cfg.Width,
		Height:           cfg.Height,
		ShowFooter:       cfg.ShowFooter,
		ShowBreadcrumb:   cfg.ShowBreadcrumb,
		ShowSelectLevel:  cfg.ShowSelectLevel,
		SelectLevelLabel: cfg.SelectLevelLabel,
		OnSelect: func(node *tree.Node, trail []state.Entry) tea.Cmd {
			result = &pickResult{node: node, trail: trail}
			return tea.Quit
		},
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if cfg.Watch {
		watcher, werr := watch.NewWatcher(cfg.File, reloadDebounce)
		if werr != nil {
			logging.Error(fmt.Errorf("watch %s: %w", cfg.File, werr))
		} else {
			defer watcher.Stop()
			go forwardReloads(program, watcher, cfg)
		}
	}

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	}

	if result == nil {
		return ErrAborted
	}
	fmt.Println(result.node.ID)
	if cfg.Verbose {
		fmt.Fprintln(os.Stderr, trailString(result))
	}
	return nil
}

func forwardReloads(program *tea.Program, watcher *watch.Watcher, cfg Config) {
	for evt := range watcher.Events() {
		if evt.Err != nil {
			logging.Error(evt.Err)
			continue
		}
		events.Watch.Changed(evt.Path)
		nodes, err := tree.DecodeFile(cfg.File, cfg.Format, cfg.Keys)
		if err != nil {
			events.Watch.ReloadFailed(cfg.File, err)
			continue
		}
		program.Send(picker.NodesReloadedMsg{Nodes: nodes})
	}
}

func trailString(result *pickResult) string {
	segments := make([]string, 0, len(result.trail)+1)
	for _, entry := range result.trail {
		segments = append(segments, entry.Label)
	}
	label := result.node.Label
	if label == "" {
		label = result.node.ID
	}
	segments = append(segments, label)
	return strings.Join(segments, " → ")
}
