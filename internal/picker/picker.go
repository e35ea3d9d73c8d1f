package picker

import (
	"reflect"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/burrowpick/burrow/internal/picker/state"
	"github.com/burrowpick/burrow/internal/theme"
	"github.com/burrowpick/burrow/internal/tree"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Config assembles the picker behaviour. Nodes and OnSelect are the only
// fields most callers set; everything else has a usable default.
type Config struct {
	// Nodes is the hierarchical input forest.
	Nodes []*tree.Node

	// SelectedID pre-resolves the selection so reopening lands on it.
	SelectedID string

	// Placeholder is shown on the trigger while nothing is selected.
	Placeholder string

	// OnSelect fires exactly once per completed selection, with the chosen
	// node and the navigation trail as it stood at selection time. The
	// returned command is executed by the runtime; return tea.Quit to end
	// the program after a pick.
	OnSelect func(node *tree.Node, path []state.Entry) tea.Cmd

	// DisableItem marks nodes that render but refuse activation.
	DisableItem func(node *tree.Node) bool

	// FilterItems overrides the search filter. Defaults to fuzzy matching
	// with a substring fallback.
	FilterItems state.FilterFunc

	// RenderItem, RenderTrigger, RenderBreadcrumb and RenderEmpty override
	// the built-in row rendering.
	RenderItem       ItemRenderer
	RenderTrigger    TriggerRenderer
	RenderBreadcrumb BreadcrumbRenderer
	RenderEmpty      EmptyRenderer

	// ShowBreadcrumb renders the navigation trail above the item rows.
	ShowBreadcrumb bool

	// ShowSelectLevel adds a virtual first row on nested levels that picks
	// the branch node itself instead of one of its children.
	ShowSelectLevel bool

	// SelectLevelLabel overrides the virtual row text. The default derives
	// from the current branch label.
	SelectLevelLabel string

	// Width and Height pin the layout instead of tracking the terminal.
	Width  int
	Height int

	// ShowFooter renders a key hint line at the bottom of the open dropdown.
	ShowFooter bool
}

// Model implements the Bubble Tea model for the hierarchical picker.
type Model struct {
	cfg   Config
	nodes []*tree.Node

	open          bool
	path          state.Path
	list          state.List
	search        state.Search
	searchInput   textinput.Model
	selectedID    string
	selectedLabel string

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	errMsg      string

	// listTop is the screen row of the first item line in the last render,
	// used to map mouse clicks onto rows.
	listTop  int
	listRows int

	handlers map[reflect.Type]msgHandler
}

// NodesReloadedMsg replaces the input forest, e.g. after the backing file
// changed on disk. The selection resolver re-runs against the new data.
type NodesReloadedMsg struct {
	Nodes []*tree.Node
}

// New initialises a picker model from the configuration.
func New(cfg Config) *Model {
	input := textinput.New()
	input.Placeholder = "type to search"
	input.Prompt = "» "
	if styles.SearchPrompt != nil {
		input.PromptStyle = *styles.SearchPrompt
	}
	if styles.SearchPlaceholder != nil {
		input.PlaceholderStyle = *styles.SearchPlaceholder
	}
	if styles.Cursor != nil {
		input.Cursor.Style = *styles.Cursor
	}

	m := &Model{
		cfg:         cfg,
		nodes:       state.CloneNodes(cfg.Nodes),
		searchInput: input,
	}
	if cfg.Width > 0 {
		m.width = cfg.Width
		m.fixedWidth = true
	}
	if cfg.Height > 0 {
		m.height = cfg.Height
		m.fixedHeight = true
	}
	if cfg.SelectedID != "" {
		if node, ok := tree.FindNode(m.nodes, cfg.SelectedID); ok {
			m.selectedID = node.ID
			m.selectedLabel = displayLabel(node)
		}
	}
	m.refreshVisible()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(NodesReloadedMsg{}):  m.handleNodesReloadedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

func (m *Model) handleNodesReloadedMsg(msg tea.Msg) tea.Cmd {
	reload, ok := msg.(NodesReloadedMsg)
	if !ok {
		return nil
	}
	m.SetNodes(reload.Nodes)
	return nil
}

// IsOpen reports whether the dropdown is expanded.
func (m *Model) IsOpen() bool {
	return m.open
}

// Selected returns the resolved selection, if any.
func (m *Model) Selected() (id, label string, ok bool) {
	if m.selectedID == "" {
		return "", "", false
	}
	return m.selectedID, m.selectedLabel, true
}

// Path returns a copy of the current navigation trail.
func (m *Model) Path() []state.Entry {
	return m.path.Snapshot()
}

// Query returns the active search query.
func (m *Model) Query() string {
	return m.search.Query
}
