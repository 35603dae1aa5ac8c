package tui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jparise/fsfind/internal/config"
	"github.com/jparise/fsfind/internal/registry"
	"github.com/jparise/fsfind/internal/search"
)

const (
	statusReady    = "Ready"
	statusStopping = "Stopping..."
	paneStep       = 2
	minPaneWidth   = 24
	minColumnWidth = 8
)

// focus identifies the widget receiving keys.
type focus int

const (
	focusFolder focus = iota
	focusPattern
	focusAlgorithm
	focusMatchCase
	focusMatchWhole
	focusFiles
	focusDirs
	focusResults
	focusCount
)

// pollMsg asks the model to drain the event queue of search gen.
type pollMsg struct {
	gen int
}

// result is one match shown in the results pane.
type result struct {
	path  string
	name  string
	dir   string
	isDir bool
}

// searchRun is a search in progress. The engine runs on its own goroutine;
// the model only talks to it through the queue and Cancel.
type searchRun struct {
	engine   search.Engine
	queue    *search.Queue
	done     chan struct{}
	stopping bool
}

func (r *searchRun) finished() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

// Model is the interactive search window.
type Model struct {
	base     *config.Settings
	engines  map[string]registry.Factory
	names    []string
	reveal   func(path string) error
	interval time.Duration
	jobs     int
	styles   *styles

	folder    textinput.Model
	pattern   textinput.Model
	algorithm int
	selected  int // algorithm chosen when the window opened
	opts      search.Options
	focus     focus

	results []result
	cursor  int
	offset  int

	run    *searchRun
	gen    int
	status string

	ui     config.UISettings
	width  int
	height int
}

// NewModel creates the search window for opts.
func NewModel(opts Options) *Model {
	s := opts.Settings
	if s == nil {
		s = config.Default()
	}

	folder := textinput.New()
	folder.Prompt = ""
	folder.Placeholder = "folder"
	folder.SetValue(opts.Root)

	pattern := textinput.New()
	pattern.Prompt = ""
	pattern.Placeholder = "search text"

	names := registry.Names(opts.Engines)
	name := s.Algorithm
	if opts.Algorithm != "" {
		name = opts.Algorithm
	}
	algorithm := slices.Index(names, name)
	if algorithm < 0 {
		algorithm = 0
	}

	interval := s.PollInterval()
	if opts.Interval > 0 {
		interval = opts.Interval
	}
	jobs := s.Jobs
	if opts.Jobs > 0 {
		jobs = opts.Jobs
	}

	reveal := opts.Reveal
	if reveal == nil {
		reveal = defaultReveal
	}

	m := &Model{
		base:      s,
		engines:   opts.Engines,
		names:     names,
		reveal:    reveal,
		interval:  interval,
		jobs:      jobs,
		styles:    newStyles(),
		folder:    folder,
		pattern:   pattern,
		algorithm: algorithm,
		selected:  algorithm,
		opts:      s.Options(),
		focus:     focusPattern,
		status:    statusReady,
		ui:        s.UI,
	}
	if m.interval <= 0 {
		m.interval = config.DefaultPollInterval
	}
	m.pattern.Focus()
	m.resizeInputs()

	return m
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampCursor()
		return m, nil

	case pollMsg:
		if m.run == nil || msg.gen != m.gen {
			return m, nil
		}
		return m, m.poll()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.stopSearch()
		return m, tea.Quit
	case "tab":
		return m, m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab":
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	case "esc":
		m.stopSearch()
		return m, nil
	case "ctrl+left":
		m.ui.SearchPaneWidth = max(minPaneWidth, m.ui.SearchPaneWidth-paneStep)
		m.resizeInputs()
		return m, nil
	case "ctrl+right":
		m.ui.SearchPaneWidth += paneStep
		m.resizeInputs()
		return m, nil
	case "alt+left":
		m.ui.NameColumnWidth = max(minColumnWidth, m.ui.NameColumnWidth-paneStep)
		return m, nil
	case "alt+right":
		m.ui.NameColumnWidth += paneStep
		return m, nil
	}

	if m.focus == focusResults {
		m.handleResultsKey(msg)
		return m, nil
	}

	switch msg.String() {
	case "enter":
		if m.run != nil {
			m.stopSearch()
			return m, nil
		}
		return m, m.startSearch()
	case " ":
		if m.toggle() {
			return m, nil
		}
	case "left", "right":
		if m.focus == focusAlgorithm && len(m.names) > 0 {
			step := 1
			if msg.String() == "left" {
				step = len(m.names) - 1
			}
			m.algorithm = (m.algorithm + step) % len(m.names)
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusFolder:
		m.folder, cmd = m.folder.Update(msg)
	case focusPattern:
		m.pattern, cmd = m.pattern.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleResultsKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "up", "k":
		m.cursor--
	case "down", "j":
		m.cursor++
	case "pgup":
		m.cursor -= m.visibleRows()
	case "pgdown":
		m.cursor += m.visibleRows()
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.results) - 1
	case "enter":
		if m.cursor < len(m.results) {
			path := m.results[m.cursor].path
			if err := m.reveal(path); err != nil {
				log.Printf("Failed to reveal %s: %v", path, err)
				m.status = fmt.Sprintf("Cannot reveal %s", path)
			}
		}
	}
	m.clampCursor()
}

// toggle flips the option under focus and reports whether one was focused.
func (m *Model) toggle() bool {
	switch m.focus {
	case focusMatchCase:
		m.opts.MatchCase = !m.opts.MatchCase
	case focusMatchWhole:
		m.opts.MatchWhole = !m.opts.MatchWhole
	case focusFiles:
		m.opts.IncludeFiles = !m.opts.IncludeFiles
	case focusDirs:
		m.opts.IncludeDirs = !m.opts.IncludeDirs
	default:
		return false
	}
	return true
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.folder.Blur()
	m.pattern.Blur()
	switch f {
	case focusFolder:
		return m.folder.Focus()
	case focusPattern:
		return m.pattern.Focus()
	}
	return nil
}

// startSearch validates the form and spawns one worker for the search.
func (m *Model) startSearch() tea.Cmd {
	root := m.folder.Value()
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		m.status = "Invalid folder."
		return nil
	}
	text := m.pattern.Value()
	if text == "" {
		m.status = "Search text is empty."
		return nil
	}
	if len(m.names) == 0 {
		m.status = "No search algorithms available."
		return nil
	}

	name := m.names[m.algorithm]
	eng := m.engines[name]()
	if js, ok := eng.(interface{ SetJobs(int) }); ok && m.jobs > 0 {
		js.SetJobs(m.jobs)
	}

	run := &searchRun{
		engine: eng,
		queue:  search.NewQueue(),
		done:   make(chan struct{}),
	}
	opts := m.opts
	go func() {
		defer close(run.done)
		if err := eng.Run(root, text, run.queue, opts); err != nil {
			log.Printf("Search engine %s failed: %v", name, err)
		}
	}()

	m.results = nil
	m.cursor = 0
	m.offset = 0
	m.run = run
	m.gen++
	m.status = "Searching..."
	log.Printf("Started %s search for %q in %s", name, text, root)

	return m.tick()
}

// stopSearch asks the running engine to stop. The run is forgotten once its
// worker has returned.
func (m *Model) stopSearch() {
	if m.run == nil || m.run.stopping {
		return
	}
	m.run.stopping = true
	m.run.engine.Cancel()
	m.status = statusStopping
}

func (m *Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return pollMsg{gen: gen}
	})
}

// poll drains the queue, detects completion and schedules the next poll.
func (m *Model) poll() tea.Cmd {
	run := m.run
	finished := run.finished()
	events := run.queue.Drain()

	if run.stopping {
		// Repeat the request in case it arrived before the engine started.
		run.engine.Cancel()
	} else {
		m.apply(events)
	}

	if finished {
		m.run = nil
		m.status = statusReady
		log.Printf("Search finished with %d results", len(m.results))
		return nil
	}
	return m.tick()
}

func (m *Model) apply(events []search.Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case search.LocationVisited:
			m.status = "Searching in: " + ev.Path
		case search.Match:
			m.results = append(m.results, result{
				path:  ev.Path,
				name:  filepath.Base(ev.Path),
				dir:   filepath.Dir(ev.Path),
				isDir: ev.IsDir,
			})
		}
	}
}

func (m *Model) visibleRows() int {
	// Borders, the column header and the status bar.
	return max(1, m.height-4)
}

func (m *Model) clampCursor() {
	m.cursor = min(m.cursor, len(m.results)-1)
	m.cursor = max(m.cursor, 0)

	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

func (m *Model) resizeInputs() {
	w := max(minColumnWidth, m.ui.SearchPaneWidth-4)
	m.folder.Width = w
	m.pattern.Width = w
}

// Settings returns the settings to persist: the loaded settings updated
// with the current layout and options. The algorithm is only stored when
// it was changed in the window, so session overrides are not saved.
func (m *Model) Settings() *config.Settings {
	s := *m.base
	s.UI = m.ui
	s.SetOptions(m.opts)
	if m.algorithm != m.selected && m.algorithm < len(m.names) {
		s.Algorithm = m.names[m.algorithm]
	}
	return &s
}

// Searching reports whether a search is in progress.
func (m *Model) Searching() bool {
	return m.run != nil
}
