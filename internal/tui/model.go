package tui

import (
	"os"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"vizterm/internal/chart"
	"vizterm/internal/config"
	"vizterm/internal/data"
	"vizterm/internal/logging"
	"vizterm/internal/present"
	"vizterm/internal/resize"
	"vizterm/internal/watch"
)

// Options configures the viewer.
type Options struct {
	Source         string
	Kind           data.Kind
	Padding        float64
	ResizeQuiet    time.Duration
	ReloadOnResize bool
	Watch          bool
	ExportDir      string
	ExportWidth    int
	ExportHeight   int
	Loader         chart.Loader
	Logger         logging.Logger
}

// OptionsFromConfig maps a loaded config onto viewer options.
func OptionsFromConfig(cfg *config.Config, loader chart.Loader, log logging.Logger) (Options, error) {
	kind, err := data.ParseKind(cfg.Variant)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Source:         cfg.Source,
		Kind:           kind,
		Padding:        cfg.Padding,
		ResizeQuiet:    cfg.ResizeQuiet,
		ReloadOnResize: cfg.ReloadOnResize,
		Watch:          cfg.Watch,
		ExportDir:      cfg.ExportDir,
		ExportWidth:    cfg.ExportWidth,
		ExportHeight:   cfg.ExportHeight,
		Loader:         loader,
		Logger:         log,
	}, nil
}

// panel is the terminal sink for a tooltip or detail block.
type panel struct {
	block present.Block
}

func (p *panel) Set(b present.Block) { p.block = b }

type Model struct {
	opts Options
	log  logging.Logger

	width  int
	height int

	showSidebar bool
	helpVisible bool

	status  string
	loadErr error

	source string
	kind   data.Kind

	chart   *chart.Chart
	resize  *resize.Coordinator
	laidOut bool
	tip     *panel
	detail  *panel
	unsub   func()
	watcher *watch.Watcher

	// File explorer
	cwd   string
	l     list.Model
	items []list.Item

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// records table
	showRecords bool
	tbl         table.Model

	// pointer state
	hovering bool
	pointerX int
	pointerY int
}

func New(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.ExportWidth <= 0 || opts.ExportHeight <= 0 {
		opts.ExportWidth, opts.ExportHeight = 960, 600
	}
	if opts.Loader == nil {
		opts.Loader = data.NewLoader(data.WithLogger(opts.Logger))
	}
	m := Model{
		opts:        opts,
		log:         opts.Logger.Named("tui"),
		helpVisible: true,
		status:      "vizterm ready",
		source:      opts.Source,
		kind:        opts.Kind,
		chart:       chart.New(opts.Logger),
		resize:      resize.New(opts.ResizeQuiet),
		tip:         &panel{},
		detail:      &panel{},
	}
	m.unsub = m.chart.Subscribe(m.tip, m.detail)
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Datasets"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste a dataset URL or file path. Enter to load; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(3)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	m.startWatch()
	return m
}

// Init starts the first fetch and, for watched local files, the watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.chart.Load(m.opts.Loader, m.source, m.kind), m.watchCmd())
}

// Close releases the watcher and cancels any fetch in flight.
func (m Model) Close() {
	if m.watcher != nil {
		m.watcher.Stop()
	}
	if m.unsub != nil {
		m.unsub()
	}
	m.chart.Close()
}

// Chart exposes the chart instance, mainly for tests.
func (m Model) Chart() *chart.Chart { return m.chart }

func (m *Model) startWatch() {
	if m.watcher != nil {
		m.watcher.Stop()
		m.watcher = nil
	}
	if !m.opts.Watch || data.IsRemote(m.source) {
		return
	}
	w, err := watch.New(m.source, watch.WithLogger(m.log))
	if err != nil {
		m.status = "watch error: " + err.Error()
		return
	}
	if err := w.Start(); err != nil {
		m.status = "watch error: " + err.Error()
		return
	}
	m.watcher = w
}

func (m Model) watchCmd() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Cmd()
}
