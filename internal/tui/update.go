package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"vizterm/internal/chart"
	"vizterm/internal/export"
	"vizterm/internal/logging"
	"vizterm/internal/resize"
	"vizterm/internal/watch"
)

// hitTolerance widens element hit areas by one micro-pixel.
const hitTolerance = 1

type exportedMsg struct {
	paths []string
	err   error
}

func (m Model) layout() layout {
	return computeLayout(resize.Size{Width: m.width, Height: m.height}, m.showSidebar)
}

func (m *Model) regenerate() {
	m.chart.Regenerate(m.layout().frame(m.opts.Padding))
}

// load fetches source, retargeting the file watcher when the source changes.
func (m *Model) load(source string) tea.Cmd {
	var watchCmd tea.Cmd
	if source != m.source {
		m.source = source
		m.startWatch()
		watchCmd = m.watchCmd()
	}
	m.status = "loading " + source
	return tea.Batch(m.chart.Load(m.opts.Loader, source, m.kind), watchCmd)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
		}
		if !m.laidOut {
			m.laidOut = true
			m.regenerate()
			return m, nil
		}
		return m, m.resize.Observe(resize.Size{Width: msg.Width, Height: msg.Height})

	case resize.SettledMsg:
		if _, ok := m.resize.Settle(msg); !ok {
			return m, nil
		}
		m.regenerate()
		if m.opts.ReloadOnResize {
			m.status = "resized, reloading " + m.source
			return m, m.chart.Load(m.opts.Loader, m.source, m.kind)
		}
		return m, nil

	case chart.LoadedMsg:
		applied, err := m.chart.Apply(msg)
		if err != nil {
			m.loadErr = err
			m.status = "load error: " + err.Error()
			return m, nil
		}
		if applied {
			m.loadErr = nil
			ds := m.chart.Dataset()
			m.status = fmt.Sprintf("loaded %s  %d records (%s)", displayName(msg.Source), ds.Len(), ds.Kind)
			if m.showRecords {
				m.refreshRecords()
			}
		}
		return m, nil

	case watch.ChangedMsg:
		if m.watcher == nil || msg.Path != m.watcher.Path() {
			return m, nil
		}
		m.status = "changed on disk, reloading"
		return m, tea.Batch(m.chart.Load(m.opts.Loader, m.source, m.kind), m.watcher.Cmd())

	case exportedMsg:
		if msg.err != nil {
			m.status = "export error: " + msg.err.Error()
		} else {
			m.status = "exported " + strings.Join(msg.paths, ", ")
		}
		return m, nil

	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				src := strings.TrimSpace(m.ta.Value())
				if src == "" {
					m.status = "paste: empty"
					return m, nil
				}
				m.pasteMode = false
				m.ta.Blur()
				return m, m.load(src)
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		if m.showRecords {
			switch msg.String() {
			case "esc", "a":
				m.showRecords = false
				return m, nil
			case "enter":
				if i := m.tbl.Cursor(); i >= 0 && i < m.chart.Dataset().Len() {
					m.chart.Controller().OnClick(i)
					m.status = fmt.Sprintf("pinned record %d", i+1)
				}
				return m, nil
			case "q", "ctrl+c":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			return m, m.load(m.source)
		case "e":
			return m, m.exportCmd()
		case "esc":
			if m.chart.Selection().Pinned != nil {
				m.chart.Controller().Unpin()
				m.status = "unpinned"
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
			}
			m.regenerate()
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
			return m, textarea.Blink
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			if m.chart.Dataset().Len() == 0 {
				m.status = "no records loaded"
				break
			}
			m.showRecords = true
			m.refreshRecords()
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					return m, m.load(it.path)
				}
			}
		}

	case tea.MouseMsg:
		l := m.layout()
		m.pointerX, m.pointerY = msg.X, msg.Y
		px, py, ok := l.toMicro(msg.X, msg.Y)
		if !ok || m.showRecords || m.pasteMode {
			if m.hovering {
				m.chart.Controller().OnHoverEnd()
			}
			m.hovering = false
			break
		}
		_, m.hovering = m.chart.HoverAt(px, py, hitTolerance)
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if i, hit := m.chart.ClickAt(px, py, hitTolerance); hit {
				m.log.Debug("click", logging.Int("element", i))
			}
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) exportCmd() tea.Cmd {
	ds := m.chart.Dataset()
	if ds == nil {
		return func() tea.Msg { return exportedMsg{err: fmt.Errorf("nothing loaded")} }
	}
	pinned := ""
	if ref := m.chart.Selection().Pinned; ref != nil {
		pinned = ref.Key
	}
	path := filepath.Join(m.opts.ExportDir, "vizterm-"+time.Now().Format("20060102-150405")+".svg")
	w, h, title, log := m.opts.ExportWidth, m.opts.ExportHeight, displayName(m.source), m.log
	return func() tea.Msg {
		snap := export.Headless(ds, w, h, pinned, title, log)
		paths, err := export.Save(context.Background(), snap, export.Options{Path: path, AlsoPNG: true})
		return exportedMsg{paths: paths, err: err}
	}
}

func displayName(source string) string {
	if i := strings.LastIndex(source, "/"); i >= 0 && i < len(source)-1 {
		return source[i+1:]
	}
	return source
}
