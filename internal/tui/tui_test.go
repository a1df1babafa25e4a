package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vizterm/internal/chart"
	"vizterm/internal/data"
	"vizterm/internal/present"
	"vizterm/internal/resize"
)

type memLoader struct {
	sets  map[string]*data.Dataset
	fail  error
	calls int
}

func (l *memLoader) Load(_ context.Context, source string, _ data.Kind) (*data.Dataset, error) {
	l.calls++
	if l.fail != nil {
		return nil, l.fail
	}
	ds, ok := l.sets[source]
	if !ok {
		return nil, &data.LoadError{Source: source, Op: "fetch", Err: errors.New("not found")}
	}
	return ds, nil
}

func temps() *data.Dataset {
	var recs []data.Record
	for y := 1900; y < 1903; y++ {
		for mo := 1; mo <= 12; mo++ {
			recs = append(recs, data.Record{Year: y, Month: mo, Variance: float64(mo-6) / 3})
		}
	}
	return &data.Dataset{Kind: data.KindHeatmap, BaseTemperature: 8.66, Source: "mem://temps", Records: recs}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// drain runs cmd and every batched command, returning the messages they produce.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func feed(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for _, msg := range drain(cmd) {
		if _, ok := msg.(chart.LoadedMsg); ok {
			m, _ = update(t, m, msg)
		}
	}
	return m
}

func loaded(t *testing.T, loader *memLoader) Model {
	t.Helper()
	m := New(Options{Source: "mem://temps", Loader: loader})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = feed(t, m, m.Init())
	require.True(t, m.Chart().Ready())
	return m
}

// cellOf returns the screen cell at the centre of element i.
func cellOf(m Model, i int) (int, int) {
	l := m.layout()
	e := m.Chart().Elements()[i]
	return l.chartX + l.gutter + int((e.X+e.W/2)/2), l.chartY + int((e.Y+e.H/2)/4)
}

func TestModel_LoadsAndRenders(t *testing.T) {
	m := loaded(t, &memLoader{sets: map[string]*data.Dataset{"mem://temps": temps()}})

	assert.Len(t, m.Chart().Elements(), 36)
	assert.Contains(t, m.status, "36 records")

	out := m.View()
	assert.Contains(t, out, "Total: ")
	assert.Contains(t, out, "36")
	assert.Contains(t, out, present.DetailPlaceholder)
	assert.Contains(t, out, "Jan")
}

func TestModel_ViewBeforeData(t *testing.T) {
	m := New(Options{Source: "mem://temps", Loader: &memLoader{}})
	assert.Equal(t, "", m.View())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Contains(t, m.View(), "loading")
	assert.False(t, m.Chart().Ready())
}

func TestModel_HoverClickAndUnpin(t *testing.T) {
	m := loaded(t, &memLoader{sets: map[string]*data.Dataset{"mem://temps": temps()}})
	x, y := cellOf(m, 0)

	m, _ = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion})
	require.NotNil(t, m.Chart().Selection().Hovered)
	assert.True(t, m.tip.block.Visible)
	assert.Contains(t, m.tip.block.Lines, "Month: January")
	assert.Nil(t, m.Chart().Selection().Pinned)

	m, _ = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.NotNil(t, m.Chart().Selection().Pinned)
	assert.Contains(t, m.detail.block.Lines, "Year: 1900")

	m, _ = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	assert.Nil(t, m.Chart().Selection().Hovered)
	assert.False(t, m.tip.block.Visible)
	assert.NotNil(t, m.Chart().Selection().Pinned, "hover end keeps the pin")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.Chart().Selection().Pinned)
	assert.Equal(t, []string{present.DetailPlaceholder}, m.detail.block.Lines)
}

func TestModel_ResizeWaitsForSettle(t *testing.T) {
	m := loaded(t, &memLoader{sets: map[string]*data.Dataset{"mem://temps": temps()}})
	before := m.Chart().Frame()

	var cmd tea.Cmd
	for w := 100; w < 105; w++ {
		m, cmd = update(t, m, tea.WindowSizeMsg{Width: w, Height: 30})
		require.NotNil(t, cmd)
	}
	assert.Equal(t, before, m.Chart().Frame(), "no regeneration while resizing")

	m, _ = update(t, m, resize.SettledMsg{Seq: 1, Size: resize.Size{Width: 100, Height: 30}})
	assert.Equal(t, before, m.Chart().Frame(), "stale tick ignored")

	m, _ = update(t, m, resize.SettledMsg{Seq: 5, Size: resize.Size{Width: 104, Height: 30}})
	assert.NotEqual(t, before, m.Chart().Frame())
	assert.Equal(t, m.layout().frame(m.opts.Padding), m.Chart().Frame())
}

func TestModel_ReloadOnResize(t *testing.T) {
	loader := &memLoader{sets: map[string]*data.Dataset{"mem://temps": temps()}}
	m := New(Options{Source: "mem://temps", Loader: loader, ReloadOnResize: true})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = feed(t, m, m.Init())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 90, Height: 30})
	m, cmd := update(t, m, resize.SettledMsg{Seq: 1, Size: resize.Size{Width: 90, Height: 30}})
	require.NotNil(t, cmd)
	feed(t, m, cmd)
	assert.Equal(t, 2, loader.calls)
}

func TestModel_StaleLoadIgnored(t *testing.T) {
	first := temps()
	second := temps()
	second.Records = second.Records[:12]
	loader := &memLoader{sets: map[string]*data.Dataset{"mem://temps": first}}
	m := loaded(t, loader)

	m, older := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m, newer := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})

	oldMsgs := drain(older)
	loader.sets["mem://temps"] = second
	newMsgs := drain(newer)

	// the newer fetch lands first; the late older result must not win
	for _, msg := range append(newMsgs, oldMsgs...) {
		m, _ = update(t, m, msg)
	}
	assert.Len(t, m.Chart().Elements(), 12)
}

func TestModel_LoadErrorKeepsChart(t *testing.T) {
	loader := &memLoader{sets: map[string]*data.Dataset{"mem://temps": temps()}}
	m := loaded(t, loader)

	loader.fail = &data.LoadError{Source: "mem://temps", Op: "status", Err: data.ErrUnexpectedStatus}
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = feed(t, m, cmd)

	assert.Contains(t, m.status, "load error")
	assert.Error(t, m.loadErr)
	assert.Len(t, m.Chart().Elements(), 36)
}

func TestModel_RecordsTablePins(t *testing.T) {
	m := loaded(t, &memLoader{sets: map[string]*data.Dataset{"mem://temps": temps()}})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	require.True(t, m.showRecords)
	assert.Len(t, m.tbl.Rows(), 36)
	assert.Contains(t, m.View(), "Variance")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	pinned := m.Chart().Selection().Pinned
	require.NotNil(t, pinned)
	assert.Equal(t, 1, pinned.Index)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showRecords)
	assert.NotNil(t, m.Chart().Selection().Pinned)
}

func TestModel_PasteLoadsSource(t *testing.T) {
	other := temps()
	other.Records = other.Records[:3]
	loader := &memLoader{sets: map[string]*data.Dataset{"mem://temps": temps(), "mem://other": other}}
	m := loaded(t, loader)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	require.True(t, m.pasteMode)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("mem://other")})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = feed(t, m, cmd)

	assert.False(t, m.pasteMode)
	assert.Equal(t, "mem://other", m.source)
	assert.Len(t, m.Chart().Elements(), 3)
}

func TestModel_QuitAndHelp(t *testing.T) {
	m := loaded(t, &memLoader{sets: map[string]*data.Dataset{"mem://temps": temps()}})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	assert.False(t, strings.Contains(m.View(), "e export"))

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestLayout_ToMicro(t *testing.T) {
	l := computeLayout(resize.Size{Width: 120, Height: 40}, false)
	assert.Equal(t, detailWidth, l.detailW)

	_, _, ok := l.toMicro(0, 0)
	assert.False(t, ok)

	px, py, ok := l.toMicro(l.chartX+l.gutter+3, l.chartY+2)
	require.True(t, ok)
	assert.Equal(t, 6.5, px)
	assert.Equal(t, 9.5, py)

	narrow := computeLayout(resize.Size{Width: 60, Height: 20}, true)
	assert.Zero(t, narrow.detailW)
	assert.Equal(t, sidebarWidth+1, narrow.chartX)
}
