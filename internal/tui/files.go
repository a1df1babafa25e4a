package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

// datasetExts are the local files the picker offers.
var datasetExts = map[string]bool{".json": true, ".csv": true}

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if datasetExts[ext] {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 && m.showSidebar {
		m.status = "no .json or .csv files in current directory"
	}
}
