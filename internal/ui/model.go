package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dayora/internal/store"
)

type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeNewFolder
	ModeRenameFolder
)

type Panel int

const (
	PanelFolders Panel = iota
	PanelNotes
	PanelEditor
)

type tickMsg time.Time

// Model is the three-pane notes screen: folders, note list, editor. It
// renders from store snapshots and routes every mutation through the store;
// editor keystrokes go to the draft buffer, never to the store directly.
type Model struct {
	store *store.Store
	draft *store.Draft

	keys KeyMap

	folders []store.Folder
	visible []store.Note

	folderCursor int
	noteCursor   int

	mode        Mode
	activePanel Panel
	titleFocus  bool

	searchInput textinput.Model
	dialogInput textinput.Model
	titleInput  textinput.Model
	bodyArea    textarea.Model

	width  int
	height int

	status string
}

func NewModel(st *store.Store, draft *store.Draft) Model {
	si := textinput.New()
	si.Placeholder = "Search..."
	si.CharLimit = 256

	di := textinput.New()
	di.CharLimit = 256

	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = 256

	ta := textarea.New()
	ta.Placeholder = "Start typing..."
	ta.ShowLineNumbers = false

	m := Model{
		store:       st,
		draft:       draft,
		keys:        NewKeyMap(),
		searchInput: si,
		dialogInput: di,
		titleInput:  ti,
		bodyArea:    ta,
		activePanel: PanelNotes,
	}
	m.refresh()
	m.syncSelection()
	return m
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// tickCmd re-renders once a second so relative timestamps and debounced
// commits show up without user input.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refresh re-reads the folder list and the projected note list.
func (m *Model) refresh() {
	m.folders = m.store.Folders()
	m.visible = m.store.VisibleNotes()

	if m.folderCursor >= len(m.folders) {
		m.folderCursor = len(m.folders) - 1
	}
	if m.folderCursor < 0 {
		m.folderCursor = 0
	}
	if m.noteCursor >= len(m.visible) {
		m.noteCursor = len(m.visible) - 1
	}
	if m.noteCursor < 0 {
		m.noteCursor = 0
	}
}

// syncSelection makes the note under the cursor the focal note and reloads
// the editor widgets from the draft buffer.
func (m *Model) syncSelection() {
	if len(m.visible) == 0 {
		m.store.SetActiveNote("")
		m.draft.SetActive("")
		m.titleInput.SetValue("")
		m.bodyArea.SetValue("")
		return
	}
	n := m.visible[m.noteCursor]
	if m.store.ActiveNoteID() == n.ID {
		return
	}
	m.store.SetActiveNote(n.ID)
	m.draft.SetActive(n.ID)
	m.titleInput.SetValue(m.draft.Title())
	m.bodyArea.SetValue(m.draft.Body())
}

func (m *Model) setStatus(s string) {
	m.status = s
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bodyArea.SetWidth(m.editorWidth() - 4)
		m.bodyArea.SetHeight(m.contentHeight() - 3)
		return m, nil

	case tickMsg:
		m.refresh()
		return m, tickCmd()

	case tea.KeyMsg:
		switch m.mode {
		case ModeSearch:
			return m.updateSearch(msg)
		case ModeNewFolder, ModeRenameFolder:
			return m.updateDialog(msg)
		}
		if m.activePanel == PanelEditor {
			return m.updateEditor(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.setStatus("")

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Tab):
		m.activePanel = (m.activePanel + 1) % 3
		m.focusEditor(m.activePanel == PanelEditor)

	case key.Matches(msg, m.keys.ShiftTab):
		m.activePanel = (m.activePanel + 2) % 3
		m.focusEditor(m.activePanel == PanelEditor)

	case key.Matches(msg, m.keys.Up):
		if m.activePanel == PanelFolders {
			if m.folderCursor > 0 {
				m.folderCursor--
			}
		} else if m.noteCursor > 0 {
			m.noteCursor--
			m.syncSelection()
		}

	case key.Matches(msg, m.keys.Down):
		if m.activePanel == PanelFolders {
			if m.folderCursor < len(m.folders)-1 {
				m.folderCursor++
			}
		} else if m.noteCursor < len(m.visible)-1 {
			m.noteCursor++
			m.syncSelection()
		}

	case key.Matches(msg, m.keys.Enter):
		if m.activePanel == PanelFolders {
			if m.folderCursor < len(m.folders) {
				m.store.SetActiveFolder(m.folders[m.folderCursor].ID)
				m.noteCursor = 0
				m.refresh()
				m.syncSelection()
				m.activePanel = PanelNotes
			}
		} else if len(m.visible) > 0 {
			m.activePanel = PanelEditor
			m.focusEditor(true)
		}

	case key.Matches(msg, m.keys.Edit):
		if len(m.visible) > 0 {
			m.activePanel = PanelEditor
			m.focusEditor(true)
		}

	case key.Matches(msg, m.keys.New):
		n := m.store.CreateNote(m.store.ActiveFolderID())
		m.draft.SetActive(n.ID)
		m.titleInput.SetValue("")
		m.bodyArea.SetValue("")
		m.refresh()
		m.noteCursor = m.indexOf(n.ID)
		m.activePanel = PanelEditor
		m.focusEditor(true)

	case key.Matches(msg, m.keys.NewFolder):
		m.mode = ModeNewFolder
		m.dialogInput.Placeholder = "Folder name"
		m.dialogInput.SetValue("")
		m.dialogInput.Focus()

	case key.Matches(msg, m.keys.RenameFolder):
		if m.activePanel == PanelFolders && m.folderCursor < len(m.folders) {
			m.mode = ModeRenameFolder
			m.dialogInput.Placeholder = "Folder name"
			m.dialogInput.SetValue(m.folders[m.folderCursor].Name)
			m.dialogInput.Focus()
		}

	case key.Matches(msg, m.keys.Delete):
		if m.activePanel == PanelFolders {
			if m.folderCursor < len(m.folders) {
				if err := m.store.DeleteFolder(m.folders[m.folderCursor].ID); err != nil {
					m.setStatus(err.Error())
				}
				m.refresh()
				m.syncSelection()
			}
		} else if len(m.visible) > 0 {
			n := m.visible[m.noteCursor]
			if n.Trashed {
				// Permanent delete; pending edits have nowhere to go.
				m.draft.Discard()
			}
			m.store.TrashNote(n.ID)
			m.refresh()
			m.syncSelection()
		}

	case key.Matches(msg, m.keys.Restore):
		if len(m.visible) > 0 && m.visible[m.noteCursor].Trashed {
			m.store.RestoreNote(m.visible[m.noteCursor].ID)
			m.refresh()
			m.syncSelection()
		}

	case key.Matches(msg, m.keys.Pin):
		if len(m.visible) > 0 {
			m.store.TogglePin(m.visible[m.noteCursor].ID)
			m.refresh()
		}

	case key.Matches(msg, m.keys.Search):
		m.mode = ModeSearch
		m.searchInput.SetValue(m.store.Query())
		m.searchInput.Focus()

	case key.Matches(msg, m.keys.DarkMode):
		m.cycleDarkMode()
	}

	return m, nil
}

func (m *Model) cycleDarkMode() {
	st := m.store.Snapshot()
	switch st.DarkMode {
	case store.DarkModeLight:
		m.store.SetDarkMode(store.DarkModeDark)
	case store.DarkModeDark:
		m.store.SetDarkMode(store.DarkModeAuto)
	default:
		m.store.SetDarkMode(store.DarkModeLight)
	}
}

func (m *Model) indexOf(noteID string) int {
	for i, n := range m.visible {
		if n.ID == noteID {
			return i
		}
	}
	return 0
}

func (m *Model) focusEditor(on bool) {
	if on {
		m.titleFocus = false
		m.titleInput.Blur()
		m.bodyArea.Focus()
	} else {
		m.titleInput.Blur()
		m.bodyArea.Blur()
	}
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		// Leaving the editor flushes the draft so the list reorders at
		// once instead of after the debounce window.
		m.draft.Flush()
		m.focusEditor(false)
		m.activePanel = PanelNotes
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.titleFocus = !m.titleFocus
		if m.titleFocus {
			m.bodyArea.Blur()
			m.titleInput.Focus()
		} else {
			m.titleInput.Blur()
			m.bodyArea.Focus()
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.titleFocus {
		m.titleInput, cmd = m.titleInput.Update(msg)
		m.draft.SetTitle(m.titleInput.Value())
	} else {
		m.bodyArea, cmd = m.bodyArea.Update(msg)
		m.draft.SetBody(m.bodyArea.Value())
	}
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.store.SetQuery("")
		m.mode = ModeNormal
		m.refresh()
		m.syncSelection()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.searchInput.Blur()
		m.mode = ModeNormal
		m.activePanel = PanelNotes
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.store.SetQuery(m.searchInput.Value())
	m.refresh()
	m.syncSelection()
	return m, cmd
}

func (m Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.dialogInput.Blur()
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		name := m.dialogInput.Value()
		if m.mode == ModeNewFolder {
			if _, ok := m.store.CreateFolder(name); !ok {
				m.setStatus("folder name cannot be empty")
			}
		} else if m.folderCursor < len(m.folders) {
			m.store.RenameFolder(m.folders[m.folderCursor].ID, name)
		}
		m.dialogInput.Blur()
		m.mode = ModeNormal
		m.refresh()
		m.syncSelection()
		return m, nil
	}

	var cmd tea.Cmd
	m.dialogInput, cmd = m.dialogInput.Update(msg)
	return m, cmd
}

func (m Model) foldersWidth() int  { return 24 }
func (m Model) notesWidth() int    { return 38 }
func (m Model) editorWidth() int   { return max(m.width-m.foldersWidth()-m.notesWidth()-6, 30) }
func (m Model) contentHeight() int { return max(m.height-4, 5) }

func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderFolders(),
		m.renderNotes(),
		m.renderEditor(),
	)

	view := body + "\n" + m.renderStatus()

	if m.mode == ModeNewFolder || m.mode == ModeRenameFolder {
		title := "New folder"
		if m.mode == ModeRenameFolder {
			title = "Rename folder"
		}
		dialog := DialogStyle.Render(TitleStyle.Render(title) + "\n\n" + m.dialogInput.View())
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, dialog)
	}

	return view
}

func (m Model) panelStyle(p Panel) lipgloss.Style {
	if m.activePanel == p && m.mode == ModeNormal {
		return ActivePanelStyle
	}
	return PanelStyle
}

func (m Model) renderFolders() string {
	trashID := m.store.TrashID()
	activeID := m.store.ActiveFolderID()

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Folders") + "\n")
	for i, f := range m.folders {
		icon := FolderIcon
		if f.ID == trashID {
			icon = TrashIcon
		}
		line := fmt.Sprintf("%s %s (%d)", icon, f.Name, m.store.CountInFolder(f.ID))
		style := ListItemStyle
		if m.activePanel == PanelFolders && i == m.folderCursor {
			style = SelectedListItemStyle
		} else if f.ID == activeID {
			style = ListItemStyle.Foreground(special)
		}
		b.WriteString(style.Render(line) + "\n")
	}

	return m.panelStyle(PanelFolders).
		Width(m.foldersWidth()).
		Height(m.contentHeight()).
		Render(b.String())
}

func (m Model) renderNotes() string {
	var b strings.Builder

	if m.mode == ModeSearch {
		b.WriteString(m.searchInput.View() + "\n\n")
	} else if q := m.store.Query(); q != "" {
		b.WriteString(MutedStyle.Render("search: "+q) + "\n\n")
	} else {
		b.WriteString(TitleStyle.Render("Notes") + "\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(MutedStyle.Render("No notes"))
	}
	maxRows := max((m.contentHeight()-3)/2, 1)
	start := 0
	if m.noteCursor >= maxRows {
		start = m.noteCursor - maxRows + 1
	}
	for i := start; i < len(m.visible) && i < start+maxRows; i++ {
		n := m.visible[i]
		title := n.Title
		if title == "" {
			title = "(Untitled)"
		}
		if n.Pinned {
			title = PinIcon + " " + title
		}
		line := title
		style := ListItemStyle
		if m.activePanel != PanelFolders && i == m.noteCursor {
			style = SelectedListItemStyle
		} else if n.Trashed {
			style = TrashedStyle
		}
		b.WriteString(style.Render(line) + "\n")
		meta := store.TimeAgo(n.UpdatedAt)
		if p := store.Preview(n.Body); p != "" {
			r := []rune(p)
			if len(r) > 28 {
				p = string(r[:28]) + "…"
			}
			meta += "  " + p
		}
		b.WriteString(MutedStyle.Render("  "+meta) + "\n")
	}

	return m.panelStyle(PanelNotes).
		Width(m.notesWidth()).
		Height(m.contentHeight()).
		Render(b.String())
}

func (m Model) renderEditor() string {
	var b strings.Builder

	if m.draft.NoteID() == "" {
		b.WriteString(MutedStyle.Render("Select or create a note"))
	} else {
		b.WriteString(m.titleInput.View() + "\n\n")
		b.WriteString(m.bodyArea.View())
		if n, ok := m.store.NoteByID(m.draft.NoteID()); ok {
			b.WriteString("\n" + MutedStyle.Render("Last edited "+store.TimeAgo(n.UpdatedAt)))
			if n.Trashed {
				b.WriteString(" " + TrashedStyle.Render("[in trash]"))
			}
		}
	}

	return m.panelStyle(PanelEditor).
		Width(m.editorWidth()).
		Height(m.contentHeight()).
		Render(b.String())
}

func (m Model) renderStatus() string {
	if m.status != "" {
		return StatusBarStyle.Render(TrashedStyle.Render(m.status))
	}
	var hints []string
	for _, b := range m.keys.ShortHelp() {
		hints = append(hints, KeyStyle.Render(b.Help().Key)+" "+KeyHintStyle.Render(b.Help().Desc))
	}
	return StatusBarStyle.Render(strings.Join(hints, "  "))
}
