package app

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mkotturi/mdscope/internal/forge"
	"github.com/mkotturi/mdscope/internal/theme"
)

// dispatchInput routes a submitted omnibox value according to the
// purpose the omnibox was opened for.
func (m Model) dispatchInput(value string) (tea.Model, tea.Cmd) {
	switch m.purpose {
	case inputBookmarkTitle:
		return m.addBookmark(value)
	case inputRenameBookmark:
		return m.renameBookmark(value)
	default:
		return m.executeInput(value)
	}
}

func (m Model) addBookmark(title string) (tea.Model, tea.Cmd) {
	if title == "" || m.doc == nil || m.bookmarks == nil {
		return m, nil
	}
	if err := m.bookmarks.Add(title, m.doc.Location); err != nil {
		m.statusBar.SetError(fmt.Sprintf("Saving bookmark: %s", err))
		return m, nil
	}
	m.statusBar.SetMessage(fmt.Sprintf("Bookmarked: %s", title))
	return m, nil
}

func (m Model) renameBookmark(title string) (tea.Model, tea.Cmd) {
	if title == "" || m.bookmarks == nil {
		return m, nil
	}
	if _, err := m.bookmarks.Rename(m.renameIndex, title); err != nil {
		m.statusBar.SetError(fmt.Sprintf("Saving bookmark: %s", err))
		return m, nil
	}
	m.bookmarkPanel.SetBookmarks(m.bookmarks.All())
	return m, nil
}

// executeInput interprets an omnibox value: a known command word first,
// anything else as a location to open.
func (m Model) executeInput(value string) (tea.Model, tea.Cmd) {
	if value == "" {
		return m, nil
	}

	fields := strings.Fields(value)
	word := strings.ToLower(fields[0])
	tail := strings.TrimSpace(strings.TrimPrefix(value, fields[0]))

	switch word {
	case "q", "quit", "exit":
		return m, tea.Quit

	case "?", "help":
		m.showHelp()
		return m, nil

	case "h", "history":
		return m.toggleHistoryPanel()

	case "b", "bm", "bookmarks":
		return m.toggleBookmarksPanel()

	case "c", "toc", "contents":
		return m.toggleContentsPanel()

	case "theme":
		return m.themeCommand(tail)

	case "reload":
		return m.reloadConfig()

	case "gh", "github":
		cmd := m.forgeLook(forge.GitHub, tail)
		return m, cmd

	case "gl", "gitlab":
		cmd := m.forgeLook(forge.GitLab, tail)
		return m, cmd

	case "bb", "bitbucket":
		cmd := m.forgeLook(forge.BitBucket, tail)
		return m, cmd

	case "cb", "codeberg":
		cmd := m.forgeLook(forge.Codeberg, tail)
		return m, cmd
	}

	location := ParseUserLocation(value)
	cmd := m.visit(location, true)
	if location.IsLocal() && !m.loader.MaybeMarkdown(location) {
		m.statusBar.SetMessage("File does not have a Markdown extension; opening anyway")
	}
	return m, cmd
}

// forgeLook resolves an owner/repo shorthand against a forge and opens
// the resulting raw URL. Shorthand that does not parse is dropped
// without comment; a shorthand that parses but resolves to nothing gets
// an error message.
func (m *Model) forgeLook(f forge.Forge, tail string) tea.Cmd {
	req, ok := forge.ParseShorthand(tail)
	if !ok {
		return nil
	}

	m.loading = true
	m.statusBar.SetLoading(true)
	m.statusBar.SetMessage("")

	resolver := m.resolver
	return func() tea.Msg {
		url, found := resolver.Resolve(context.Background(), f, req)
		return forgeResolvedMsg{forgeName: f.Name, url: url, ok: found}
	}
}

func (m Model) themeCommand(name string) (tea.Model, tea.Cmd) {
	if name == "" {
		m.statusBar.SetMessage(fmt.Sprintf("Current: %s | Available: %s",
			theme.Current.Name, strings.Join(theme.List(), ", ")))
		return m, nil
	}

	if !theme.Set(name) {
		m.statusBar.SetError(fmt.Sprintf("Unknown theme: %s (available: %s)",
			name, strings.Join(theme.List(), ", ")))
		return m, nil
	}

	m.config.Theme = name
	if err := m.config.Save(); err != nil {
		m.statusBar.SetError(fmt.Sprintf("Saving config: %s", err))
	} else {
		m.statusBar.SetMessage(fmt.Sprintf("Theme: %s", name))
	}
	return m, nil
}

// reloadConfig re-reads the configuration file and re-renders the
// current document under the possibly changed settings.
func (m Model) reloadConfig() (tea.Model, tea.Cmd) {
	if err := m.config.Reload(); err != nil {
		m.statusBar.SetError(fmt.Sprintf("Reloading config: %s", err))
		return m, nil
	}
	theme.Set(m.config.Theme)
	m.rerender()
	m.statusBar.SetMessage("Configuration reloaded")
	return m, nil
}

// showHelp displays the keybinding reference in the viewport.
func (m *Model) showHelp() {
	t := theme.Current

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Secondary).
		Width(20)

	descStyle := lipgloss.NewStyle().
		Foreground(t.Text)

	var sb strings.Builder

	sb.WriteString(titleStyle.Render("mdscope Keybindings"))
	sb.WriteString("\n\n")

	sections := []struct {
		name string
		keys []struct{ k, d string }
	}{
		{"Reading", []struct{ k, d string }{
			{"j / Down", "Scroll down"},
			{"k / Up", "Scroll up"},
			{"Ctrl+d", "Half page down"},
			{"Ctrl+u", "Half page up"},
			{"gg", "Go to top"},
			{"G", "Go to bottom"},
		}},
		{"Navigation", []struct{ k, d string }{
			{"o", "Open a file, URL, or command"},
			{"H", "Go back in history"},
			{"L", "Go forward in history"},
			{"r", "Reload document"},
			{"B", "Bookmark current document"},
		}},
		{"Panels", []struct{ k, d string }{
			{"Ctrl+h", "History panel"},
			{"b", "Bookmarks panel"},
			{"c", "Table of contents"},
			{"Esc", "Close panel"},
		}},
		{"Commands (via o)", []struct{ k, d string }{
			{"<path or url>", "Open a document"},
			{"gh owner/repo", "View README from GitHub"},
			{"gh o/r file.md", "View a specific file"},
			{"gh o/r:branch", "View from a specific branch"},
			{"gl / bb / cb", "Same for GitLab, BitBucket, Codeberg"},
			{"history", "History panel"},
			{"bookmarks", "Bookmarks panel"},
			{"contents", "Table of contents"},
			{"theme <name>", "Change theme"},
			{"reload", "Reload configuration"},
			{"help", "Show this help"},
			{"quit", "Quit mdscope"},
		}},
	}

	for _, section := range sections {
		sb.WriteString(sectionStyle.Render(section.name))
		sb.WriteString("\n\n")
		for _, binding := range section.keys {
			sb.WriteString(keyStyle.Render(binding.k))
			sb.WriteString(descStyle.Render(binding.d))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	m.docViewport.SetContent(sb.String())
	m.statusBar.SetLocation("Help")
}
