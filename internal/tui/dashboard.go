// Package tui provides the interactive terminal dashboard. It is built
// on the bubbletea/lipgloss stack and renders three tabs: Packages,
// Badges, and Server. Data is refreshed every 5 seconds through the
// app's concurrent refresh; the notification queue feeds the toast line
// at the bottom of the screen.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zenv-lang/zenvhub"
)

var (
	// titleStyle renders the application title bar.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("29")).
			Padding(0, 1)

	// activeTabStyle renders the currently selected tab label.
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("29")).
			Padding(0, 2)

	// inactiveTabStyle renders unselected tab labels.
	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2)

	// headerCellStyle is used for table column headers.
	headerCellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10")).
			PaddingRight(1)

	// rowStyle is used for table rows.
	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			PaddingRight(1)

	// dimStyle is used for "no data" messages.
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	// statusBarStyle renders the bottom status bar.
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			PaddingLeft(1)

	// toastStyles render the notification toast line by type.
	toastStyles = map[zenvhub.NotificationType]lipgloss.Style{
		zenvhub.NoticeInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).PaddingLeft(1),
		zenvhub.NoticeSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).PaddingLeft(1),
		zenvhub.NoticeError:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true).PaddingLeft(1),
	}

	okStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// tab identifies the currently active dashboard tab.
type tab int

const (
	tabPackages tab = iota
	tabBadges
	tabServer
	tabCount // sentinel — must stay last
)

const refreshInterval = 5 * time.Second

// tickMsg is sent every refreshInterval to trigger a data refresh.
type tickMsg time.Time

// refreshedMsg carries a snapshot of the store after a refresh completed.
type refreshedMsg struct {
	packages []zenvhub.Package
	badges   []zenvhub.Badge
	status   zenvhub.ServerStatus
}

// toastMsg carries the current notification queue after a change.
type toastMsg []zenvhub.Notification

// Model is the top-level bubbletea model for the dashboard.
type Model struct {
	app       *zenvhub.App
	tabs      []string
	activeTab tab

	packages []zenvhub.Package
	badges   []zenvhub.Badge
	status   zenvhub.ServerStatus
	toasts   []zenvhub.Notification

	filter    string
	filtering bool

	width     int
	height    int
	loading   bool
	lastFetch time.Time

	notifyCh chan []zenvhub.Notification
}

// New returns a Model wired to the given app. It subscribes to the
// notification container; queue changes reach the model as toastMsg.
func New(app *zenvhub.App) Model {
	m := Model{
		app:      app,
		tabs:     []string{"Packages", "Badges", "Server"},
		loading:  true,
		notifyCh: make(chan []zenvhub.Notification, 8),
	}
	app.Store.Notifications.Subscribe(func(ns []zenvhub.Notification) {
		select {
		case m.notifyCh <- ns:
		default: // dashboard busy, drop; the next change resyncs
		}
	})
	return m
}

// Init starts the periodic tick, the toast listener, and the first fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), m.waitForToast(), m.refresh())
}

// tick schedules a tickMsg after refreshInterval.
func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refresh runs the app's concurrent refresh and snapshots the store.
func (m Model) refresh() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		app.Refresh(context.Background())
		return refreshedMsg{
			packages: app.Store.Packages.Get(),
			badges:   app.Store.Badges.Get(),
			status:   app.Store.Status.Get(),
		}
	}
}

// waitForToast blocks until the notification queue changes.
func (m Model) waitForToast() tea.Cmd {
	ch := m.notifyCh
	return func() tea.Msg {
		return toastMsg(<-ch)
	}
}

// Update processes messages and returns an updated model plus commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "esc":
				m.filtering = false
				m.filter = ""
			case "enter":
				m.filtering = false
			case "backspace":
				if len(m.filter) > 0 {
					m.filter = m.filter[:len(m.filter)-1]
				}
			default:
				if len(msg.String()) == 1 {
					m.filter += msg.String()
				}
			}
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab", "right", "l":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab", "left", "h":
			m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
		case "1":
			m.activeTab = tabPackages
		case "2":
			m.activeTab = tabBadges
		case "3":
			m.activeTab = tabServer
		case "/":
			m.activeTab = tabPackages
			m.filtering = true
		case "r":
			m.loading = true
			return m, m.refresh()
		}
		return m, nil

	case tickMsg:
		m.loading = true
		return m, tea.Batch(tick(), m.refresh())

	case refreshedMsg:
		m.loading = false
		m.packages = msg.packages
		m.badges = msg.badges
		m.status = msg.status
		m.lastFetch = time.Now()
		return m, nil

	case toastMsg:
		m.toasts = msg
		return m, m.waitForToast()
	}

	return m, nil
}

// View renders the entire dashboard to a string.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading…"
	}

	var sb strings.Builder

	sb.WriteString(titleStyle.Render("  Zenv Hub  "))
	sb.WriteString("\n")

	var tabParts []string
	for i, name := range m.tabs {
		label := fmt.Sprintf(" %d: %s ", i+1, name)
		if tab(i) == m.activeTab {
			tabParts = append(tabParts, activeTabStyle.Render(label))
		} else {
			tabParts = append(tabParts, inactiveTabStyle.Render(label))
		}
	}
	sb.WriteString(strings.Join(tabParts, ""))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("─", m.width))
	sb.WriteString("\n")

	contentHeight := m.height - 6 // title, tabs, divider, toast, divider, status
	if contentHeight < 1 {
		contentHeight = 1
	}
	sb.WriteString(clipLines(m.renderActiveTab(), contentHeight))
	sb.WriteString("\n")

	sb.WriteString(strings.Repeat("─", m.width))
	sb.WriteString("\n")
	sb.WriteString(m.renderToasts())
	sb.WriteString("\n")
	sb.WriteString(m.renderStatusBar())

	return sb.String()
}

func (m Model) renderActiveTab() string {
	switch m.activeTab {
	case tabPackages:
		return m.renderPackages()
	case tabBadges:
		return m.renderBadges()
	default:
		return m.renderServer()
	}
}

func (m Model) renderPackages() string {
	pkgs := zenvhub.Search(m.packages, m.filter)
	if len(pkgs) == 0 {
		if m.filter != "" {
			return dimStyle.Render(fmt.Sprintf("No packages match %q.", m.filter))
		}
		return dimStyle.Render("No packages published.")
	}

	var sb strings.Builder
	if m.filtering || m.filter != "" {
		sb.WriteString(fmt.Sprintf("filter: %s▌\n", m.filter))
	}
	sb.WriteString(headerCellStyle.Render(pad("NAME", 24)))
	sb.WriteString(headerCellStyle.Render(pad("VERSION", 10)))
	sb.WriteString(headerCellStyle.Render(pad("AUTHOR", 16)))
	sb.WriteString(headerCellStyle.Render(pad("SIZE", 12)))
	sb.WriteString(headerCellStyle.Render("DOWNLOADS"))
	sb.WriteString("\n")
	for _, p := range pkgs {
		sb.WriteString(rowStyle.Render(pad(p.Name, 24)))
		sb.WriteString(rowStyle.Render(pad(p.Version, 10)))
		sb.WriteString(rowStyle.Render(pad(p.Author, 16)))
		sb.WriteString(rowStyle.Render(pad(zenvhub.FormatSize(p.Size), 12)))
		sb.WriteString(rowStyle.Render(fmt.Sprintf("%d", p.Downloads)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) renderBadges() string {
	if len(m.badges) == 0 {
		return dimStyle.Render("No badges published.")
	}

	var sb strings.Builder
	sb.WriteString(headerCellStyle.Render(pad("NAME", 20)))
	sb.WriteString(headerCellStyle.Render(pad("LABEL", 16)))
	sb.WriteString(headerCellStyle.Render(pad("VALUE", 16)))
	sb.WriteString(headerCellStyle.Render(pad("COLOR", 10)))
	sb.WriteString(headerCellStyle.Render("USES"))
	sb.WriteString("\n")
	for _, b := range m.badges {
		sb.WriteString(rowStyle.Render(pad(b.Name, 20)))
		sb.WriteString(rowStyle.Render(pad(b.Label, 16)))
		sb.WriteString(rowStyle.Render(pad(b.Value, 16)))
		sb.WriteString(rowStyle.Render(pad(b.Color, 10)))
		sb.WriteString(rowStyle.Render(fmt.Sprintf("%d", b.Usage)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) renderServer() string {
	var sb strings.Builder

	status := m.status.Status
	switch status {
	case zenvhub.StatusOK:
		status = okStyle.Render(status)
	case zenvhub.StatusError:
		status = errStyle.Render(status)
	default:
		status = dimStyle.Render(status)
	}
	sb.WriteString(fmt.Sprintf("Server:  %s\n", status))

	github := m.status.GitHub
	if github == "" {
		github = "unknown"
	}
	sb.WriteString(fmt.Sprintf("GitHub:  %s\n", github))
	if m.status.Timestamp != nil {
		sb.WriteString(fmt.Sprintf("As of:   %s\n", m.status.Timestamp.Format(time.RFC3339)))
	}
	return sb.String()
}

// renderToasts shows the most recent pending notification, if any.
func (m Model) renderToasts() string {
	if len(m.toasts) == 0 {
		return " "
	}
	latest := m.toasts[len(m.toasts)-1]
	style, ok := toastStyles[latest.Type]
	if !ok {
		style = statusBarStyle
	}
	return style.Render(latest.Message)
}

func (m Model) renderStatusBar() string {
	parts := []string{m.app.BaseURL()}
	if m.loading {
		parts = append(parts, "refreshing…")
	} else if !m.lastFetch.IsZero() {
		parts = append(parts, "updated "+m.lastFetch.Format("15:04:05"))
	}
	parts = append(parts, "q quit · tab switch · / filter · r refresh")
	return statusBarStyle.Render(strings.Join(parts, "  ·  "))
}

// pad right-pads or truncates s to width runes.
func pad(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}

// clipLines trims s to at most n lines.
func clipLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}
