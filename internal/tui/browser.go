// Package tui implements the interactive invoice browser: a scrolling
// list with live search and a cycling status filter.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/faktura/internal/cli"
	"github.com/Veraticus/faktura/internal/model"
)

// AmountFormatter renders an invoice amount for display.
type AmountFormatter func(amount float64) string

// statusFilters is the cycle order for the status filter key.
var statusFilters = []model.InvoiceStatus{"", model.StatusPaid, model.StatusPending, model.StatusOverdue}

// BrowserModel is the bubbletea model for the invoice browser.
type BrowserModel struct {
	invoices    []model.Invoice
	filtered    []model.Invoice
	searchInput textinput.Model
	format      AmountFormatter
	cursor      int
	filterIdx   int
	searching   bool
	quitting    bool
	width       int
	height      int
}

// NewBrowser creates a browser over a fixed invoice list.
func NewBrowser(invoices []model.Invoice, format AmountFormatter) BrowserModel {
	searchInput := textinput.New()
	searchInput.Placeholder = "invoice number or client"
	searchInput.CharLimit = 64

	m := BrowserModel{
		invoices:    invoices,
		searchInput: searchInput,
		format:      format,
	}
	m.applyFilters()
	return m
}

// Init implements tea.Model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

func (m BrowserModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "g":
		m.cursor = 0

	case "G":
		m.cursor = max(0, len(m.filtered)-1)

	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case "f":
		m.filterIdx = (m.filterIdx + 1) % len(statusFilters)
		m.applyFilters()
	}

	return m, nil
}

func (m BrowserModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil

	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.applyFilters()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.applyFilters()
	return m, cmd
}

// applyFilters recomputes the visible rows from the search query and
// the status filter, clamping the cursor.
func (m *BrowserModel) applyFilters() {
	query := strings.ToLower(strings.TrimSpace(m.searchInput.Value()))
	status := statusFilters[m.filterIdx]

	m.filtered = m.filtered[:0]
	for _, inv := range m.invoices {
		if status != "" && inv.Status != status {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(inv.InvoiceNumber), query) &&
			!strings.Contains(strings.ToLower(inv.ClientName), query) {
			continue
		}
		m.filtered = append(m.filtered, inv)
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

// Selected returns the invoice under the cursor, or nil when the view
// is empty.
func (m BrowserModel) Selected() *model.Invoice {
	if len(m.filtered) == 0 {
		return nil
	}
	inv := m.filtered[m.cursor]
	return &inv
}

// View implements tea.Model.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(cli.FormatTitle("Invoices"))
	b.WriteString("\n")

	filterLabel := "all"
	if statusFilters[m.filterIdx] != "" {
		filterLabel = string(statusFilters[m.filterIdx])
	}
	b.WriteString(cli.SubtleStyle.Render(fmt.Sprintf("filter: %s  ·  %d shown", filterLabel, len(m.filtered))))
	b.WriteString("\n")

	if m.searching || m.searchInput.Value() != "" {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.filtered) == 0 {
		b.WriteString(cli.InfoStyle.Render("No invoices match."))
	}

	for i, inv := range m.filtered {
		row := fmt.Sprintf("%-14s %-24s %10s  %s",
			inv.InvoiceNumber,
			truncate(inv.ClientName, 24),
			m.format(inv.Amount),
			cli.StatusStyle(string(inv.Status)).Render(string(inv.Status)),
		)
		if i == m.cursor {
			row = lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor).Render("▸ " + row)
		} else {
			row = "  " + row
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render("j/k move · / search · f filter · q quit"))

	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
