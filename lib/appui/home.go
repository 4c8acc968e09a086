// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

package appui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/campusvibes/campusvibes/lib/api"
	"github.com/campusvibes/campusvibes/lib/session"
	"github.com/campusvibes/campusvibes/lib/tui"
)

// sectionPreviewCount is how many events each curated section shows
// before the user asks to see all. Collapsing is a display slice, not
// a refetch.
const sectionPreviewCount = 5

// sectionLoad is the fetch state of one curated section.
type sectionLoad struct {
	loading bool
	err     error
	events  []api.Event
}

// homeState is the curated sections plus search.
type homeState struct {
	sections map[api.Section]*sectionLoad
	expanded map[api.Section]bool

	// Search. searching means the input has focus; active means
	// results are displayed instead of the sections.
	searchInput   textinput.Model
	searching     bool
	active        bool
	query         string
	results       []api.Event
	resultsErr    error
	searchLoading bool

	cursor int
}

func newHomeState() homeState {
	input := textinput.New()
	input.Placeholder = "search events"
	input.CharLimit = 128
	input.Width = 40

	sections := make(map[api.Section]*sectionLoad, len(api.Sections))
	for _, section := range api.Sections {
		sections[section] = &sectionLoad{loading: true}
	}
	return homeState{
		sections:    sections,
		expanded:    make(map[api.Section]bool),
		searchInput: input,
	}
}

// homeRow is one selectable event row in the flattened home list.
type homeRow struct {
	section api.Section
	event   api.Event
}

// rows flattens the visible events: search results when search is
// active, otherwise each section's preview slice (or full list when
// expanded).
func (home *homeState) rows() []homeRow {
	if home.active {
		rows := make([]homeRow, 0, len(home.results))
		for _, event := range home.results {
			rows = append(rows, homeRow{event: event})
		}
		return rows
	}

	var rows []homeRow
	for _, section := range api.Sections {
		load := home.sections[section]
		events := load.events
		if !home.expanded[section] && len(events) > sectionPreviewCount {
			events = events[:sectionPreviewCount]
		}
		for _, event := range events {
			rows = append(rows, homeRow{section: section, event: event})
		}
	}
	return rows
}

func (home *homeState) clampCursor() {
	if count := len(home.rows()); home.cursor >= count {
		home.cursor = count - 1
	}
	if home.cursor < 0 {
		home.cursor = 0
	}
}

// loadSections issues one fetch per curated section. Each lands
// independently, so a slow section does not block the others.
func (model *Model) loadSections() tea.Cmd {
	seq := model.seq
	backend := model.backend
	commands := make([]tea.Cmd, 0, len(api.Sections))
	for _, section := range api.Sections {
		section := section
		commands = append(commands, func() tea.Msg {
			events, err := backend.Events(context.Background(), section)
			return sectionLoadedMsg{seq: seq, section: section, events: events, err: err}
		})
	}
	return tea.Batch(commands...)
}

func (model Model) handleSectionLoaded(message sectionLoadedMsg) (tea.Model, tea.Cmd) {
	if message.seq != model.seq || model.screen != ScreenHome {
		return model, nil
	}
	load := model.home.sections[message.section]
	load.loading = false
	load.err = message.err
	load.events = message.events
	return model, nil
}

func (model Model) updateHome(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if model.home.searching {
		return model.updateHomeSearch(message)
	}

	switch {
	case key.Matches(message, model.keys.Up):
		if model.home.cursor > 0 {
			model.home.cursor--
		}
		return model, nil

	case key.Matches(message, model.keys.Down):
		if model.home.cursor < len(model.home.rows())-1 {
			model.home.cursor++
		}
		return model, nil

	case key.Matches(message, model.keys.PageUp):
		model.home.cursor -= listPageStride
		if model.home.cursor < 0 {
			model.home.cursor = 0
		}
		return model, nil

	case key.Matches(message, model.keys.PageDown):
		model.home.cursor += listPageStride
		model.home.clampCursor()
		return model, nil

	case key.Matches(message, model.keys.SearchActivate):
		model.home.searching = true
		model.home.searchInput.Focus()
		return model, nil

	case key.Matches(message, model.keys.Back):
		if model.home.active {
			// Leave search results and restore the sections.
			model.home.active = false
			model.home.query = ""
			model.home.searchInput.SetValue("")
			model.home.cursor = 0
			model.seq++
			model.home.sections = newHomeState().sections
			command := model.loadSections()
			return model, command
		}
		return model, nil

	case key.Matches(message, model.keys.SeeAll):
		rows := model.home.rows()
		if !model.home.active && len(rows) > 0 {
			section := rows[min(model.home.cursor, len(rows)-1)].section
			model.home.expanded[section] = !model.home.expanded[section]
			model.home.clampCursor()
		}
		return model, nil

	case key.Matches(message, model.keys.Confirm):
		rows := model.home.rows()
		if len(rows) > 0 && model.home.cursor < len(rows) {
			return model.openDetail(rows[model.home.cursor].event)
		}
		return model, nil

	case key.Matches(message, model.keys.GoDashboard):
		command := model.navigate(ScreenDashboard)
		return model, command

	case key.Matches(message, model.keys.GoProfile):
		command := model.navigate(ScreenProfile)
		return model, command

	case key.Matches(message, model.keys.NewEvent):
		if model.can(session.CapCreateEvent) {
			return model.openEventForm(nil)
		}
		return model, nil
	}
	return model, nil
}

func (model Model) updateHomeSearch(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEsc:
		model.home.searching = false
		model.home.searchInput.Blur()
		return model, nil

	case tea.KeyEnter:
		model.home.searching = false
		model.home.searchInput.Blur()
		return model.submitSearch()
	}

	var command tea.Cmd
	model.home.searchInput, command = model.home.searchInput.Update(message)
	return model, command
}

// submitSearch runs the query. An empty query is a valid search; the
// backend decides what it returns.
func (model Model) submitSearch() (tea.Model, tea.Cmd) {
	query := strings.TrimSpace(model.home.searchInput.Value())
	model.home.searchLoading = true
	model.seq++
	seq := model.seq
	backend := model.backend
	return model, func() tea.Msg {
		events, err := backend.SearchEvents(context.Background(), query)
		return searchResultMsg{seq: seq, query: query, events: events, err: err}
	}
}

func (model Model) handleSearchResult(message searchResultMsg) (tea.Model, tea.Cmd) {
	if message.seq != model.seq || model.screen != ScreenHome {
		return model, nil
	}
	model.home.searchLoading = false
	model.home.active = true
	model.home.query = message.query
	model.home.results = message.events
	model.home.resultsErr = message.err
	model.home.cursor = 0
	return model, nil
}

// openDetail enters the event detail screen and fetches the full
// event plus attendees. The origin screen is remembered so Esc
// returns there.
func (model Model) openDetail(event api.Event) (Model, tea.Cmd) {
	origin := model.screen
	model.seq++
	model.screen = ScreenDetail
	model.detail = newDetailState(event, origin)
	seq := model.seq
	backend := model.backend
	eventID := event.ID
	return model, func() tea.Msg {
		detail, err := backend.Event(context.Background(), eventID)
		return eventLoadedMsg{seq: seq, detail: detail, err: err}
	}
}

func (model Model) viewHome() string {
	var builder strings.Builder

	searchLine := lipgloss.NewStyle().Foreground(model.theme.FaintText).Render("/ ")
	if model.home.searching {
		searchLine += model.home.searchInput.View()
	} else if model.home.active {
		searchLine += fmt.Sprintf("results for %q  (Esc to clear)", model.home.query)
	} else {
		searchLine += lipgloss.NewStyle().Foreground(model.theme.HelpText).Render("search")
	}
	builder.WriteString(searchLine + "\n\n")

	rows := model.home.rows()
	rowIndex := 0

	if model.home.active {
		if model.home.resultsErr != nil {
			builder.WriteString(lipgloss.NewStyle().
				Foreground(model.theme.ErrorText).
				Render("search failed: "+model.home.resultsErr.Error()) + "\n")
		} else if len(rows) == 0 && !model.home.searchLoading {
			builder.WriteString(lipgloss.NewStyle().
				Foreground(model.theme.FaintText).
				Render("no events match") + "\n")
		}
		for _, row := range rows {
			builder.WriteString(model.renderEventRow(row.event, rowIndex == model.home.cursor) + "\n")
			rowIndex++
		}
		return builder.String()
	}

	for _, section := range api.Sections {
		load := model.home.sections[section]
		builder.WriteString(model.renderSectionHeading(section) + "\n")

		switch {
		case load.loading:
			builder.WriteString(lipgloss.NewStyle().
				Foreground(model.theme.FaintText).
				Render("  loading...") + "\n")
		case load.err != nil:
			builder.WriteString(lipgloss.NewStyle().
				Foreground(model.theme.ErrorText).
				Render("  "+load.err.Error()) + "\n")
		case len(load.events) == 0:
			builder.WriteString(lipgloss.NewStyle().
				Foreground(model.theme.FaintText).
				Render("  no events") + "\n")
		default:
			shown := load.events
			if !model.home.expanded[section] && len(shown) > sectionPreviewCount {
				shown = shown[:sectionPreviewCount]
			}
			for _, event := range shown {
				builder.WriteString(model.renderEventRow(event, rowIndex == model.home.cursor) + "\n")
				rowIndex++
			}
			if hidden := len(load.events) - len(shown); hidden > 0 {
				builder.WriteString(lipgloss.NewStyle().
					Foreground(model.theme.HelpText).
					Render(fmt.Sprintf("  +%d more (a to see all)", hidden)) + "\n")
			}
		}
		builder.WriteString("\n")
	}

	return builder.String()
}

func (model Model) renderSectionHeading(section api.Section) string {
	titles := map[api.Section]string{
		api.SectionNearYou:     "Near you",
		api.SectionRecommended: "Recommended",
		api.SectionYourCampus:  "Your campus",
	}
	return lipgloss.NewStyle().
		Foreground(model.theme.Accent).
		Bold(true).
		Render(titles[section])
}

func (model Model) renderEventRow(event api.Event, selected bool) string {
	excerpt := ""
	if lines := tui.ExtractExcerpt(event.Description, 48, 1); len(lines) > 0 {
		excerpt = lines[0]
	}
	line := fmt.Sprintf("  %-32s %-16s %s", truncate(event.Title, 32), truncate(event.Location, 16), excerpt)

	style := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	if selected {
		style = lipgloss.NewStyle().
			Foreground(model.theme.SelectedForeground).
			Background(model.theme.SelectedBackground)
	}
	return style.Render(line)
}

// truncate clips text to a display width in columns. Wide and
// multi-byte runes are never split.
func truncate(text string, width int) string {
	return ansi.Truncate(text, width, "…")
}
