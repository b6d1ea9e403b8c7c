package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/five82/marquee/internal/state"
)

// renderMain renders the header, search bar, panes, and command bar.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSearchBar())
	b.WriteString("\n")
	b.WriteString(m.renderPanes())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())

	return b.String()
}

// renderHeader renders the logo and session counters.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("marquee", styles.Logo)}

	parts = append(parts,
		bg.Render("Watchlist:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", len(m.session.Watchlist())), styles.Text),
	)

	if summary, ok := m.session.PollSummary(); ok {
		parts = append(parts,
			bg.Render("Poll:", styles.MutedText)+bg.Space()+
				bg.Render(pluralize(summary.Total, "vote"), styles.SuccessText),
		)
	} else {
		parts = append(parts, bg.Render("Poll: none", styles.MutedText))
	}

	parts = append(parts,
		bg.Render("Genre:", styles.MutedText)+bg.Space()+
			bg.Render(m.session.Genre().Name, styles.AccentText),
	)

	if m.session.Loading() {
		parts = append(parts, bg.Render(m.spinner.View(), styles.InfoText))
	}

	// The theme toggle names the mode it switches to.
	parts = append(parts,
		bg.Render("T", styles.WarningText)+bg.Space()+
			bg.Render(m.session.Theme().Label(), styles.MutedText),
	)

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderSearchBar renders the search input.
func (m Model) renderSearchBar() string {
	bar := lipgloss.NewStyle().
		Background(lipgloss.Color(m.searchBarBg())).
		Width(m.width)
	if m.searching || m.search.Value() != "" {
		return bar.Render(m.search.View())
	}
	styles := m.theme.Styles().WithBackground(m.searchBarBg())
	return bar.Render(styles.FaintText.Render("/ Search movies...  (t: trending  r: random)"))
}

// searchBarBg highlights the search bar while it has focus.
func (m Model) searchBarBg() string {
	if m.searching {
		return m.theme.FocusBg
	}
	return m.theme.SurfaceAlt
}

// renderCommandBar renders the short key hints.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var parts []string
	for _, binding := range m.keys.ShortHelp() {
		h := binding.Help()
		parts = append(parts, bg.Render(h.Key, styles.WarningText)+bg.Space()+bg.Render(h.Desc, styles.MutedText))
	}
	return styles.Footer.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderPanes lays out the results, watchlist, and poll panes.
func (m Model) renderPanes() string {
	bodyHeight := maxInt(m.height-3, 6)

	if m.width < LayoutCompactWidth {
		resultsH := maxInt(bodyHeight/2, 3)
		watchH := maxInt(bodyHeight/4, 3)
		pollH := maxInt(bodyHeight-resultsH-watchH, 3)
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderResultsPane(m.width, resultsH),
			m.renderWatchlistPane(m.width, watchH),
			m.renderPollPane(m.width, pollH),
		)
	}

	sideWidth := maxInt(m.width/3, LayoutSideMinWidth)
	resultsWidth := m.width - sideWidth
	watchH := bodyHeight / 2
	pollH := bodyHeight - watchH

	side := lipgloss.JoinVertical(lipgloss.Left,
		m.renderWatchlistPane(sideWidth, watchH),
		m.renderPollPane(sideWidth, pollH),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderResultsPane(resultsWidth, bodyHeight),
		side,
	)
}

// paneBox draws a bordered pane of the given outer size.
func (m Model) paneBox(title string, pane Pane, width, height int, lines []string) string {
	styles := m.theme.Styles()
	border := m.paneBorder(pane)
	titleStyle := styles.MutedText.Bold(true)
	if border == m.theme.BorderFocus {
		titleStyle = styles.AccentText.Bold(true)
	}

	innerH := maxInt(height-2, 1)
	content := append([]string{titleStyle.Render(title)}, lines...)
	if len(content) > innerH {
		content = content[:innerH]
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(maxInt(width-2, 4)).
		Height(innerH).
		Render(strings.Join(content, "\n"))
}

// paneBorder returns the border color for pane. Every pane dims while the
// search bar is focused.
func (m Model) paneBorder(pane Pane) string {
	switch {
	case m.searching:
		return m.theme.BorderMuted
	case m.focus == pane:
		return m.theme.BorderFocus
	default:
		return m.theme.Border
	}
}

// visibleRange returns the window of rows to draw so that selected stays on
// screen.
func visibleRange(selected, count, capacity int) (int, int) {
	if capacity <= 0 || count <= capacity {
		return 0, count
	}
	start := selected - capacity/2
	if start < 0 {
		start = 0
	}
	if start+capacity > count {
		start = count - capacity
	}
	return start, start + capacity
}

func (m Model) renderResultsPane(width, height int) string {
	styles := m.theme.Styles()
	title := "Trending This Week"
	if q := strings.TrimSpace(m.session.Query()); q != "" {
		title = fmt.Sprintf("Results for %q", truncate(q, 30))
	}

	var lines []string
	switch m.session.GridStatus() {
	case state.GridLoading:
		lines = append(lines, styles.InfoText.Render(m.spinner.View()+" Loading movies..."))
	case state.GridError:
		lines = append(lines, styles.DangerText.Render("Error loading movies"))
	case state.GridEmpty:
		lines = append(lines, styles.MutedText.Render("No movies found"))
	case state.GridReady:
		lines = m.resultLines(width-4, height-3)
	}
	return m.paneBox(title, PaneResults, width, height, lines)
}

func (m Model) resultLines(width, capacity int) []string {
	styles := m.theme.Styles()
	results := m.session.Results()
	selected := clampRow(m.resultRow, len(results))
	start, end := visibleRange(selected, len(results), capacity)

	titleWidth := maxInt(width-ratingColumnWidth-yearColumnWidth-3, 8)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		movie := results[i]
		marker := ternary(m.session.InWatchlist(movie.ID), "★", " ")
		row := marker + " " +
			padLeft(formatRating(movie.VoteAverage), ratingColumnWidth-1) + "  " +
			padRight(truncate(movie.Title, titleWidth), titleWidth) + " " +
			releaseYear(movie.ReleaseDate)

		if i == selected && m.focus == PaneResults && !m.searching {
			lines = append(lines, styles.Selected.Render(padRight(row, width)))
			continue
		}
		lines = append(lines,
			styles.WarningText.Render(marker)+" "+
				styles.RatingText.Render(padLeft(formatRating(movie.VoteAverage), ratingColumnWidth-1))+"  "+
				styles.Text.Render(padRight(truncate(movie.Title, titleWidth), titleWidth))+" "+
				styles.MutedText.Render(releaseYear(movie.ReleaseDate)),
		)
	}
	return lines
}

func (m Model) renderWatchlistPane(width, height int) string {
	styles := m.theme.Styles()
	movies := m.session.Watchlist()
	title := fmt.Sprintf("My Watchlist (%d)", len(movies))

	if len(movies) == 0 {
		return m.paneBox(title, PaneWatchlist, width, height,
			[]string{styles.MutedText.Render("Your watchlist is empty")})
	}

	selected := clampRow(m.watchRow, len(movies))
	start, end := visibleRange(selected, len(movies), height-3)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		text := truncate(movies[i].Title, width-6)
		if i == selected && m.focus == PaneWatchlist {
			lines = append(lines, styles.Selected.Render(padRight(text, width-4)))
			continue
		}
		lines = append(lines, styles.Text.Render(text))
	}
	return m.paneBox(title, PaneWatchlist, width, height, lines)
}

func (m Model) renderPollPane(width, height int) string {
	styles := m.theme.Styles()
	summary, ok := m.session.PollSummary()
	if !ok {
		return m.paneBox("Movie Poll", PanePoll, width, height,
			[]string{styles.MutedText.Render("No active poll. Press p to create one.")})
	}

	ref := m.now
	if ref.Before(summary.CreatedAt) {
		ref = summary.CreatedAt
	}
	age := humanize.RelTime(summary.CreatedAt, ref, "ago", "from now")
	lines := []string{
		styles.MutedText.Render(fmt.Sprintf("Started %s · Total votes: %d", age, summary.Total)),
	}
	title := "Movie Poll #" + summary.ShortID()

	selected := clampRow(m.pollRow, len(summary.Entries))
	start, end := visibleRange(selected, len(summary.Entries), height-4)
	titleWidth := maxInt(width-pollBarWidth-18, 6)
	for i := start; i < end; i++ {
		entry := summary.Entries[i]
		pct := "   -"
		bar := strings.Repeat("·", pollBarWidth)
		if entry.HasPercent {
			pct = padLeft(fmt.Sprintf("%d%%", entry.Percent), 4)
			filled := entry.Percent * pollBarWidth / 100
			bar = strings.Repeat("█", filled) + strings.Repeat("·", pollBarWidth-filled)
		}
		row := padRight(truncate(entry.Movie.Title, titleWidth), titleWidth) + " " +
			padLeft(fmt.Sprintf("%d", entry.Votes), 3) + " " + pct + " " + bar

		if i == selected && m.focus == PanePoll {
			lines = append(lines, styles.Selected.Render(row))
			continue
		}
		lines = append(lines, styles.Text.Render(row))
	}
	return m.paneBox(title, PanePoll, width, height, lines)
}
