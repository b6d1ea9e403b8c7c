package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// placeModal centers a bordered dialog over the whole screen.
func (m Model) placeModal(content string, width int) string {
	if width > m.width-4 {
		width = maxInt(m.width-4, 20)
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Padding(1, 2).
		Width(width)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(content),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// renderDetail renders the movie detail dialog.
func (m Model) renderDetail() string {
	movie, ok := m.session.Detail()
	if !ok {
		return m.renderMain()
	}
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(movie.Title))
	b.WriteString("\n\n")

	b.WriteString(styles.MutedText.Render(padRight("Rating", 10)))
	b.WriteString(styles.RatingText.Render(formatRating(movie.VoteAverage) + "/10"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(padRight("Released", 10)))
	b.WriteString(styles.Text.Render(releaseDate(movie.ReleaseDate)))
	b.WriteString("\n")
	if m.posters != nil {
		b.WriteString(styles.MutedText.Render(padRight("Poster", 10)))
		b.WriteString(styles.InfoText.Render(truncate(m.posters.PosterURL(movie), detailWidth-16)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.detailViewport.View())
	b.WriteString("\n\n")

	action := "Add to Watchlist"
	actionStyle := styles.SuccessText
	if m.session.InWatchlist(movie.ID) {
		action = "Remove from Watchlist"
		actionStyle = styles.DangerText
	}
	b.WriteString(styles.WarningText.Render("a") + " " + actionStyle.Render(action))
	b.WriteString("   ")
	b.WriteString(styles.WarningText.Render("esc") + " " + styles.MutedText.Render("Close"))

	return m.placeModal(b.String(), detailWidth)
}

// renderPollSetup renders the dialog shown before a poll is created.
func (m Model) renderPollSetup() string {
	styles := m.theme.Styles()
	movies := m.session.Watchlist()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Create Movie Poll"))
	b.WriteString("\n\n")
	if len(movies) == 0 {
		b.WriteString(styles.MutedText.Render("Your watchlist is empty."))
	} else {
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("Candidates from your watchlist (%d):", len(movies))))
		b.WriteString("\n")
		for _, movie := range movies {
			b.WriteString(styles.Text.Render("  • " + truncate(movie.Title, pollSetupWidth-10)))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.WarningText.Render("enter") + " " + styles.SuccessText.Render("Create poll"))
	b.WriteString("   ")
	b.WriteString(styles.WarningText.Render("esc") + " " + styles.MutedText.Render("Cancel"))

	return m.placeModal(b.String(), pollSetupWidth)
}

// renderNotice renders a pending notice as a blocking alert.
func (m Model) renderNotice() string {
	styles := m.theme.Styles()
	content := styles.WarningText.Bold(true).Render(m.session.Notice()) +
		"\n\n" + styles.FaintText.Render("Press any key to continue")
	return m.placeModal(content, noticeWidth)
}
