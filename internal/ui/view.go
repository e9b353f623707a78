package ui

import (
	"fmt"
	"strings"
)

// Render draws s as plain text.
func Render(s State) string {
	var b strings.Builder

	b.WriteString("=== Movie Review App ===\n")
	if s.Detail != nil {
		renderDetail(&b, s.Detail)
		return b.String()
	}
	renderBrowse(&b, s.Browse)
	return b.String()
}

func renderBrowse(b *strings.Builder, s BrowseState) {
	if s.Term != "" {
		fmt.Fprintf(b, "Search: %s\n\n", s.Term)
	}

	switch {
	case s.Loading && len(s.Movies) == 0:
		b.WriteString("Loading movies...\n")
		return
	case s.Error != "" && len(s.Movies) == 0:
		b.WriteString(s.Error + "\n")
		return
	case len(s.Movies) == 0:
		b.WriteString("No movies found. Try a different search term.\n")
		return
	}

	for i, m := range s.Movies {
		fmt.Fprintf(b, "[%d] %s (%s) %s\n", i+1, m.Title, m.Year, m.Type)
	}

	switch {
	case s.Loading:
		b.WriteString("\nLoading more movies...\n")
	case s.Error != "":
		b.WriteString("\n" + s.Error + "\n")
	}
	if s.CanLoadMore() {
		fmt.Fprintf(b, "\nShowing %d of %d. Type 'more' to Load More.\n", len(s.Movies), s.Total)
	}
}

func renderDetail(b *strings.Builder, d *DetailState) {
	m := d.Shown()

	fmt.Fprintf(b, "%s (%s)\n", m.Title, m.Year)
	if d.Loading {
		b.WriteString("Loading details...\n")
	}
	if m.IMDbRating != "" {
		fmt.Fprintf(b, "Rating: %s/10\n", m.IMDbRating)
	}
	for _, field := range []struct{ label, value string }{
		{"Runtime", m.Runtime},
		{"Genre", m.Genre},
		{"Director", m.Director},
		{"Actors", m.Actors},
	} {
		if field.value != "" {
			fmt.Fprintf(b, "%s: %s\n", field.label, field.value)
		}
	}
	if m.Plot != "" {
		fmt.Fprintf(b, "\nPlot\n%s\n", m.Plot)
	}

	f := d.Form
	b.WriteString("\n--- Write a Review ---\n")
	fmt.Fprintf(b, "Rating: %d/%d\n", f.Rating, MaxRating)
	fmt.Fprintf(b, "Your Review: %s\n", f.Comment)
	if f.Hint != "" {
		fmt.Fprintf(b, "! %s\n", f.Hint)
	}

	if f.Submitting {
		b.WriteString("[ Analyzing... ]\n")
	} else {
		b.WriteString("[ Submit Review ]\n")
	}

	if n := f.Notice; n != nil {
		if n.Success {
			fmt.Fprintf(b, "\n(success) %s\n", n.Text)
			fmt.Fprintf(b, "(sentiment-result %s) Sentiment: %s\n", n.Sentiment.Class(), n.Sentiment)
		} else {
			fmt.Fprintf(b, "\n(error) %s\n", n.Text)
		}
	}
}
