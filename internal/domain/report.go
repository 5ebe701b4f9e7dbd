package domain

import "time"

// SlideReport summarises what was placed on one slide.
type SlideReport struct {
	Index      int    `json:"index"`
	Layout     string `json:"layout"`
	Title      string `json:"title,omitempty"`
	Paragraphs int    `json:"paragraphs"`
	Pictures   int    `json:"pictures"`
	Charts     int    `json:"charts"`
}

// BuildReport is the outcome of interpreting a deck.
type BuildReport struct {
	ID         string        `json:"id"`
	DeckPath   string        `json:"deck_path"`
	OutputPath string        `json:"output_path,omitempty"`
	StartedAt  time.Time     `json:"started_at"`
	EndedAt    time.Time     `json:"ended_at"`
	Slides     []SlideReport `json:"slides"`
	Warnings   []string      `json:"warnings,omitempty"`
}

// Counts returns totals across all slides.
func (r BuildReport) Counts() (paragraphs, pictures, charts int) {
	for _, s := range r.Slides {
		paragraphs += s.Paragraphs
		pictures += s.Pictures
		charts += s.Charts
	}
	return paragraphs, pictures, charts
}
