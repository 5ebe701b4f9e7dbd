package cli

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/slidey/internal/domain"
)

var (
	reLine       = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)
	reChartStyle = regexp.MustCompile(`unknown chart style ("[^"]*")`)
	reLayout     = regexp.MustCompile(`unknown layout ("[^"]*")|layout index (-?\d+) out of range`)
)

// renderError prints a one-line headline for err followed by the full chain
// when the headline alone hides detail.
func renderError(err error) string {
	if err == nil {
		return ""
	}
	th := defaultTheme()

	msg := userMessage(err)
	out := th.Error.Render("error:") + " " + msg
	if detail := err.Error(); detail != msg {
		out += "\n" + th.Subtitle.Render("  "+detail)
	}
	return out
}

func userMessage(err error) string {
	if err == nil {
		return ""
	}
	s := err.Error()

	var oe *domain.OpError
	if !errors.As(err, &oe) {
		return s
	}

	switch oe.Kind {
	case domain.KindNotFound:
		switch {
		case strings.Contains(s, "imagefile."):
			return "Image not found"
		case strings.Contains(oe.Op, "yamldeck"):
			return "Deck not found"
		default:
			return "Not found"
		}

	case domain.KindMissingVar:
		if v := extractMissingVarName(s); v != "" {
			return "Missing variable " + v
		}
		return "Missing variable"

	case domain.KindInvalidDeck, domain.KindInvalidConfig:
		if m := reChartStyle.FindStringSubmatch(s); m != nil {
			return "Unknown chart style " + m[1]
		}
		if m := reLayout.FindStringSubmatch(s); m != nil {
			if m[1] != "" {
				return "Unknown layout " + m[1]
			}
			return "Layout index " + m[2] + " out of range"
		}
		if errors.Is(err, domain.ErrNoPlaceholder) {
			return "Layout has no placeholder for this command"
		}

		base := "deck"
		if oe.Kind == domain.KindInvalidConfig {
			base = "config"
		}
		if strings.TrimSpace(oe.Path) != "" {
			base = filepath.Base(oe.Path)
		}
		if line := extractLine(s); line != "" {
			return "Invalid YAML at " + base + " line " + line
		}
		return "Invalid YAML at " + base

	case domain.KindRender:
		return "Could not render presentation"

	default:
		return s
	}
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

func extractMissingVarName(s string) string {
	ls := strings.ToLower(s)

	i := strings.LastIndex(ls, "missing variable:")
	if i < 0 {
		return ""
	}
	fields := strings.Fields(s[i+len("missing variable:"):])
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[0], " .,:;\"'")
}
