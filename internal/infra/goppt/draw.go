package goppt

import (
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/aalvaropc/slidey/internal/domain"
)

// bulletIndent is prepended once per outline level.
const bulletIndent = "    "

var bulletMarks = []string{"•", "–", "›"}

func drawTitle(target *ppt.Slide, style layoutStyle, text string) {
	f := *style.layout.Title

	shape := target.CreateRichTextShape()
	shape.SetOffsetX(int64(f.X)).SetOffsetY(int64(f.Y))
	shape.SetWidth(int64(f.Width)).SetHeight(int64(f.Height))

	tr := shape.CreateTextRun(text)
	if style.centered {
		tr.GetFont().SetSize(40).SetBold(true).SetColor(ppt.NewColor(colorTitle))
		shape.GetActiveParagraph().SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
		return
	}
	tr.GetFont().SetSize(32).SetBold(true).SetColor(ppt.NewColor(colorTitle))
}

func drawBody(target *ppt.Slide, style layoutStyle, paragraphs []paragraph) {
	f := *style.layout.Body

	shape := target.CreateRichTextShape()
	shape.SetOffsetX(int64(f.X)).SetOffsetY(int64(f.Y))
	shape.SetWidth(int64(f.Width)).SetHeight(int64(f.Height))

	for i, p := range paragraphs {
		if i > 0 {
			shape.CreateParagraph()
		}

		text := p.text
		if style.bullets {
			text = bulletText(p.text, p.level)
		}
		tr := shape.CreateTextRun(text)

		font := tr.GetFont()
		switch {
		case !style.bullets:
			font.SetSize(20)
		case p.level == 0:
			font.SetSize(24)
		case p.level == 1:
			font.SetSize(20)
		case p.level == 2:
			font.SetSize(18)
		default:
			font.SetSize(16)
		}
		font.SetColor(ppt.NewColor(colorBody))

		if style.centered {
			shape.GetActiveParagraph().SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
		}
	}
}

// bulletText renders an outline paragraph as indented text with a level mark.
func bulletText(text string, level int) string {
	mark := bulletMarks[level%len(bulletMarks)]
	return strings.Repeat(bulletIndent, level) + mark + " " + text
}

func drawImage(target *ppt.Slide, data []byte, mime string, f domain.Frame) {
	shape := target.CreateDrawingShape()
	shape.SetImageData(data, mime)
	shape.SetOffsetX(int64(f.X)).SetOffsetY(int64(f.Y))
	shape.SetWidth(int64(f.Width)).SetHeight(int64(f.Height))
}

// drawChart places the chart image and, when present, a text legend to its
// right inside the chart frame.
func drawChart(target *ppt.Slide, c domain.RenderedChart, f domain.Frame) {
	legend := domain.LegendNone
	if len(c.Legend) > 0 {
		legend = domain.LegendRight
	}
	plot, key := domain.SplitChartFrame(f, legend)

	drawImage(target, c.Data, c.MIME, plot)
	if legend == domain.LegendNone {
		return
	}

	shape := target.CreateRichTextShape()
	shape.SetOffsetX(int64(key.X)).SetOffsetY(int64(key.Y))
	shape.SetWidth(int64(key.Width)).SetHeight(int64(key.Height))

	for i, entry := range c.Legend {
		if i > 0 {
			shape.CreateParagraph()
		}
		mark := shape.CreateTextRun("■ ")
		mark.GetFont().SetSize(12).SetColor(ppt.NewColor(entry.Color))
		label := shape.CreateTextRun(entry.Label)
		label.GetFont().SetSize(12).SetColor(ppt.NewColor(colorLegend))
	}
}
