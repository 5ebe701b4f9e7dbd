package domain

// Properties are the document-level metadata written into the presentation.
type Properties struct {
	Title  string
	Author string
}

// SlideSpec is a single slide of a deck: the layout to use and the ordered
// command keys that fill it.
type SlideSpec struct {
	// Index is the zero-based position of the slide in the deck.
	Index int

	// Layout is nil when the slide did not name one.
	Layout *LayoutRef

	Commands []Entry
	Line     int
}

// Deck is a parsed slide document.
type Deck struct {
	Path       string
	Units      Units
	Vars       Vars
	Properties Properties
	Slides     []SlideSpec
}
