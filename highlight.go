package tiledesigner

// HighlightDisplayState is what a renderer reads to draw the hover marker.
type HighlightDisplayState struct {
	Visible  bool
	Position CellCoord
}

// Highlight reacts to hover transitions by moving and toggling a single
// marker. Events are applied one at a time in emission order; callers read
// State once per tick, after the tick's events have been delivered, so a
// direct jump between two cells never exposes the intermediate hidden state.
type Highlight struct {
	state HighlightDisplayState
}

// NewHighlight returns a hidden highlight at cell (0,0).
func NewHighlight() *Highlight {
	return &Highlight{}
}

// Apply updates the highlight for a single event.
func (h *Highlight) Apply(e HoverEvent) {
	h.state = ReactHighlight(h.state, e)
}

// ApplyAll applies events in order.
func (h *Highlight) ApplyAll(events []HoverEvent) {
	for _, e := range events {
		h.Apply(e)
	}
}

// State returns the current display state.
func (h *Highlight) State() HighlightDisplayState {
	return h.state
}

// ReactHighlight returns the display state after e. Left hides the marker
// and keeps its last position; Entered moves it and shows it.
func ReactHighlight(s HighlightDisplayState, e HoverEvent) HighlightDisplayState {
	switch e.Type {
	case HoverLeft:
		s.Visible = false
	case HoverEntered:
		s.Position = e.Cell
		s.Visible = true
	}
	return s
}
