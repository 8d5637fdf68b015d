package tiledesigner

// EventStore is the interface for optional ECS integration.
// When set on an Editor, hover events are forwarded to the ECS after the
// registered callbacks have run.
type EventStore interface {
	EmitEvent(event HoverEvent)
}

type cellHandler struct {
	id uint32
	fn func(CellCoord)
}

type hoverHandler struct {
	id uint32
	fn func(HoverEvent)
}

type handlerRegistry struct {
	hover   []hoverHandler
	entered []cellHandler
	left    []cellHandler
	nextID  uint32

	// dispatching counts nested dispatch calls. While non-zero, Remove only
	// clears fn and sets stale; the slices are compacted afterwards.
	dispatching int
	stale       bool
}

// handleKind selects the registry slice a CallbackHandle points into.
type handleKind uint8

const (
	handleHover handleKind = iota
	handleEntered
	handleLeft
)

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind handleKind
}

// Remove unregisters this callback so it no longer fires. Removing twice,
// or removing the zero handle, is a no-op. It is safe to call from inside a
// callback; a handler removed mid-dispatch is not called again.
func (h CallbackHandle) Remove() {
	r := h.reg
	if r == nil {
		return
	}
	if r.dispatching > 0 {
		r.disable(h)
		return
	}
	switch h.kind {
	case handleHover:
		r.hover = removeHoverHandler(r.hover, h.id)
	case handleEntered:
		r.entered = removeCellHandler(r.entered, h.id)
	case handleLeft:
		r.left = removeCellHandler(r.left, h.id)
	}
}

// disable clears the handler's fn in place without moving any entries.
func (r *handlerRegistry) disable(h CallbackHandle) {
	switch h.kind {
	case handleHover:
		for i := range r.hover {
			if r.hover[i].id == h.id {
				r.hover[i].fn = nil
				r.stale = true
			}
		}
	case handleEntered, handleLeft:
		s := r.entered
		if h.kind == handleLeft {
			s = r.left
		}
		for i := range s {
			if s[i].id == h.id {
				s[i].fn = nil
				r.stale = true
			}
		}
	}
}

// compact drops handlers disabled during dispatch.
func (r *handlerRegistry) compact() {
	hover := r.hover[:0]
	for _, h := range r.hover {
		if h.fn != nil {
			hover = append(hover, h)
		}
	}
	clear(r.hover[len(hover):])
	r.hover = hover
	r.entered = compactCellHandlers(r.entered)
	r.left = compactCellHandlers(r.left)
	r.stale = false
}

func compactCellHandlers(s []cellHandler) []cellHandler {
	out := s[:0]
	for _, h := range s {
		if h.fn != nil {
			out = append(out, h)
		}
	}
	clear(s[len(out):])
	return out
}

func removeHoverHandler(s []hoverHandler, id uint32) []hoverHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = hoverHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeCellHandler(s []cellHandler, id uint32) []cellHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = cellHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) addHover(fn func(HoverEvent)) CallbackHandle {
	r.nextID++
	r.hover = append(r.hover, hoverHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, kind: handleHover}
}

func (r *handlerRegistry) addEntered(fn func(CellCoord)) CallbackHandle {
	r.nextID++
	r.entered = append(r.entered, cellHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, kind: handleEntered}
}

func (r *handlerRegistry) addLeft(fn func(CellCoord)) CallbackHandle {
	r.nextID++
	r.left = append(r.left, cellHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, kind: handleLeft}
}

// dispatch delivers one event: generic hover handlers first, then the
// typed handlers, each in registration order. Handlers added during
// dispatch first fire on the next event.
func (r *handlerRegistry) dispatch(e HoverEvent) {
	r.dispatching++
	defer r.endDispatch()

	for i, n := 0, len(r.hover); i < n; i++ {
		if fn := r.hover[i].fn; fn != nil {
			fn(e)
		}
	}
	switch e.Type {
	case HoverEntered:
		for i, n := 0, len(r.entered); i < n; i++ {
			if fn := r.entered[i].fn; fn != nil {
				fn(e.Cell)
			}
		}
	case HoverLeft:
		for i, n := 0, len(r.left); i < n; i++ {
			if fn := r.left[i].fn; fn != nil {
				fn(e.Cell)
			}
		}
	}
}

func (r *handlerRegistry) endDispatch() {
	r.dispatching--
	if r.dispatching == 0 && r.stale {
		r.compact()
	}
}
