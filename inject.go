package tiledesigner

// InjectPointer queues a pointer sample at the given viewport coordinates.
// Each queued sample replaces the real pointer for exactly one tick.
func (e *Editor) InjectPointer(x, y float64) {
	e.injectQueue = append(e.injectQueue, PointerAt(x, y))
}

// InjectAbsent queues a tick with no pointer, as if the cursor left the
// window.
func (e *Editor) InjectAbsent() {
	e.injectQueue = append(e.injectQueue, NoPointer)
}

// InjectHold queues the same pointer sample for the given number of ticks.
func (e *Editor) InjectHold(x, y float64, frames int) {
	for i := 0; i < frames; i++ {
		e.InjectPointer(x, y)
	}
}

// InjectPath queues a straight pointer path from (fromX, fromY) to
// (toX, toY), including both endpoints, over frames ticks. Minimum frames
// is 2.
func (e *Editor) InjectPath(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		e.InjectPointer(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// Pending returns how many injected samples are still queued.
func (e *Editor) Pending() int {
	return len(e.injectQueue)
}

// nextInjected pops one sample from the inject queue. ok is false when the
// queue is empty and the real source should be read instead.
func (e *Editor) nextInjected() (p Pointer, ok bool) {
	if len(e.injectQueue) == 0 {
		return Pointer{}, false
	}
	p = e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]
	return p, true
}
