package render

// Scroll timing. The offset advances one unit per tick and is divided by
// ScrollDivisor when applied, so text moves one pixel every three ticks.
const (
	ScrollDivisor = 3
	ScrollPause   = 30
	ScrollMargin  = 5
)

// ScrollEntry is the scroll progress of one string.
type ScrollEntry struct {
	Offset    int
	PauseTime int
}

// Paused reports whether the entry is parked.
func (e ScrollEntry) Paused() bool { return e.PauseTime != 0 }

// Pixels is the horizontal shift applied to the text.
func (e ScrollEntry) Pixels() int { return e.Offset / ScrollDivisor }

// Advance moves the entry one tick for a window of width pixels over text
// whose longest line is maxLineWidth pixels.
func (e *ScrollEntry) Advance(width, maxLineWidth int) {
	if e.PauseTime != 0 {
		if e.PauseTime > ScrollPause {
			if e.Offset == 0 {
				e.PauseTime = 0
			} else {
				e.PauseTime = 1
			}
			e.Offset = 0
		} else {
			e.PauseTime++
		}
		return
	}
	e.Offset++
	if e.Offset/ScrollDivisor+width > maxLineWidth+ScrollMargin {
		e.PauseTime++
	}
}

// ScrollRegistry maps string content to scroll progress. Entries are
// never evicted; two fields showing identical text share one entry.
type ScrollRegistry struct {
	entries map[string]*ScrollEntry
}

func NewScrollRegistry() *ScrollRegistry {
	return &ScrollRegistry{entries: make(map[string]*ScrollEntry)}
}

// Entry returns the entry for key, creating a paused one at offset 0.
func (r *ScrollRegistry) Entry(key string) *ScrollEntry {
	e, ok := r.entries[key]
	if !ok {
		e = &ScrollEntry{PauseTime: 1}
		r.entries[key] = e
	}
	return e
}

// Lookup returns a copy of the entry for key.
func (r *ScrollRegistry) Lookup(key string) (ScrollEntry, bool) {
	e, ok := r.entries[key]
	if !ok {
		return ScrollEntry{}, false
	}
	return *e, true
}

// Rewind parks key at offset 0.
func (r *ScrollRegistry) Rewind(key string) {
	*r.Entry(key) = ScrollEntry{PauseTime: 1}
}

func (r *ScrollRegistry) Len() int { return len(r.entries) }
