package state

// Entry is a snapshot of a node taken at the moment it was descended into.
// ParentID is empty for first-level entries. LastCursor remembers the cursor
// position in the level the user left so Back can restore it.
type Entry struct {
	ID         string
	Label      string
	ParentID   string
	LastCursor int
}

// Path is the ordered drill-down trail. Depth zero means the picker is at the
// top level of the tree.
type Path struct {
	entries []Entry
}

// Depth returns the current nesting depth.
func (p *Path) Depth() int {
	return len(p.entries)
}

// Push appends an entry for a node that was just descended into.
func (p *Path) Push(entry Entry) {
	p.entries = append(p.entries, entry)
}

// Pop removes and returns the deepest entry. The boolean is false at root.
func (p *Path) Pop() (Entry, bool) {
	if len(p.entries) == 0 {
		return Entry{}, false
	}
	last := p.entries[len(p.entries)-1]
	p.entries = p.entries[:len(p.entries)-1]
	return last, true
}

// Current returns the deepest entry without removing it.
func (p *Path) Current() (Entry, bool) {
	if len(p.entries) == 0 {
		return Entry{}, false
	}
	return p.entries[len(p.entries)-1], true
}

// Reset clears the trail back to the root.
func (p *Path) Reset() {
	p.entries = p.entries[:0]
}

// Snapshot returns a copy of the trail, safe to hand to callbacks.
func (p *Path) Snapshot() []Entry {
	if len(p.entries) == 0 {
		return nil
	}
	dup := make([]Entry, len(p.entries))
	copy(dup, p.entries)
	return dup
}

// Labels returns the entry labels in order, for breadcrumb rendering.
func (p *Path) Labels() []string {
	if len(p.entries) == 0 {
		return nil
	}
	labels := make([]string, len(p.entries))
	for i, entry := range p.entries {
		labels[i] = entry.Label
	}
	return labels
}
