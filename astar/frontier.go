package astar

import (
	"cmp"
	"slices"
)

// Frontier is the ordered working set of candidate UIDs.
// A UID appears at most once. Frontier is not safe for concurrent use;
// publish copies (Snapshot) to other goroutines.
type Frontier struct {
	uids  []int64
	index map[int64]struct{}
}

// NewFrontier returns an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{index: make(map[int64]struct{})}
}

// Len returns the number of queued UIDs.
func (f *Frontier) Len() int { return len(f.uids) }

// Contains reports whether uid is queued.
func (f *Frontier) Contains(uid int64) bool {
	_, ok := f.index[uid]

	return ok
}

// PushFront inserts uid at the front unless it is already queued.
func (f *Frontier) PushFront(uid int64) bool {
	if f.Contains(uid) {
		return false
	}
	f.uids = slices.Insert(f.uids, 0, uid)
	f.index[uid] = struct{}{}

	return true
}

// PushBack appends uid unless it is already queued.
func (f *Frontier) PushBack(uid int64) bool {
	if f.Contains(uid) {
		return false
	}
	f.uids = append(f.uids, uid)
	f.index[uid] = struct{}{}

	return true
}

// Front returns the first UID without removing it.
func (f *Frontier) Front() (int64, bool) {
	if len(f.uids) == 0 {
		return 0, false
	}

	return f.uids[0], true
}

// PopFront removes and returns the first UID.
func (f *Frontier) PopFront() (int64, bool) {
	uid, ok := f.Front()
	if !ok {
		return 0, false
	}
	f.uids = slices.Delete(f.uids, 0, 1)
	delete(f.index, uid)

	return uid, true
}

// SortStable orders the frontier ascending by key; equal keys keep their
// current relative order. key is evaluated once per UID.
// Complexity: O(n log n).
func (f *Frontier) SortStable(key func(uid int64) float64) {
	type entry struct {
		uid int64
		key float64
	}
	entries := make([]entry, len(f.uids))
	for i, uid := range f.uids {
		entries[i] = entry{uid: uid, key: key(uid)}
	}
	slices.SortStableFunc(entries, func(a, b entry) int { return cmp.Compare(a.key, b.key) })
	for i, e := range entries {
		f.uids[i] = e.uid
	}
}

// Snapshot returns a copy of the queued UIDs in order.
func (f *Frontier) Snapshot() []int64 {
	return slices.Clone(f.uids)
}

// Clear empties the frontier.
func (f *Frontier) Clear() {
	f.uids = f.uids[:0]
	clear(f.index)
}
