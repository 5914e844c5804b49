package hub

// table maps a channel name to its callbacks in registration order.
type table map[string][]*Callback

// add appends cbs to every channel in names. t must not be nil.
func (t table) add(names []string, cbs []*Callback) {
	for _, name := range names {
		t[name] = append(t[name], cbs...)
	}
}

// remove drops the channels in names, or only the entries identical to one of
// cbs when cbs is not empty. Channels left without callbacks are deleted.
// Returns the number of callbacks removed.
func (t table) remove(names []string, cbs []*Callback) int {
	removed := 0
	for _, name := range names {
		list, ok := t[name]
		if !ok {
			continue
		}
		if len(cbs) == 0 {
			removed += len(list)
			delete(t, name)
			continue
		}
		kept := make([]*Callback, 0, len(list))
		for _, cb := range list {
			if contains(cbs, cb) {
				removed++
				continue
			}
			kept = append(kept, cb)
		}
		if len(kept) == 0 {
			delete(t, name)
		} else {
			t[name] = kept
		}
	}
	return removed
}

// snapshot copies the callbacks of a channel so dispatch is not affected by
// binds and unbinds made while it runs.
func (t table) snapshot(name string) []*Callback {
	list := t[name]
	if len(list) == 0 {
		return nil
	}
	out := make([]*Callback, len(list))
	copy(out, list)
	return out
}

func contains(cbs []*Callback, cb *Callback) bool {
	for _, c := range cbs {
		if c == cb {
			return true
		}
	}
	return false
}

// compact drops nil callbacks
func compact(cbs []*Callback) []*Callback {
	out := cbs[:0:0]
	for _, cb := range cbs {
		if cb != nil {
			out = append(out, cb)
		}
	}
	return out
}
