package editor

import "time"

// debouncer holds at most one pending deadline. Scheduling again replaces
// the previous deadline instead of adding a second one.
type debouncer struct {
	delay   time.Duration
	due     time.Time
	pending bool
}

func (d *debouncer) schedule(now time.Time) {
	d.due = now.Add(d.delay)
	d.pending = true
}

func (d *debouncer) cancel() {
	d.pending = false
}

// fire reports whether the pending deadline has passed and clears it if so.
func (d *debouncer) fire(now time.Time) bool {
	if !d.pending || now.Before(d.due) {
		return false
	}
	d.pending = false
	return true
}
