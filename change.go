// seehuhn.de/go/vectors - vector field layers for image viewers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package vectors

import "strings"

// Change is a set of flags describing which parts of a layer have been
// modified.  Renderers use the flags to decide what needs to be redrawn.
type Change uint

// These are the change flags.
const (
	ChangeData Change = 1 << iota
	ChangeName
	ChangeStyle
	ChangeThumbnail
	ChangeView
)

// implied adds the derived flags which follow from the flags in c.
func (c Change) implied() Change {
	if c&ChangeData != 0 {
		c |= ChangeThumbnail | ChangeView
	}
	if c&ChangeStyle != 0 {
		c |= ChangeThumbnail
	}
	return c
}

func (c Change) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	for _, f := range []struct {
		flag Change
		name string
	}{
		{ChangeData, "data"},
		{ChangeName, "name"},
		{ChangeStyle, "style"},
		{ChangeThumbnail, "thumbnail"},
		{ChangeView, "view"},
	} {
		if c&f.flag != 0 {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}

type listener struct {
	id int
	fn func(*Layer, Change)
}

// Subscribe registers a function which is called after every modification
// of the layer.  The returned function removes the subscription again.
func (l *Layer) Subscribe(fn func(*Layer, Change)) (unsubscribe func()) {
	l.nextID++
	id := l.nextID
	l.listeners = append(l.listeners, listener{id: id, fn: fn})
	return func() {
		for i, s := range l.listeners {
			if s.id == id {
				l.listeners = append(l.listeners[:i:i], l.listeners[i+1:]...)
				return
			}
		}
	}
}

// Dirty returns the changes which have not been consumed yet.
func (l *Layer) Dirty() Change {
	return l.dirty
}

// Consume returns the pending changes and clears them.
func (l *Layer) Consume() Change {
	c := l.dirty
	l.dirty = 0
	return c
}

func (l *Layer) invalidate(c Change) {
	c = c.implied()
	l.dirty |= c
	if c&ChangeThumbnail != 0 {
		l.thumb = nil
	}
	for _, s := range l.listeners {
		s.fn(l, c)
	}
}
