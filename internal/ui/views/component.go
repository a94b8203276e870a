// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

// Component maps props P to an element tree.
//
// S is the snapshot a component keeps between renders. Render returns the
// snapshot observed while rendering; ShouldUpdate compares the snapshot of the
// previous completed render against the next props. ShouldUpdate must not
// produce a snapshot of its own, and the zero S means "never rendered".
type Component[P any, S any] interface {
	ShouldUpdate(prev S, next P) bool
	Render(next P) (*Element, S)
}

// Memo holds one component together with its last snapshot and element, and
// re-renders only when the component asks for it.
//
// A Memo is not safe for concurrent use; it belongs to the Bubble Tea update
// goroutine like the rest of the view state.
type Memo[P any, S any] struct {
	component Component[P, S]
	state     S
	element   *Element
	renders   int
}

// NewMemo wraps component.
func NewMemo[P any, S any](component Component[P, S]) *Memo[P, S] {
	return &Memo[P, S]{component: component}
}

// View returns the element for props and whether a render happened.
func (m *Memo[P, S]) View(props P) (*Element, bool) {
	if m.element != nil && !m.component.ShouldUpdate(m.state, props) {
		return m.element, false
	}

	m.element, m.state = m.component.Render(props)
	m.renders++
	return m.element, true
}

// Component returns the wrapped component.
func (m *Memo[P, S]) Component() Component[P, S] { return m.component }

// State returns the snapshot of the last render.
func (m *Memo[P, S]) State() S { return m.state }

// Renders returns how many times the component has rendered.
func (m *Memo[P, S]) Renders() int { return m.renders }

// Reset forgets the last render so the next View renders unconditionally.
func (m *Memo[P, S]) Reset() {
	var zero S
	m.state = zero
	m.element = nil
}
