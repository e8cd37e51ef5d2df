// Package ui holds the contract shared by every terminal component.
package ui

// Renderable is anything that can draw itself as a terminal string.
type Renderable interface {
	View() string
}
