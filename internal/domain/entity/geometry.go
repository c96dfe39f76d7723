package entity

// WindowRect is a window's position and size in cells.
// Used for geometric navigation to find adjacent windows by position.
type WindowRect struct {
	WindowID WindowID
	X, Y     int // Top-left position relative to the dashboard area
	W, H     int
}

// Center returns the center point of the rectangle.
func (r WindowRect) Center() (cx, cy int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Empty reports whether the rectangle has no area.
func (r WindowRect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// OverlapsVertically reports whether the two rectangles share any rows.
func (r WindowRect) OverlapsVertically(other WindowRect) bool {
	return r.Y < other.Y+other.H && other.Y < r.Y+r.H
}

// OverlapsHorizontally reports whether the two rectangles share any columns.
func (r WindowRect) OverlapsHorizontally(other WindowRect) bool {
	return r.X < other.X+other.W && other.X < r.X+r.W
}
