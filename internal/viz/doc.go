// Package viz is the terminal host for the demos.
//
// Scenes are flattened into a [Wireframe], projected through a [Camera] and
// drawn onto a Braille [Canvas]. [Model] wraps one demo controller in a
// Bubble Tea program; [NewMenu] is a launcher in front of it.
//
// # Key Bindings
//
//	x/X y/Y z/Z - Orbit the camera
//	+/-         - Zoom
//	R           - Recenter
//	Space       - Pause/Resume the animation
//	T           - Cycle color themes
//	?           - Show help overlay
//
// Each demo adds its settings keys; see the help overlay.
//
// # Hot Reload
//
// With Options.Watch set, the config file is re-applied when it changes.
// The fsnotify goroutine only loads and validates the file; the result is
// applied inside Update like any other message.
package viz
