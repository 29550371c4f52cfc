package input

// Sink receives normalized pointer, wheel and viewport events from a host.
// camera.Camera satisfies Sink, as does trace.Recorder.
type Sink interface {
	// PointerMove reports a pointer position and the buttons held at that moment.
	//
	// Parameters:
	//   - buttons: bitmask of common.MouseButton* flags
	//   - x, y: pointer position in viewport pixels, origin top-left
	PointerMove(buttons uint32, x, y float32)

	// Wheel reports a scroll delta in pixels. Positive dy scrolls toward the user.
	//
	// Parameters:
	//   - dx, dy: scroll deltas
	Wheel(dx, dy float32)

	// Resize reports the viewport size in pixels. Hosts never report a zero extent.
	//
	// Parameters:
	//   - width, height: viewport size
	Resize(width, height int)
}
