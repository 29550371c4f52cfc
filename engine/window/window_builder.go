package window

// WindowBuilderOption is a functional option for configuring an engineWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithSize sets the initial client area size. Non-positive values keep the default.
//
// Parameters:
//   - width: initial width in pixels
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		if width > 0 {
			w.width = width
		}
		if height > 0 {
			w.height = height
		}
	}
}

// WithWidth sets the initial window width.
func WithWidth(width int) WindowBuilderOption {
	return WithSize(width, 0)
}

// WithHeight sets the initial window height.
func WithHeight(height int) WindowBuilderOption {
	return WithSize(0, height)
}

// WithSizeLimits bounds how far the user can resize the window. A zero on either side
// of a pair leaves that bound at its default. The initial size is pulled inside the
// limits when the window is created.
//
// Parameters:
//   - minWidth, minHeight: smallest client area in pixels
//   - maxWidth, maxHeight: largest client area in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSizeLimits(minWidth, minHeight, maxWidth, maxHeight int) WindowBuilderOption {
	return func(w *engineWindow) {
		if minWidth > 0 {
			w.minWidth = minWidth
		}
		if minHeight > 0 {
			w.minHeight = minHeight
		}
		if maxWidth > 0 {
			w.maxWidth = maxWidth
		}
		if maxHeight > 0 {
			w.maxHeight = maxHeight
		}
	}
}

// WithScrollStep sets the pixel distance reported per scroll wheel notch.
//
// Parameters:
//   - step: pixels per notch
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithScrollStep(step float32) WindowBuilderOption {
	return func(w *engineWindow) {
		if step > 0 {
			w.scrollStep = step
		}
	}
}

// clampSize keeps the initial size within the configured limits.
func (w *engineWindow) clampSize() {
	w.width = max(w.minWidth, min(w.width, w.maxWidth))
	w.height = max(w.minHeight, min(w.height, w.maxHeight))
}
