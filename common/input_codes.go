package common

// Pointer button bits used in the buttons bitmask delivered with pointer samples.
// Bit positions follow the DOM MouseEvent.buttons layout; GLFW button indices
// 0/1/2 (left/right/middle) map onto these via 1 << index.
const (
	MouseButtonPrimary   uint32 = 1 << 0 // left / primary button
	MouseButtonSecondary uint32 = 1 << 1 // right / secondary button
	MouseButtonMiddle    uint32 = 1 << 2 // middle / wheel button
)

// Virtual key codes the camera hosts react to.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeySpace = 32  // Spacebar (ASCII), toggles mouse input
	KeyR     = 82  // R key (ASCII), resets the camera
	KeyEsc   = 256 // Escape key (GLFW)
)
