package renderer

import "testing"

func TestParseMSAA(t *testing.T) {
	tests := []struct {
		in      int
		want    MSAASampleCount
		wantErr bool
	}{
		{0, MSAAOff, false},
		{1, MSAAOff, false},
		{4, MSAA4x, false},
		{8, MSAA8x, false},
		{16, MSAA16x, false},
		{2, MSAAOff, true},
		{-4, MSAAOff, true},
	}
	for _, tt := range tests {
		got, err := ParseMSAA(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseMSAA(%d) = %v, %v", tt.in, got, err)
		}
	}
}

func TestPresentModeString(t *testing.T) {
	if PresentModeVSync.String() != "vsync" || PresentModeUncapped.String() != "uncapped" {
		t.Errorf("got %q and %q", PresentModeVSync, PresentModeUncapped)
	}
}
