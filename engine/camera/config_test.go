package camera

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

func TestDefaultConfig_Validates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfig_ValidateReportsEveryField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Damping = 1.5
	cfg.Near = -1
	cfg.MaxDistance = 0.01
	cfg.Up = mgl32.Vec3{}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, field := range []string{"damping", "near", "max_distance", "up"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}
}

func TestConfigOptions(t *testing.T) {
	cam := NewCamera(
		WithCenter(1, 2, 3),
		WithUp(0, 0, 1),
		WithFovy(1),
		WithNear(0.5),
		WithFar(20),
		WithDamping(0.8),
		WithDistanceBounds(1, 50),
		WithDistance(100),
	)
	cfg := cam.Config()
	if cfg.Center != (mgl32.Vec3{1, 2, 3}) || cfg.Up != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("vectors not applied: %+v", cfg)
	}
	if cfg.Fovy != 1 || cfg.Near != 0.5 || cfg.Far != 20 || cfg.Damping != 0.8 {
		t.Errorf("scalars not applied: %+v", cfg)
	}
	if got := cam.State().Distance(); !mgl32.FloatEqualThreshold(got, 50, 1e-3) {
		t.Errorf("distance = %v, want clamp to 50", got)
	}
}

func TestWithConfig_LaterOptionsWin(t *testing.T) {
	base := DefaultConfig()
	base.Theta = 1
	cam := NewCamera(WithTheta(5), WithConfig(base), WithPhi(0.25))
	cfg := cam.Config()
	if cfg.Theta != 1 || cfg.Phi != 0.25 {
		t.Errorf("theta=%v phi=%v", cfg.Theta, cfg.Phi)
	}
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
		check   func(t *testing.T, cfg Config)
	}{
		{
			name: "empty keeps defaults",
			yaml: "",
			check: func(t *testing.T, cfg Config) {
				def := DefaultConfig()
				if !mgl32.FloatEqualThreshold(cfg.Fovy, def.Fovy, 1e-6) || cfg.Distance != def.Distance || !cfg.MouseEnabled {
					t.Errorf("cfg = %+v", cfg)
				}
			},
		},
		{
			name: "degrees and depth range",
			yaml: "fovy_degrees: 60\ntheta_degrees: 90\ndepth_range: webgpu\nflip_y: true\n",
			check: func(t *testing.T, cfg Config) {
				if !mgl32.FloatEqualThreshold(cfg.Fovy, mgl32.DegToRad(60), 1e-6) {
					t.Errorf("fovy = %v", cfg.Fovy)
				}
				if !mgl32.FloatEqualThreshold(cfg.Theta, mgl32.DegToRad(90), 1e-6) {
					t.Errorf("theta = %v", cfg.Theta)
				}
				if cfg.DepthRange != common.DepthRangeZeroToOne || !cfg.FlipY {
					t.Errorf("depth=%v flip=%v", cfg.DepthRange, cfg.FlipY)
				}
			},
		},
		{
			name: "vectors and viewport",
			yaml: "center: [1, 2, 3]\nup: [0, 0, 1]\nviewport:\n  width: 640\n  height: 480\nmouse_enabled: false\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.Center != (mgl32.Vec3{1, 2, 3}) || cfg.Up != (mgl32.Vec3{0, 0, 1}) {
					t.Errorf("center=%v up=%v", cfg.Center, cfg.Up)
				}
				if cfg.ViewportWidth != 640 || cfg.ViewportHeight != 480 || cfg.MouseEnabled {
					t.Errorf("cfg = %+v", cfg)
				}
			},
		},
		{name: "unknown depth range", yaml: "depth_range: sideways\n", wantErr: "depth_range"},
		{name: "invalid values", yaml: "damping: 2\n", wantErr: "invalid camera config"},
		{name: "malformed", yaml: "center: [1, 2\n", wantErr: "failed to decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tt.yaml))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("err = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfig_RoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Center = mgl32.Vec3{0, 1, 0}
	cfg.Damping = 0.75
	cfg.DepthRange = common.DepthRangeZeroToOne

	data, err := MarshalConfig(cfg)
	if err != nil {
		t.Fatalf("MarshalConfig: %v", err)
	}
	path := filepath.Join(t.TempDir(), "camera.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Center != cfg.Center || got.Damping != cfg.Damping || got.DepthRange != cfg.DepthRange {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
	if !mgl32.FloatEqualThreshold(got.Fovy, cfg.Fovy, 1e-6) {
		t.Errorf("fovy = %v, want %v", got.Fovy, cfg.Fovy)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestMustLoadConfig_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustLoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
}
