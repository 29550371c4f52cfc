package profiler

import (
	"log"
	"math"
	"runtime"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
)

// CameraStats summarizes camera motion over one profiling interval.
type CameraStats struct {
	Frames       int
	MovingFrames int
	// PeakAngularSpeed is the largest combined theta/phi velocity seen, in radians per frame.
	PeakAngularSpeed float32
	// PeakZoomSpeed is the largest absolute log-distance velocity seen.
	PeakZoomSpeed float32
}

// Profiler tracks frame rate and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	camera CameraStats
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithUpdateInterval sets how often statistics are logged.
//
// Parameters:
//   - interval: time between log lines
//
// Returns:
//   - ProfilerOption: functional option to set the interval
func WithUpdateInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		p.updateInterval = interval
	}
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		frameCount:     0,
		lastTime:       time.Now(),
		updateInterval: time.Second,
		memStats:       runtime.MemStats{},
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// ObserveCamera records one frame of camera motion for the current interval.
//
// Parameters:
//   - b: the frame's camera snapshot
func (p *Profiler) ObserveCamera(b camera.FrameBinding) {
	p.camera.Frames++
	if b.DTheta != 0 || b.DPhi != 0 || b.DDistance != 0 {
		p.camera.MovingFrames++
	}
	angular := float32(math.Hypot(float64(b.DTheta), float64(b.DPhi)))
	p.camera.PeakAngularSpeed = max(p.camera.PeakAngularSpeed, angular)
	p.camera.PeakZoomSpeed = max(p.camera.PeakZoomSpeed, float32(math.Abs(float64(b.DDistance))))
}

// CameraStats returns the camera motion observed so far in the current interval.
//
// Returns:
//   - CameraStats: the interval's motion summary
func (p *Profiler) CameraStats() CameraStats {
	return p.camera
}

// Tick should be called once per frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, heap usage, allocation rate, GC count/pause times, total memory.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed >= p.updateInterval {
		fps := float64(p.frameCount) / elapsed.Seconds()

		runtime.ReadMemStats(&p.memStats)
		// Alloc: Bytes of allocated heap objects (live memory)
		// TotalAlloc: Cumulative bytes allocated for heap objects (increases forever, tracks churn)
		// Sys: Total bytes of memory obtained from the OS (actual process footprint)
		allocMB := float64(p.memStats.Alloc) / 1024 / 1024
		sysMB := float64(p.memStats.Sys) / 1024 / 1024

		// Calculate allocation rate (MB/sec)
		allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
		allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

		// Calculate GC pause stats (last pause and max recent pause)
		gcCount := p.memStats.NumGC
		var lastPauseUs, maxPauseUs uint64
		if gcCount > 0 {
			// PauseNs is a circular buffer of last 256 GC pauses
			lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

			// Find max pause since last tick
			startIdx := p.lastGCCount
			if gcCount-startIdx > 256 {
				startIdx = gcCount - 256
			}
			for i := startIdx; i < gcCount; i++ {
				pause := p.memStats.PauseNs[i%256] / 1000
				if pause > maxPauseUs {
					maxPauseUs = pause
				}
			}
		}

		log.Printf("[Profiler] FPS: %.2f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
			fps, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)
		if p.camera.Frames > 0 {
			log.Printf("[Profiler] Camera: moving %d/%d frames | peak angular: %.4f rad/frame | peak zoom: %.4f",
				p.camera.MovingFrames, p.camera.Frames, p.camera.PeakAngularSpeed, p.camera.PeakZoomSpeed)
		}

		p.frameCount = 0
		p.lastTime = currentTime
		p.lastGCCount = gcCount
		p.lastTotalAlloc = p.memStats.TotalAlloc
		p.camera = CameraStats{}
		return true
	}

	return false
}
