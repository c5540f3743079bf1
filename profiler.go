package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"
	"sync"
	"time"

	"mechtide/game"
)

var errCaptureBusy = errors.New("capture already running")

// sceneLoad is what the game looked like when the frame rate dropped
type sceneLoad struct {
	fps        float64
	gameTime   float64
	enemies    int
	particles  int
	explosions int
	stats      game.Stats
}

func loadOf(g *game.Game, fps float64) sceneLoad {
	world := g.World()
	return sceneLoad{
		fps:        fps,
		gameTime:   g.Scoreboard().GameTime,
		enemies:    len(world.Enemies),
		particles:  len(world.Particles),
		explosions: len(world.Explosions),
		stats:      g.Stats(),
	}
}

// name is the file stem of a capture, e.g. t042.5s-fps38-e12-p140
func (l sceneLoad) name() string {
	return fmt.Sprintf("t%05.1fs-fps%.0f-e%d-p%d", l.gameTime/1000, l.fps, l.enemies, l.particles)
}

// report lists the scene and the game counters next to the memory stats
func (l sceneLoad) report(m *runtime.MemStats) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "fps %.1f at game time %.1fs\n", l.fps, l.gameTime/1000)
	fmt.Fprintf(&sb, "live: enemies=%d particles=%d explosions=%d\n", l.enemies, l.particles, l.explosions)
	fmt.Fprintf(&sb, "ticks=%d shots=%d powerups=%d\n", l.stats.Ticks, l.stats.ShotsFired, l.stats.PowerUps)
	for k := game.EnemyKind(0); k < game.EnemyKindCount; k++ {
		fmt.Fprintf(&sb, "%-10s spawned=%d destroyed=%d\n", k, l.stats.Spawned[k], l.stats.Destroyed[k])
	}
	fmt.Fprintf(&sb, "heap=%dKB sys=%dKB objects=%d gc=%d\n", m.HeapAlloc/1024, m.Sys/1024, m.HeapObjects, m.NumGC)
	return sb.String()
}

// Profiler records a CPU profile and an execution trace of a slow stretch of play
type Profiler struct {
	dir      string
	window   time.Duration
	cooldown time.Duration

	mu      sync.Mutex
	running bool
	last    time.Time
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profiles dir: %w", err)
	}
	return &Profiler{
		dir:      dir,
		window:   5 * time.Second,
		cooldown: 10 * time.Second,
	}, nil
}

// Capture starts recording in the background. It refuses while a capture runs
// or during the cooldown after the previous one.
func (p *Profiler) Capture(load sceneLoad) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return errCaptureBusy
	}
	if since := time.Since(p.last); since < p.cooldown {
		return fmt.Errorf("capture on cooldown, last one %v ago", since.Round(time.Second))
	}
	p.running = true
	p.last = time.Now()

	go func() {
		if err := p.record(load); err != nil {
			log.Printf("Profile capture failed: %v", err)
		}
		p.mu.Lock()
		p.running = false
		p.mu.Unlock()
	}()
	return nil
}

// record runs the CPU profile and the trace over the same window, then writes the report
func (p *Profiler) record(load sceneLoad) error {
	stem := filepath.Join(p.dir, load.name())

	cpu, err := os.Create(stem + ".cpu.prof")
	if err != nil {
		return err
	}
	defer cpu.Close()
	tr, err := os.Create(stem + ".trace")
	if err != nil {
		return err
	}
	defer tr.Close()

	if err := pprof.StartCPUProfile(cpu); err != nil {
		return fmt.Errorf("start cpu profile: %w", err)
	}
	if err := trace.Start(tr); err != nil {
		pprof.StopCPUProfile()
		return fmt.Errorf("start trace: %w", err)
	}
	time.Sleep(p.window)
	trace.Stop()
	pprof.StopCPUProfile()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	if err := os.WriteFile(stem+".txt", []byte(load.report(&m)), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	log.Printf("Profile saved, view with: go tool pprof -http=:8080 %s.cpu.prof", stem)
	return nil
}

// fpsMonitor measures the update rate over fixed samples
type fpsMonitor struct {
	elapsed   float64 // Seconds since start
	sampleDur float64
	frames    int
	fps       float64
}

// observe records one update of deltaMs milliseconds and reports whether a
// completed sample fell below the drop threshold after the warm-up
func (m *fpsMonitor) observe(deltaMs float64) bool {
	seconds := deltaMs / 1000
	m.elapsed += seconds
	m.sampleDur += seconds
	m.frames++
	if m.sampleDur < fpsSampleSeconds {
		return false
	}

	m.fps = float64(m.frames) / m.sampleDur
	m.frames = 0
	m.sampleDur = 0
	return m.fps < fpsDropThreshold && m.elapsed >= fpsWarmupSeconds
}
