package profiler

import (
	"fmt"
	"log"
	"sort"
	"time"
)

// SectionData accumulates timing for one named benchmark section.
type SectionData struct {
	TotalTimeUs uint32
	Count       uint32
	MinTimeUs   uint32
	MaxTimeUs   uint32
}

// Process-wide benchmark state. The engine is single-threaded; sections are
// started and ended from the render loop only.
var (
	benchmarks = make(map[string]*SectionData)

	currentSection string
	sectionStart   time.Time

	benchmarkEnabled bool
)

// EnableBenchmarks turns section timing on.
func EnableBenchmarks() { benchmarkEnabled = true }

// DisableBenchmarks turns section timing off; Start and End become no-ops.
func DisableBenchmarks() { benchmarkEnabled = false }

// Start begins timing a named section. Starting a new section while one is
// in progress silently discards the outer measurement; sections are
// expected to be paired, not nested.
//
// Parameters:
//   - name: the section name
func Start(name string) {
	if !benchmarkEnabled {
		return
	}
	currentSection = name
	sectionStart = time.Now()
}

// End finishes the active section and folds the elapsed microseconds into
// its accumulated data. A no-op without an active section.
func End() {
	if !benchmarkEnabled || currentSection == "" {
		return
	}
	elapsed := uint32(time.Since(sectionStart).Microseconds())

	data, ok := benchmarks[currentSection]
	if !ok {
		data = &SectionData{MinTimeUs: ^uint32(0)}
		benchmarks[currentSection] = data
	}
	data.TotalTimeUs += elapsed
	data.Count++
	if elapsed < data.MinTimeUs {
		data.MinTimeUs = elapsed
	}
	if elapsed > data.MaxTimeUs {
		data.MaxTimeUs = elapsed
	}

	currentSection = ""
}

// ResetBenchmarks clears all accumulated section data.
func ResetBenchmarks() {
	benchmarks = make(map[string]*SectionData)
	currentSection = ""
}

// Sections returns a copy of the accumulated section data.
func Sections() map[string]SectionData {
	out := make(map[string]SectionData, len(benchmarks))
	for name, data := range benchmarks {
		out[name] = *data
	}
	return out
}

// Report logs a formatted table of all sections: calls, average, min, max,
// and — when fps is non-zero — each section's share of one frame at that
// rate. Names over 20 characters are truncated.
//
// Parameters:
//   - fps: target frame rate used for the %-of-frame column, or 0
func Report(fps float32) {
	if len(benchmarks) == 0 {
		log.Printf("No benchmark data available")
		return
	}

	log.Printf("----- BENCHMARK REPORT -----")
	if fps > 0 {
		log.Printf("FPS: %.1f (%.2f ms/frame)", fps, 1000.0/fps)
	}
	log.Printf("Name                  | Calls |  Avg (us) |   Min   |   Max   | %% Frame")
	log.Printf("----------------------|-------|-----------|---------|---------|--------")

	names := make([]string, 0, len(benchmarks))
	for name := range benchmarks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		data := benchmarks[name]
		avg := float32(0)
		if data.Count > 0 {
			avg = float32(data.TotalTimeUs) / float32(data.Count)
		}
		percent := float32(0)
		if fps > 0 {
			frameTimeUs := 1000000.0 / fps
			percent = avg / frameTimeUs * 100.0
		}
		display := name
		if len(display) > 20 {
			display = display[:17] + "..."
		}
		log.Printf("%s", fmt.Sprintf("%-20s | %5d | %9.1f | %7d | %7d | %6.2f%%",
			display, data.Count, avg, data.MinTimeUs, data.MaxTimeUs, percent))
	}
	log.Printf("---------------------------")
}
