package profiler

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/Carmen-Shannon/gates/engine/logger"
	"github.com/Carmen-Shannon/gates/engine/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFrameCounter(t *testing.T) {
	start := time.Unix(100, 0)
	fc := NewFrameCounter(start)

	now := start
	refreshed := 0
	for i := 0; i < 10; i++ {
		now = now.Add(time.Second / 4)
		dt, ok := fc.Tick(now)
		assert.InDelta(t, 0.25, dt, 1e-6)
		if ok {
			refreshed++
		}
	}
	assert.Equal(t, 2, refreshed)
	assert.Equal(t, 4, fc.FPS())
}

func TestFrameCounterStall(t *testing.T) {
	start := time.Unix(100, 0)
	fc := NewFrameCounter(start)

	_, ok := fc.Tick(start.Add(5 * time.Second))
	require.True(t, ok)
	assert.Equal(t, 1, fc.FPS())

	_, ok = fc.Tick(start.Add(5*time.Second + 10*time.Millisecond))
	assert.False(t, ok)
}

func TestFrameCounterClockSkew(t *testing.T) {
	start := time.Unix(100, 0)
	fc := NewFrameCounter(start)
	dt, ok := fc.Tick(start.Add(-time.Second))
	assert.Zero(t, dt)
	assert.False(t, ok)
}

func TestProfilerLogsAtInterval(t *testing.T) {
	var buf bytes.Buffer
	logger.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { logger.SetLogger(nil) })

	clock := &fakeClock{t: time.Unix(100, 0)}
	p := NewProfiler(WithClock(clock.now), WithInterval(500*time.Millisecond))
	stats := renderer.Stats{DrawCalls: 3, TriVertices: 40, TriIndices: 60, LineVertices: 4, LineIndices: 4, QuadsDrawn: 10, LinesDrawn: 2}

	clock.advance(100 * time.Millisecond)
	assert.False(t, p.Tick(stats))
	assert.Empty(t, buf.String())

	clock.advance(400 * time.Millisecond)
	assert.True(t, p.Tick(stats))
	out := buf.String()
	assert.Contains(t, out, "msg=profiler")
	assert.Contains(t, out, "fps=4")
	assert.Contains(t, out, "draw_calls=3")
	assert.Contains(t, out, "tri_vertices=40")
	assert.Contains(t, out, "tri_indices=60")
	assert.Contains(t, out, "line_vertices=4")
	assert.Contains(t, out, "line_indices=4")
	assert.Contains(t, out, "primitives=12")

	clock.advance(100 * time.Millisecond)
	assert.False(t, p.Tick(stats))
}

func TestProfilerIgnoresBadOptions(t *testing.T) {
	p := NewProfiler(WithInterval(0), WithClock(nil))
	assert.Equal(t, time.Second, p.updateInterval)
	assert.NotNil(t, p.now)
}
