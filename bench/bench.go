// Package bench measures the move chooser off the engine clock: how fast
// candidate generation and scoring run, and how the scoring profiles
// compare on randomized boards. Nothing here runs during a real game.
package bench

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// Timer measures one operation.
type Timer struct {
	start time.Time
}

func StartTimer() Timer {
	return Timer{start: time.Now()}
}

func (t Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Metrics accumulates per-operation timings.
type Metrics struct {
	samples []float64 // seconds
	total   time.Duration
	min     time.Duration
	max     time.Duration
}

func NewMetrics() *Metrics {
	return &Metrics{min: time.Duration(1<<63 - 1)}
}

// Record adds one operation's duration.
func (m *Metrics) Record(d time.Duration) {
	m.samples = append(m.samples, d.Seconds())
	m.total += d
	if d < m.min {
		m.min = d
	}
	if d > m.max {
		m.max = d
	}
}

func (m *Metrics) Operations() int { return len(m.samples) }

func (m *Metrics) Total() time.Duration { return m.total }

func (m *Metrics) Min() time.Duration {
	if len(m.samples) == 0 {
		return 0
	}
	return m.min
}

func (m *Metrics) Max() time.Duration { return m.max }

// Mean returns the average duration per operation.
func (m *Metrics) Mean() time.Duration {
	if len(m.samples) == 0 {
		return 0
	}
	return time.Duration(stat.Mean(m.samples, nil) * float64(time.Second))
}

// StdDev returns the sample standard deviation of the timings.
func (m *Metrics) StdDev() time.Duration {
	if len(m.samples) < 2 {
		return 0
	}
	return time.Duration(stat.StdDev(m.samples, nil) * float64(time.Second))
}

// Throughput returns operations per second over the accumulated total.
func (m *Metrics) Throughput() float64 {
	if m.total <= 0 {
		return 0
	}
	return float64(len(m.samples)) / m.total.Seconds()
}

// Comparison holds baseline-versus-candidate metrics for one workload.
type Comparison struct {
	Name      string
	Baseline  *Metrics
	Candidate *Metrics
}

// Speedup returns how many times faster the candidate's mean is. Above 1
// the candidate wins.
func (c Comparison) Speedup() float64 {
	candidate := c.Candidate.Mean()
	if candidate <= 0 {
		return 0
	}
	return c.Baseline.Mean().Seconds() / candidate.Seconds()
}
