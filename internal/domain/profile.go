package domain

import "time"

// PerformanceProfile times the phases of one request or run. Add
// marks the end of a phase; ElapsedMs is measured from the previous
// mark (or the profile start for the first one).
type PerformanceProfile struct {
	StartTime time.Time                 `json:"-"`
	Events    []PerformanceProfileEvent `json:"events"`
	TotalMs   int64                     `json:"totalMs"`
}

type PerformanceProfileEvent struct {
	Name      string    `json:"name"`
	ElapsedMs int64     `json:"elapsedMs"`
	Time      time.Time `json:"time"`
}

func NewPerformanceProfile() *PerformanceProfile {
	return &PerformanceProfile{
		StartTime: time.Now(),
	}
}

func (p *PerformanceProfile) Add(name string) {
	previous := p.StartTime
	if len(p.Events) > 0 {
		previous = p.Events[len(p.Events)-1].Time
	}
	now := time.Now()
	p.Events = append(p.Events, PerformanceProfileEvent{
		Name:      name,
		ElapsedMs: now.Sub(previous).Milliseconds(),
		Time:      now,
	})
}

func (p *PerformanceProfile) End() {
	p.TotalMs = time.Since(p.StartTime).Milliseconds()
}
