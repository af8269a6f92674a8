package metrics

import (
	"sync"

	"careerconnect/internal/common"
)

// Collector keeps in-process request counters. It is deliberately small:
// a snapshot endpoint, not a time-series system.
type Collector struct {
	mu            sync.Mutex
	requests      int64
	byStatusClass map[string]int64
	errorsByCode  map[common.Code]int64
}

func NewCollector() *Collector {
	return &Collector{
		byStatusClass: make(map[string]int64),
		errorsByCode:  make(map[common.Code]int64),
	}
}

func (c *Collector) RecordRequest(status int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests++
	c.byStatusClass[statusClass(status)]++
}

func (c *Collector) RecordError(code common.Code) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorsByCode[code]++
}

type Snapshot struct {
	Requests      int64                 `json:"requests"`
	ByStatusClass map[string]int64      `json:"by_status_class"`
	ErrorsByCode  map[common.Code]int64 `json:"errors_by_code"`
}

func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := Snapshot{
		Requests:      c.requests,
		ByStatusClass: make(map[string]int64, len(c.byStatusClass)),
		ErrorsByCode:  make(map[common.Code]int64, len(c.errorsByCode)),
	}
	for class, count := range c.byStatusClass {
		snap.ByStatusClass[class] = count
	}
	for code, count := range c.errorsByCode {
		snap.ErrorsByCode[code] = count
	}
	return snap
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
