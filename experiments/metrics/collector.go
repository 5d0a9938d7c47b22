package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth       int
	Pruning     bool
	Opening     bool // Move came from the fixed opening replies
	Duration    time.Duration
	Nodes       int
	Leaves      int
	Cutoffs     int
	NoMoveNodes int
	Value       float64
	LineLength  int
}

type MoveMetric struct {
	Step   int
	Player string // Color name
	Move   string
	Passed bool
	SearchMetric
}

type GameMetric struct {
	ID             string
	StartingPlayer string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
	BlackStones    int
	WhiteStones    int
}

type Collector interface {
	Start(depth int, pruning bool)
	AddNode()
	AddLeaf()
	AddCutoff()
	AddNoMove()
	Complete(value float64, lineLength int) SearchMetric
}

type collector struct {
	depth       int
	pruning     bool
	startTime   time.Time
	nodes       atomic.Int64
	leaves      atomic.Int64
	cutoffs     atomic.Int64
	noMoveNodes atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, pruning bool) {
	m.startTime = time.Now()
	m.depth = depth
	m.pruning = pruning
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
	m.noMoveNodes.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddNoMove() {
	m.noMoveNodes.Add(1)
}

func (m *collector) Complete(value float64, lineLength int) SearchMetric {
	return SearchMetric{
		Depth:       m.depth,
		Pruning:     m.pruning,
		Duration:    time.Since(m.startTime),
		Nodes:       int(m.nodes.Load()),
		Leaves:      int(m.leaves.Load()),
		Cutoffs:     int(m.cutoffs.Load()),
		NoMoveNodes: int(m.noMoveNodes.Load()),
		Value:       value,
		LineLength:  lineLength,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, pruning bool) {}
func (m *dummyCollector) AddNode()                      {}
func (m *dummyCollector) AddLeaf()                      {}
func (m *dummyCollector) AddCutoff()                    {}
func (m *dummyCollector) AddNoMove()                    {}
func (m *dummyCollector) Complete(value float64, lineLength int) SearchMetric {
	return SearchMetric{Value: value, LineLength: lineLength}
}
