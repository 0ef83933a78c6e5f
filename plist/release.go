package plist

import "github.com/qjpcpu/persistent/internal/printer"

// Debug print every Release when no Tracer is installed
var Debug bool

//go:generate mockgen -package mock_plist -destination mock_plist/mock_tracer.go -source release.go

// Tracer observe list teardown
type Tracer interface {
	// OnRelease is called once per Release with the number of nodes cleared
	// and whether the walk stopped at a node still owned elsewhere
	OnRelease(reclaimed int, shared bool)
}

var tracer Tracer

// SetTracer install t, nil remove the current one
func SetTracer(t Tracer) {
	tracer = t
}

// LogTracer print every release through the debug printer, for chaining
// behind another Tracer
type LogTracer struct{}

func (LogTracer) OnRelease(reclaimed int, shared bool) {
	logRelease(reclaimed, shared)
}

var logRelease = func(reclaimed int, shared bool) {
	if shared {
		printer.Trace("[plist] released %d nodes, stopped at shared node", reclaimed)
	} else {
		printer.Trace("[plist] released %d nodes, chain end", reclaimed)
	}
}

// Release drop the ownership l holds and clear every node left without
// owner, l becomes empty. The walk is a loop that stops at the first node
// still owned by another list, the rest of the chain is theirs to release.
// It returns the number of nodes cleared.
func (l *List[T]) Release() int {
	cur := l.head
	l.head = nil
	if cur == nil {
		return 0
	}
	var reclaimed int
	var shared bool
	for cur != nil {
		cur.mustLive()
		cur.refs--
		if cur.refs > 0 {
			shared = true
			break
		}
		cur = cur.reclaim()
		reclaimed++
	}
	traceRelease(reclaimed, shared)
	return reclaimed
}

func traceRelease(reclaimed int, shared bool) {
	if tracer != nil {
		tracer.OnRelease(reclaimed, shared)
		return
	}
	if Debug {
		logRelease(reclaimed, shared)
	}
}
