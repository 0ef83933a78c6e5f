// Package stress drives plist through a deep build, a fan of branches
// sharing one tail, and the teardown of both, recording what each Release
// reclaimed.
package stress

import (
	"errors"
	"fmt"
	"time"

	"github.com/qjpcpu/persistent/internal/cli"
	"github.com/qjpcpu/persistent/plist"
)

const (
	PhaseBuild           = "build"
	PhaseBranch          = "branch"
	PhaseReleaseBranches = "release-branches"
	PhaseReleaseBase     = "release-base"
)

// DefaultDepth is the base list length used when none is configured
const DefaultDepth = 1 << 20

const progressStep = 1 << 12

type Config struct {
	Depth    int
	Branches int
	// Trace log every release on top of counting it
	Trace bool
}

func (c Config) Validate() error {
	if c.Depth < 0 {
		return fmt.Errorf("depth should not be negative, got %d", c.Depth)
	}
	if c.Branches < 0 {
		return fmt.Errorf("branches should not be negative, got %d", c.Branches)
	}
	return nil
}

// Result of one phase
type Result struct {
	Phase   string
	Handles int
	// Releases counts traced Release calls, empty handles are not traced
	Releases  int
	Reclaimed int
	// Shared counts releases that stopped at a node owned elsewhere
	Shared  int
	Elapsed time.Duration
}

// NewBar create a progress bar for a phase with total steps
type NewBar func(phase string, total int) cli.ProgressBar

func nopBar(string, int) cli.ProgressBar { return cli.NopBar{} }

// counter is installed as the plist tracer while a run is in progress
type counter struct {
	next      plist.Tracer
	releases  int
	reclaimed int
	shared    int
}

func (c *counter) OnRelease(reclaimed int, shared bool) {
	if c.next != nil {
		c.next.OnRelease(reclaimed, shared)
	}
	c.releases++
	c.reclaimed += reclaimed
	if shared {
		c.shared++
	}
}

func (c *counter) take() (releases, reclaimed, shared int) {
	releases, reclaimed, shared = c.releases, c.reclaimed, c.shared
	*c = counter{next: c.next}
	return
}

// Run execute every phase in order, newBar may be nil
func Run(cfg Config, newBar NewBar) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if newBar == nil {
		newBar = nopBar
	}
	cnt := new(counter)
	if cfg.Trace {
		cnt.next = plist.LogTracer{}
	}
	plist.SetTracer(cnt)
	defer plist.SetTracer(nil)

	var results []Result
	record := func(phase string, handles int, start time.Time) {
		releases, reclaimed, shared := cnt.take()
		results = append(results, Result{
			Phase:     phase,
			Handles:   handles,
			Releases:  releases,
			Reclaimed: reclaimed,
			Shared:    shared,
			Elapsed:   time.Since(start),
		})
	}

	start := time.Now()
	base := build(cfg.Depth, newBar(PhaseBuild, cfg.Depth))
	record(PhaseBuild, cfg.Depth, start)
	if n := base.Len(); n != cfg.Depth {
		base.Release()
		return results, fmt.Errorf("built %d elements, want %d", n, cfg.Depth)
	}

	start = time.Now()
	branches := make([]plist.List[int], cfg.Branches)
	for i := range branches {
		branches[i] = base.Prepend(-i - 1)
	}
	record(PhaseBranch, cfg.Branches, start)

	if err := checkBranches(branches, cfg.Depth); err != nil {
		for i := range branches {
			branches[i].Release()
		}
		base.Release()
		return results, err
	}
	// releases done by the check itself are not part of any phase
	cnt.take()

	start = time.Now()
	for i := range branches {
		branches[i].Release()
	}
	record(PhaseReleaseBranches, cfg.Branches, start)

	start = time.Now()
	base.Release()
	record(PhaseReleaseBase, 1, start)
	return results, nil
}

func build(depth int, bar cli.ProgressBar) plist.List[int] {
	defer bar.Finish()
	l := plist.New[int]()
	for i := 0; i < depth; i++ {
		next := l.Prepend(i)
		l.Release()
		l = next
		if i%progressStep == 0 {
			bar.Set(i)
		}
	}
	return l
}

var errBranchCorrupted = errors.New("branch does not see its own head over the shared tail")

func checkBranches(branches []plist.List[int], depth int) error {
	for i, b := range branches {
		v, ok := b.Head()
		if !ok || v != -i-1 {
			return fmt.Errorf("branch %d: %w", i, errBranchCorrupted)
		}
		rest, _ := b.Tail()
		v, ok = rest.Head()
		rest.Release()
		if depth > 0 && (!ok || v != depth-1) {
			return fmt.Errorf("branch %d tail: %w", i, errBranchCorrupted)
		}
	}
	return nil
}
