package cli

import (
	"io"
	"sync"
	"time"

	"github.com/gosuri/uiprogress"
)

// ProgressBar track a counted task
type ProgressBar interface {
	Set(done int)
	Finish()
}

type Progress struct {
	p    *uiprogress.Progress
	Bars []ProgressBar
}

func NewProgress(w io.Writer) *Progress {
	p := uiprogress.New()
	p.Out = w
	p.RefreshInterval = time.Millisecond * 50
	p.Start()
	return &Progress{p: p}
}

func (p *Progress) NewBar(name string, total int) ProgressBar {
	if total <= 0 {
		total = 1
	}
	bar := p.p.AddBar(total)
	bar.AppendCompleted()
	bar.PrependElapsed()
	if name != "" {
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return name
		})
	}
	bs := &pBar{bar: bar, once: new(sync.Once)}
	p.Bars = append(p.Bars, bs)
	return bs
}

func (p *Progress) Stop() {
	for _, b := range p.Bars {
		b.Finish()
	}
	p.p.Stop()
}

type pBar struct {
	bar  *uiprogress.Bar
	once *sync.Once
}

func (b *pBar) Set(done int) {
	if done > b.bar.Total {
		done = b.bar.Total
	}
	b.bar.Set(done)
}

func (b *pBar) Finish() {
	b.once.Do(func() {
		b.bar.Set(b.bar.Total)
	})
}

// NopBar is used when output is not interactive
type NopBar struct{}

func (NopBar) Set(int) {}
func (NopBar) Finish() {}
