package printer

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, fn func()) string {
	old, oldNoColor := Output, color.NoColor
	var buf bytes.Buffer
	Output = &buf
	color.NoColor = true
	defer func() {
		Output = old
		color.NoColor = oldNoColor
	}()
	fn()
	return buf.String()
}

func TestPrint(t *testing.T) {
	assert := assert.New(t)
	out := capture(t, func() { Print("released %d nodes, shared=%v", 3, true) })
	assert.Equal("released 3 nodes, shared=true\n", out)

	out = capture(t, func() { Print("no args") })
	assert.Equal("no args\n", out)

	out = capture(t, func() { Print("100%% of %s\n", "chain") })
	assert.Equal("100% of chain\n", out)
}

func TestRewriteFormat(t *testing.T) {
	var verbs []string
	f := rewriteFormat("%05d and %-4s and %v", func(i int, tok string) {
		verbs = append(verbs, tok)
	})
	assert.Equal(t, "%s and %s and %s\n", f)
	assert.Equal(t, []string{"%05d", "%-4s", "%v"}, verbs)
}

func TestPrependGoroutine(t *testing.T) {
	out := capture(t, func() { Printer(rawPrint).PrependGoroutine()("x=%d", 1) })
	assert.Equal(t, "[g"+GoroutineID()+"] x=1\n", out)
}

func TestGoroutineID(t *testing.T) {
	id := GoroutineID()
	_, err := strconv.Atoi(id)
	assert.NoError(t, err)

	ch := make(chan string)
	go func() { ch <- GoroutineID() }()
	assert.NotEqual(t, id, <-ch)
}
