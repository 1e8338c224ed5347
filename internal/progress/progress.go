package progress

import (
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

// Display shows the directories probed by a search. On a terminal it keeps
// redrawing a single line; elsewhere it writes one line per probe.
type Display struct {
	writer     io.Writer
	inPlace    bool
	mu         sync.Mutex
	probed     int
	current    string
	lastUpdate time.Time
}

func New(w io.Writer) *Display {
	return &Display{
		writer:  w,
		inPlace: isTerminal(w),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Probe records that dir is about to be listed. Its signature matches
// findfolder.Finder.Visit.
func (d *Display) Probe(dir string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.probed++
	d.current = dir

	if !d.inPlace {
		fmt.Fprintf(d.writer, "probe %s\n", dir)
		return
	}

	// Update at most every 100ms to reduce flickering
	now := time.Now()
	if now.Sub(d.lastUpdate) > 100*time.Millisecond {
		d.lastUpdate = now
		d.render()
	}
}

func (d *Display) Probed() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.probed
}

// render must be called with mu already locked
func (d *Display) render() {
	fmt.Fprintf(d.writer, "\r\033[K[%d] %s", d.probed, filepath.Base(d.current))
}

func (d *Display) Finish() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.inPlace {
		d.render()
		fmt.Fprintf(d.writer, "\n")
	}
	fmt.Fprintf(d.writer, "probed %d directories\n", d.probed)
}
