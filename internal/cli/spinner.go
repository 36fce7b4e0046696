package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner is a terminal progress indicator for slow operations. It stops
// on its own when the parent context is cancelled; stop is idempotent.
type spinner struct {
	msg  string
	ctx  context.Context
	out  io.Writer
	quit chan struct{}
	idle chan struct{}
	once sync.Once
}

// startSpinner begins animating msg on stderr and returns the running
// spinner. Callers must stop it before printing anything else.
func startSpinner(ctx context.Context, msg string) *spinner {
	s := &spinner{
		msg:  msg,
		ctx:  ctx,
		out:  os.Stderr,
		quit: make(chan struct{}),
		idle: make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *spinner) run() {
	defer close(s.idle)
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-s.ctx.Done():
			s.clear()
			return
		case <-s.quit:
			return
		case <-ticker.C:
			frame := spinnerFrames[i%len(spinnerFrames)]
			fmt.Fprintf(s.out, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.msg))
		}
	}
}

// stop halts the animation and clears the line. Safe to call repeatedly.
func (s *spinner) stop() {
	s.once.Do(func() { close(s.quit) })
	<-s.idle
	s.clear()
}

func (s *spinner) clear() {
	fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", len(s.msg)+4))
}

// succeed stops the spinner and prints a success line in its place.
func (s *spinner) succeed(msg string) {
	s.stop()
	printSuccess("%s", msg)
}

// fail stops the spinner and prints an error line in its place.
func (s *spinner) fail(msg string) {
	s.stop()
	printError("%s", msg)
}

// cancelled reports whether the parent context ended the spinner.
func (s *spinner) cancelled() bool {
	return s.ctx.Err() != nil
}
