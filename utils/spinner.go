package utils

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

const spinnerFrames = `⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏`

// Spinner is a terminal progress indicator.
type Spinner struct {
	mu         sync.Mutex
	delay      time.Duration
	writer     io.Writer
	message    string
	lastOutput string
	hideCursor bool
	running    bool
	stop       chan struct{}
	done       chan struct{}
}

// NewSpinner returns a spinner writing msg followed by an animated frame to w.
func NewSpinner(w io.Writer, msg string, d time.Duration, hideCursor bool) *Spinner {
	return &Spinner{
		delay:      d,
		writer:     w,
		message:    msg,
		hideCursor: hideCursor,
	}
}

// SetMessage changes the text shown in front of the animation.
func (s *Spinner) SetMessage(msg string) {
	s.mu.Lock()
	s.message = msg
	s.mu.Unlock()
}

// Start starts the progress indicator. Starting a running spinner is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	if s.hideCursor && runtime.GOOS != "windows" {
		fmt.Fprint(s.writer, "\033[?25l")
	}

	go s.spin(s.stop, s.done)
}

func (s *Spinner) spin(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.delay)
	defer ticker.Stop()

	for {
		for _, r := range spinnerFrames {
			s.mu.Lock()
			output := fmt.Sprintf("\r%s%s %c%s", s.message, SuccessColor, r, DefaultColor)
			fmt.Fprint(s.writer, output)
			s.lastOutput = output
			s.mu.Unlock()

			select {
			case <-stop:
				return
			case <-ticker.C:
			}
		}
	}
}

// Stop halts the animation, clears its line and prints msg when not empty.
func (s *Spinner) Stop(msg string) {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	done := s.done
	s.mu.Unlock()

	<-done

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clear()
	s.restoreCursor()
	if msg != "" {
		fmt.Fprint(s.writer, msg)
	}
}

// RestoreCursor makes the cursor visible again, e.g. after an interrupt.
func (s *Spinner) RestoreCursor() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restoreCursor()
}

func (s *Spinner) restoreCursor() {
	if s.hideCursor && runtime.GOOS != "windows" {
		fmt.Fprint(s.writer, "\033[?25h")
	}
}

// clear deletes the last line. Caller must hold the lock.
func (s *Spinner) clear() {
	n := utf8.RuneCountInString(s.lastOutput)
	if runtime.GOOS == "windows" {
		fmt.Fprint(s.writer, "\r"+strings.Repeat(" ", n)+"\r")
		s.lastOutput = ""
		return
	}
	fmt.Fprint(s.writer, "\r\033[K")
	s.lastOutput = ""
}
