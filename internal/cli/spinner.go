// Package cli 终端展示辅助：加载提示与结果渲染
package cli

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner 终端加载提示，实现 transport.Indicator
// 多个请求可以并发进行，用计数保证最后一个结束时才清除提示
type Spinner struct {
	mu      sync.Mutex
	writer  io.Writer
	active  int
	label   string
	done    chan struct{}
	enabled bool
}

func NewSpinner() *Spinner {
	return &Spinner{
		writer:  os.Stderr,
		enabled: isTerminal(),
	}
}

func (s *Spinner) Start(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active++
	s.label = label
	if !s.enabled || s.active > 1 {
		return
	}

	s.done = make(chan struct{})
	go s.spin(s.done)
}

func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == 0 {
		return
	}
	s.active--
	if s.active > 0 || s.done == nil {
		return
	}
	close(s.done)
	s.done = nil
	fmt.Fprint(s.writer, "\r\033[K")
}

func (s *Spinner) spin(done chan struct{}) {
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.mu.Lock()
			fmt.Fprintf(s.writer, "\r%s %s", spinnerFrames[frame%len(spinnerFrames)], s.label)
			s.mu.Unlock()
			frame++
		}
	}
}

func isTerminal() bool {
	info, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
