package logger

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
)

// TestConcurrency_ColoredLinesNotGarbled verifies that color set/write/reset
// sequences from many goroutines never interleave on the console.
func TestConcurrency_ColoredLinesNotGarbled(t *testing.T) {
	var console bytes.Buffer
	sink := &memorySink{}
	shared := NewConsole(&console)
	env := NewEnvironment(true, nil)

	const numLoggers = 50
	const messagesPerLogger = 200

	loggers := make([]*Logger, numLoggers)
	for i := range loggers {
		l, err := New(fmt.Sprintf("mod-%d", i), sink,
			WithEnvironment(env),
			WithConsole(shared),
			WithClock(fixedClock(12, 0, 0)),
		)
		if err != nil {
			t.Fatalf("New returned error: %v", err)
		}
		loggers[i] = l
	}

	var wg sync.WaitGroup
	wg.Add(numLoggers)
	for i, l := range loggers {
		go func(id int, l *Logger) {
			defer wg.Done()
			for j := 0; j < messagesPerLogger; j++ {
				l.Log(fmt.Sprintf("goroutine-%d-msg-%d", id, j), AllLevels()[1+j%5])
			}
		}(i, l)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(console.String(), "\n"), "\n")
	if len(lines) != numLoggers*messagesPerLogger {
		t.Fatalf("expected %d console lines, got %d", numLoggers*messagesPerLogger, len(lines))
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, "\x1b[") || !strings.HasSuffix(line, "\x1b[0m") {
			t.Fatalf("line %d appears garbled: %q", i, line)
		}
		if strings.Count(line, "goroutine-") != 1 {
			t.Fatalf("line %d has interleaved messages: %q", i, line)
		}
	}

	if got := len(sink.Lines()); got != numLoggers*messagesPerLogger {
		t.Fatalf("expected %d file lines, got %d", numLoggers*messagesPerLogger, got)
	}
}

// TestConcurrency_FlagToggles checks the runtime flags can be flipped while
// other goroutines are logging.
func TestConcurrency_FlagToggles(t *testing.T) {
	l, _, sink := newTestLogger(t, "Core", false)

	const n = 1000
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			l.SetWriteToConsole(i%2 == 0)
			l.SetShowTraceInConsole(i%3 == 0)
		}
	}()
	go func() {
		defer wg.Done()
		for k := 0; k < n; k++ {
			l.Trace("tick")
		}
	}()
	wg.Wait()

	if got := len(sink.Lines()); got != n {
		t.Fatalf("every trace line should reach the file, got %d of %d", got, n)
	}
}
