package ui

import (
	"fmt"
	"time"
)

// StartIndicator animates label on the error stream until the returned
// stop function is called. It returns nil when stderr is not a terminal.
func (u *UI) StartIndicator(label string) func() {
	if u == nil || u.Err == nil || !IsTTY(u.Err) {
		return nil
	}

	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		start := time.Now()
		frames := []string{"|", "/", "-", "\\"}
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		index := 0

		for {
			select {
			case <-done:
				fmt.Fprint(u.Err, "\r\033[2K")
				return
			case <-ticker.C:
				seconds := int(time.Since(start).Seconds())
				frame := frames[index%len(frames)]
				fmt.Fprintf(u.Err, "\r\033[2K%s %ds %s", label, seconds, frame)
				index++
			}
		}
	}()

	return func() {
		close(done)
		<-stopped
	}
}
