package util

import "time"

// Sleep blocks without leaking the timer the way time.After would.
func Sleep(t time.Duration) {
	timer := time.NewTimer(t)
	defer timer.Stop()
	<-timer.C
}
