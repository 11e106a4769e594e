package main

import (
	"log"
	"time"
)

// passiveTickInterval paces production at ten ticks per second, each worth a
// tenth of the per-second rate.
const passiveTickInterval = 100 * time.Millisecond

func startTickLoop(session *Session) {
	ticker := time.NewTicker(passiveTickInterval)

	go func() {
		for range ticker.C {
			session.PassiveTick(passiveTickInterval.Seconds())
		}
	}()
}

// startAutosaveLoop drives the debounced flush: dirty state is written on a
// short cadence, and a full save runs on the autosave interval regardless.
func startAutosaveLoop(session *Session) {
	ticker := time.NewTicker(flushInterval())

	go func() {
		lastFullSave := time.Now()
		for t := range ticker.C {
			session.FlushIfDirty()
			if t.Sub(lastFullSave) >= autosaveInterval() {
				session.Flush()
				lastFullSave = t
				log.Println("Autosave:", t.UTC().Format(time.RFC3339))
			}
		}
	}()
}
