package services

import (
	"log"
	"time"
)

// NoticeBus delivers short non-blocking notices to the client, mainly for
// best-effort storage failures that must never abort the primary flow. It
// deliberately does not persist anything: a notice about a failing store
// cannot depend on that store.
type NoticeBus struct {
	hub *RealtimeHub
}

func NewNoticeBus(hub *RealtimeHub) *NoticeBus {
	return &NoticeBus{hub: hub}
}

// Notify is safe to call with a nil receiver or nil hub.
func (b *NoticeBus) Notify(kind, message string) {
	log.Printf("notice [%s]: %s", kind, message)
	if b == nil || b.hub == nil {
		return
	}
	b.hub.Broadcast(map[string]any{
		"kind":    kind,
		"message": message,
		"at":      time.Now().Format(time.RFC3339),
	})
}
