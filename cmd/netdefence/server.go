package main

import (
	"time"

	"github.com/zhoumeng-creater/netdefence/internal/engine"
	"github.com/zhoumeng-creater/netdefence/internal/service"
	"github.com/zhoumeng-creater/netdefence/internal/storage"
)

const idleScanInterval = 1 * time.Minute

// startIdleScanner periodically expires sessions whose last activity is past
// the idle timeout. Expired sessions are closed as draws.
func startIdleScanner(repo storage.Repository, eng *engine.Engine, idleTimeout time.Duration) {
	go func() {
		ticker := time.NewTicker(idleScanInterval)
		defer ticker.Stop()
		for range ticker.C {
			service.ExpireIdleSessions(repo, eng, idleTimeout)
		}
	}()
}
