package nom

import "time"

// playerStats holds per-update metrics. Only collected in debug mode.
type playerStats struct {
	visited   int
	retired   int
	remaining int
	elapsed   time.Duration
}

// SetDebugMode enables or disables per-update stats. When enabled, every
// Update logs the number of queues visited and retired and the time spent,
// at debug level.
func (p *ActionPlayer) SetDebugMode(enabled bool) {
	p.debug = enabled
}

// debugLog writes per-update stats to the package logger.
func (p *ActionPlayer) debugLog(stats playerStats) {
	if !p.debug {
		return
	}
	Logger().Debug("nom: player update",
		"state", p.state.String(),
		"visited", stats.visited,
		"retired", stats.retired,
		"remaining", stats.remaining,
		"elapsed", stats.elapsed)
}
