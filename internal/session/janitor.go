package session

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"loan-assistant/internal/common/logger"
)

// Sweeper is a store that needs expired sessions removed periodically.
type Sweeper interface {
	Sweep() int
}

// StartJanitor runs store.Sweep on the given cron schedule (with seconds,
// e.g. "0 */5 * * * *"). Stop the returned cron to end it.
func StartJanitor(store Sweeper, schedule string, log logger.Logger) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(schedule, func() {
		if removed := store.Sweep(); removed > 0 {
			log.Debug("expired sessions removed", map[string]interface{}{"count": removed})
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add sweep job: %w", err)
	}

	c.Start()
	return c, nil
}
