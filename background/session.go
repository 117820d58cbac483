package background

import (
	"time"

	log "github.com/sirupsen/logrus"
)

const ExpireSessionsTask = "expire_sessions"

// ExpireSessions is a background job to remove sessions which are signed
// out or expired
func (m *BackgroundManager) ExpireSessions() error {
	count, err := m.store.ExpireSessions(time.Now())
	if err != nil {
		log.WithField("prefix", "background").WithError(err).Error("fail to expire sessions")
		return err
	}

	log.WithField("prefix", "background").Debugf("%d sessions removed", count)
	return nil
}
