package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"

	"github.com/bitmark-inc/innercore-api/store"
)

// BackgroundManager runs the machinery tasks of the service
type BackgroundManager struct {
	store store.InnerCore

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		store:      store.NewInnerCoreStore(ormDB),
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// RegisterTasks registers every task this package provides
func (m *BackgroundManager) RegisterTasks() error {
	return m.RegisterTask(ExpireSessionsTask, m.ExpireSessions)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("innercore-worker", 5)
	return m.worker.Launch()
}
