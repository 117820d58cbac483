package background

import (
	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"
)

// Enqueuer submits background jobs without waiting for them
type Enqueuer interface {
	EnqueueExpireSessions() error
}

type TaskQueue struct {
	server *machinery.Server
}

func NewTaskQueue(server *machinery.Server) *TaskQueue {
	return &TaskQueue{server: server}
}

func (q *TaskQueue) EnqueueExpireSessions() error {
	_, err := q.server.SendTask(&tasks.Signature{
		Name:       ExpireSessionsTask,
		RetryCount: 3,
	})
	return err
}
