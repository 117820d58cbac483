package dashboard

import (
	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/activity"
	"go.uber.org/cadence/worker"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/bitmark-inc/innercore-api/background"
	"github.com/bitmark-inc/innercore-api/external/cadence"
	"github.com/bitmark-inc/innercore-api/store"
	"github.com/bitmark-inc/innercore-api/utils"
)

type DashboardWorker struct {
	background.Background
	domain string
}

func NewDashboardWorker(domain string, mongo store.MongoStore) *DashboardWorker {
	return &DashboardWorker{
		Background: background.Background{Mongo: mongo},
		domain:     domain,
	}
}

func (w *DashboardWorker) Register() {
	workflow.RegisterWithOptions(w.DashboardRefreshWorkflow, workflow.RegisterOptions{Name: utils.DashboardRefreshWorkflowName})

	activity.RegisterWithOptions(w.RefreshDashboardActivity, activity.RegisterOptions{Name: "RefreshDashboardActivity"})
	activity.RegisterWithOptions(w.RecordStatusChangeActivity, activity.RegisterOptions{Name: "RecordStatusChangeActivity"})
}

func (w *DashboardWorker) Start(service workflowserviceclient.Interface, logger *zap.Logger) {
	workerOptions := worker.Options{
		Logger:        logger,
		MetricsScope:  tally.NewTestScope(utils.DashboardTaskListName, map[string]string{}),
		DataConverter: cadence.NewMsgPackDataConverter(),
	}

	worker := worker.New(
		service,
		w.domain,
		utils.DashboardTaskListName,
		workerOptions)

	if err := worker.Start(); err != nil {
		panic("Failed to start worker")
	}

	logger.Info("Started Worker.", zap.String("worker", utils.DashboardTaskListName))

	select {}
}
