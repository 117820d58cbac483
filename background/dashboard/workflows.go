package dashboard

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/bitmark-inc/innercore-api/utils"
)

// RefreshInterval is how long a dashboard stays untouched without a signal
const RefreshInterval = 24 * time.Hour

var activityOptions = workflow.ActivityOptions{
	ScheduleToStartTimeout: time.Minute,
	StartToCloseTimeout:    time.Minute,
	HeartbeatTimeout:       time.Second * 20,
}

// DashboardRefreshWorkflow recomputes the dashboard snapshot of a user
// whenever a refresh signal arrives or the refresh interval passes.
func (w *DashboardWorker) DashboardRefreshWorkflow(ctx workflow.Context, uid string) error {
	ctx = workflow.WithActivityOptions(ctx, activityOptions)
	signalChan := workflow.GetSignalChannel(ctx, utils.DashboardRefreshSignal)
	defer signalChan.Close()

	logger := workflow.GetLogger(ctx)
	selector := workflow.NewSelector(ctx)

	timerCancelCtx, cancelTimerHandler := workflow.WithCancel(ctx)
	timerFuture := workflow.NewTimer(timerCancelCtx, RefreshInterval)
	selector.AddFuture(timerFuture, func(f workflow.Future) {
		logger.Info("Start periodically dashboard refresh", zap.String("uid", uid))
	})

	selector.AddReceive(signalChan, func(c workflow.Channel, more bool) {
		cancelTimerHandler()
		signalChan.Receive(ctx, nil)

		logger.Info("Trigger dashboard refresh by signal", zap.String("uid", uid))
	})

	selector.Select(ctx)

	var result RefreshResult
	if err := workflow.ExecuteActivity(ctx, w.RefreshDashboardActivity, uid).Get(ctx, &result); err != nil {
		logger.Error("Fail to refresh dashboard.", zap.Error(err))
		sentry.CaptureException(err)
		return workflow.NewContinueAsNewError(ctx, w.DashboardRefreshWorkflow, uid)
	}

	if result.Change != nil {
		if err := workflow.ExecuteActivity(ctx, w.RecordStatusChangeActivity, uid, *result.Change).Get(ctx, nil); err != nil {
			logger.Error("Fail to record status change.", zap.Error(err))
			sentry.CaptureException(err)
		}
	}

	return workflow.NewContinueAsNewError(ctx, w.DashboardRefreshWorkflow, uid)
}
