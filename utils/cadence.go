package utils

import (
	"context"
	"fmt"
	"time"

	cadenceClient "go.uber.org/cadence/client"

	"github.com/bitmark-inc/innercore-api/external/cadence"
)

const (
	DashboardTaskListName        = "innercore-dashboard-tasks"
	DashboardRefreshSignal       = "dashboardRefreshSignal"
	DashboardRefreshWorkflowName = "DashboardRefreshWorkflow"
)

func DashboardWorkflowID(uid string) string {
	return fmt.Sprintf("dashboard-%s", uid)
}

// TriggerDashboardRefresh is a helper function to send a signal to
// trigger the workflow to refresh the dashboard of a user. The workflow
// is started if it is not running.
func TriggerDashboardRefresh(client cadence.WorkflowClient, c context.Context, uid string) error {
	_, err := client.SignalWithStartWorkflow(c,
		DashboardWorkflowID(uid), DashboardRefreshSignal, nil,
		cadenceClient.StartWorkflowOptions{
			ID:                           DashboardWorkflowID(uid),
			TaskList:                     DashboardTaskListName,
			ExecutionStartToCloseTimeout: 48 * time.Hour,
			WorkflowIDReusePolicy:        cadenceClient.WorkflowIDReusePolicyAllowDuplicate,
		}, DashboardRefreshWorkflowName, uid)
	return err
}
