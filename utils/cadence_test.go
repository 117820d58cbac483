package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	cadenceClient "go.uber.org/cadence/client"

	"github.com/bitmark-inc/innercore-api/external/cadence/mocks"
)

func TestTriggerDashboardRefresh(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockWorkflowClient(ctl)
	c.EXPECT().SignalWithStartWorkflow(gomock.Any(), "dashboard-user-a", DashboardRefreshSignal, nil,
		cadenceClient.StartWorkflowOptions{
			ID:                           "dashboard-user-a",
			TaskList:                     DashboardTaskListName,
			ExecutionStartToCloseTimeout: 48 * time.Hour,
			WorkflowIDReusePolicy:        cadenceClient.WorkflowIDReusePolicyAllowDuplicate,
		}, DashboardRefreshWorkflowName, "user-a").Return(nil, nil).Times(1)

	assert.NoError(t, TriggerDashboardRefresh(c, context.Background(), "user-a"))
}

func TestTriggerDashboardRefreshError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockWorkflowClient(ctl)
	failure := errors.New("cadence unavailable")
	c.EXPECT().SignalWithStartWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
		gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, failure).Times(1)

	assert.Equal(t, failure, TriggerDashboardRefresh(c, context.Background(), "user-a"))
}
