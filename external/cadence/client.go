package cadence

import (
	"context"
	"fmt"

	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/client"
	"go.uber.org/cadence/workflow"
	"go.uber.org/yarpc"
	"go.uber.org/yarpc/transport/tchannel"
)

const (
	ClientName     = "innercore-worker"
	CadenceService = "cadence-frontend"
)

// WorkflowClient is the part of the cadence client used to kick workflows
type WorkflowClient interface {
	SignalWithStartWorkflow(ctx context.Context,
		workflowID string, signalName string, signalArg interface{},
		options client.StartWorkflowOptions, workflow interface{}, workflowArgs ...interface{}) (*workflow.Execution, error)
}

type CadenceClient struct {
	client client.Client
}

// BuildCadenceServiceClient dials the cadence frontend through a tchannel
// outbound
func BuildCadenceServiceClient(hostPort string) (workflowserviceclient.Interface, error) {
	ch, err := tchannel.NewChannelTransport(tchannel.ServiceName(ClientName))
	if err != nil {
		return nil, fmt.Errorf("failed to setup tchannel: %w", err)
	}
	dispatcher := yarpc.NewDispatcher(yarpc.Config{
		Name: ClientName,
		Outbounds: yarpc.Outbounds{
			CadenceService: {Unary: ch.NewSingleOutbound(hostPort)},
		},
	})
	if err := dispatcher.Start(); err != nil {
		return nil, fmt.Errorf("failed to start dispatcher: %w", err)
	}

	return workflowserviceclient.New(dispatcher.ClientConfig(CadenceService)), nil
}

func NewClient(hostPort, domain string) (*CadenceClient, error) {
	service, err := BuildCadenceServiceClient(hostPort)
	if err != nil {
		return nil, err
	}

	return &CadenceClient{
		client: client.NewClient(
			service,
			domain,
			&client.Options{
				MetricsScope:  tally.NoopScope,
				DataConverter: NewMsgPackDataConverter(),
			},
		),
	}, nil
}

func (c *CadenceClient) SignalWithStartWorkflow(ctx context.Context,
	workflowID string, signalName string, signalArg interface{},
	options client.StartWorkflowOptions, workflow interface{}, workflowArgs ...interface{}) (*workflow.Execution, error) {
	return c.client.SignalWithStartWorkflow(ctx, workflowID, signalName, signalArg, options, workflow, workflowArgs...)
}
