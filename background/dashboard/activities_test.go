package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/cadence/testsuite"
	"go.uber.org/cadence/worker"
	"go.uber.org/zap"

	"github.com/bitmark-inc/innercore-api/external/cadence"
	"github.com/bitmark-inc/innercore-api/schema"
	"github.com/bitmark-inc/innercore-api/score"
	"github.com/bitmark-inc/innercore-api/store"
	"github.com/bitmark-inc/innercore-api/store/mocks"
)

func weeklyReviews(percents ...int) []schema.WeeklyReview {
	base := time.Date(2020, 8, 3, 0, 0, 0, 0, time.UTC)
	reviews := make([]schema.WeeklyReview, 0, len(percents))
	for i, p := range percents {
		reviews = append(reviews, schema.WeeklyReview{
			Percent: p,
			Date:    base.AddDate(0, 0, 7*i),
		})
	}
	return reviews
}

type DashboardActivityTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite
	env       *testsuite.TestActivityEnvironment
	worker    *DashboardWorker
	mockCtrl  *gomock.Controller
	mongoMock *mocks.MockMongoStore
	testUID   string
}

func (ts *DashboardActivityTestSuite) SetupSuite() {
	ts.SetLogger(zap.NewNop())
	ts.testUID = "0b5e3a44-5d0b-4a0c-9a8e-5c1e2f0c7d11"
}

func (ts *DashboardActivityTestSuite) SetupTest() {
	ts.env = ts.NewTestActivityEnvironment()
	ts.env.SetWorkerOptions(worker.Options{
		BackgroundActivityContext: context.Background(),
		DataConverter:             cadence.NewMsgPackDataConverter(),
	})

	ts.mockCtrl = gomock.NewController(ts.T())

	mongoMock = mocks.NewMockMongoStore(ts.mockCtrl)
	testWorker.Mongo = mongoMock
	ts.mongoMock = mongoMock
	ts.worker = testWorker
}

func (ts *DashboardActivityTestSuite) TearDownTest() {
	ts.mockCtrl.Finish()
}

// TestRefreshDashboardActivityFirstRun tests a refresh without any previous snapshot
func (ts *DashboardActivityTestSuite) TestRefreshDashboardActivityFirstRun() {
	ts.mongoMock.EXPECT().GetAssessment(gomock.Eq(ts.testUID)).
		Return(&schema.Assessment{ID: ts.testUID, Percent: 70}, nil)
	ts.mongoMock.EXPECT().ListWeeklyReviews(gomock.Eq(ts.testUID)).
		Return(weeklyReviews(20, 40, 60, 80), nil)
	ts.mongoMock.EXPECT().GetDashboard(gomock.Eq(ts.testUID)).
		Return(nil, store.ErrDashboardNotFound)
	ts.mongoMock.EXPECT().SaveDashboard(gomock.Eq(schema.Dashboard{
		ID:              ts.testUID,
		BasePercent:     70,
		AdjustedPercent: 10,
		Delta:           60,
		WindowSize:      4,
		Status:          score.Healthy,
		Color:           score.Green,
		Reviews:         4,
	})).Return(nil)

	values, err := ts.env.ExecuteActivity(ts.worker.RefreshDashboardActivity, ts.testUID)
	ts.NoError(err)

	var result RefreshResult
	ts.NoError(values.Get(&result))
	ts.Equal(10, result.AdjustedPercent)
	ts.Equal(score.Healthy, result.Status)
	ts.Nil(result.Change)
}

// TestRefreshDashboardActivityStatusChanged tests a refresh which moves the status to another bucket
func (ts *DashboardActivityTestSuite) TestRefreshDashboardActivityStatusChanged() {
	ts.mongoMock.EXPECT().GetAssessment(gomock.Eq(ts.testUID)).
		Return(&schema.Assessment{ID: ts.testUID, Percent: 60}, nil)
	ts.mongoMock.EXPECT().ListWeeklyReviews(gomock.Eq(ts.testUID)).
		Return(weeklyReviews(30, 50), nil)
	ts.mongoMock.EXPECT().GetDashboard(gomock.Eq(ts.testUID)).
		Return(&schema.Dashboard{ID: ts.testUID, AdjustedPercent: 60, Status: score.Poor}, nil)
	ts.mongoMock.EXPECT().SaveDashboard(gomock.Any()).Return(nil)

	values, err := ts.env.ExecuteActivity(ts.worker.RefreshDashboardActivity, ts.testUID)
	ts.NoError(err)

	var result RefreshResult
	ts.NoError(values.Get(&result))
	ts.Equal(40, result.AdjustedPercent)
	ts.Equal(score.Fair, result.Status)
	if ts.NotNil(result.Change) {
		ts.Equal(score.Poor, result.Change.From)
		ts.Equal(score.Fair, result.Change.To)
		ts.Equal(60, result.Change.OldPercent)
		ts.Equal(40, result.Change.NewPercent)
	}
}

// TestRefreshDashboardActivitySameStatus tests a refresh that stays in the same bucket
func (ts *DashboardActivityTestSuite) TestRefreshDashboardActivitySameStatus() {
	ts.mongoMock.EXPECT().GetAssessment(gomock.Eq(ts.testUID)).
		Return(&schema.Assessment{ID: ts.testUID, Percent: 30}, nil)
	ts.mongoMock.EXPECT().ListWeeklyReviews(gomock.Eq(ts.testUID)).
		Return([]schema.WeeklyReview{}, nil)
	ts.mongoMock.EXPECT().GetDashboard(gomock.Eq(ts.testUID)).
		Return(&schema.Dashboard{ID: ts.testUID, AdjustedPercent: 45, Status: score.Fair}, nil)
	ts.mongoMock.EXPECT().SaveDashboard(gomock.Any()).Return(nil)

	values, err := ts.env.ExecuteActivity(ts.worker.RefreshDashboardActivity, ts.testUID)
	ts.NoError(err)

	var result RefreshResult
	ts.NoError(values.Get(&result))
	ts.Equal(30, result.AdjustedPercent)
	ts.Nil(result.Change)
}

// TestRefreshDashboardActivityWithoutAssessment tests a refresh before the assessment is submitted
func (ts *DashboardActivityTestSuite) TestRefreshDashboardActivityWithoutAssessment() {
	ts.mongoMock.EXPECT().GetAssessment(gomock.Eq(ts.testUID)).
		Return(nil, store.ErrAssessmentNotFound)

	values, err := ts.env.ExecuteActivity(ts.worker.RefreshDashboardActivity, ts.testUID)
	ts.EqualError(err, store.ErrAssessmentNotFound.Error())
	ts.Nil(values)
}

// TestRefreshDashboardActivitySaveError tests a refresh failing at the store
func (ts *DashboardActivityTestSuite) TestRefreshDashboardActivitySaveError() {
	ts.mongoMock.EXPECT().GetAssessment(gomock.Eq(ts.testUID)).
		Return(&schema.Assessment{ID: ts.testUID, Percent: 30}, nil)
	ts.mongoMock.EXPECT().ListWeeklyReviews(gomock.Eq(ts.testUID)).
		Return([]schema.WeeklyReview{}, nil)
	ts.mongoMock.EXPECT().GetDashboard(gomock.Eq(ts.testUID)).
		Return(nil, store.ErrDashboardNotFound)
	ts.mongoMock.EXPECT().SaveDashboard(gomock.Any()).Return(errors.New("write conflict"))

	values, err := ts.env.ExecuteActivity(ts.worker.RefreshDashboardActivity, ts.testUID)
	ts.EqualError(err, "write conflict")
	ts.Nil(values)
}

// TestRecordStatusChangeActivity tests the change is stored with its owner
func (ts *DashboardActivityTestSuite) TestRecordStatusChangeActivity() {
	change := schema.StatusChange{
		From:       score.Fair,
		To:         score.Poor,
		OldPercent: 50,
		NewPercent: 55,
		Timestamp:  1600000000,
	}

	expected := change
	expected.UID = ts.testUID
	ts.mongoMock.EXPECT().AppendStatusChange(gomock.Eq(expected)).Return(nil)

	_, err := ts.env.ExecuteActivity(ts.worker.RecordStatusChangeActivity, ts.testUID, change)
	ts.NoError(err)
}

func TestDashboardActivityTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardActivityTestSuite))
}
