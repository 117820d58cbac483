package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	backgroundMocks "github.com/bitmark-inc/innercore-api/background/mocks"
	cadenceMocks "github.com/bitmark-inc/innercore-api/external/cadence/mocks"
	"github.com/bitmark-inc/innercore-api/identity"
	identityMocks "github.com/bitmark-inc/innercore-api/identity/mocks"
	"github.com/bitmark-inc/innercore-api/journey"
	storeMocks "github.com/bitmark-inc/innercore-api/store/mocks"
	"github.com/bitmark-inc/innercore-api/utils"
)

const (
	testUID     = "0b5e3a44-5d0b-4a0c-9a8e-5c1e2f0c7d11"
	testSession = "7f1d5c2e-8a4b-4f3e-9d6c-2b1a0e9f8c7d"
	testToken   = "header.payload.signature"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	viper.Set("i18n.dir", "../i18n")
	utils.InitI18NBundle()
	os.Exit(m.Run())
}

type testServer struct {
	*Server
	ctl      *gomock.Controller
	mongo    *storeMocks.MockMongoStore
	store    *storeMocks.MockInnerCore
	identity *identityMocks.MockProvider
	cadence  *cadenceMocks.MockWorkflowClient
	enqueuer *backgroundMocks.MockEnqueuer
	router   *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	ctl := gomock.NewController(t)

	ts := &testServer{
		ctl:      ctl,
		mongo:    storeMocks.NewMockMongoStore(ctl),
		store:    storeMocks.NewMockInnerCore(ctl),
		identity: identityMocks.NewMockProvider(ctl),
		cadence:  cadenceMocks.NewMockWorkflowClient(ctl),
		enqueuer: backgroundMocks.NewMockEnqueuer(ctl),
	}

	ts.Server = &Server{
		store:              ts.store,
		mongoStore:         ts.mongo,
		identity:           ts.identity,
		cadenceClient:      ts.cadence,
		backgroundEnqueuer: ts.enqueuer,
	}
	ts.router = ts.setupRouter()

	return ts
}

// finish waits for the pending dashboard triggers before checking the mocks
func (ts *testServer) finish() {
	ts.jobs.Wait()
	ts.ctl.Finish()
}

// signedIn expects the token of the test user and the documents that
// decide its journey state
func (ts *testServer) signedIn(state journey.State) {
	ts.identity.EXPECT().CurrentUser(testToken).
		Return(&identity.Identity{UID: testUID, SessionID: testSession}, nil)

	switch state {
	case journey.ProfileIncomplete:
		ts.mongo.EXPECT().HasProfile(testUID).Return(false, nil)
	case journey.AssessmentPending:
		ts.mongo.EXPECT().HasProfile(testUID).Return(true, nil)
		ts.mongo.EXPECT().HasAssessment(testUID).Return(false, nil)
	case journey.Ready:
		ts.mongo.EXPECT().HasProfile(testUID).Return(true, nil)
		ts.mongo.EXPECT().HasAssessment(testUID).Return(true, nil)
	}
}

// expectDashboardRefresh expects a signal to the dashboard workflow of the test user
func (ts *testServer) expectDashboardRefresh(err error) {
	ts.cadence.EXPECT().SignalWithStartWorkflow(gomock.Any(),
		utils.DashboardWorkflowID(testUID), utils.DashboardRefreshSignal, nil,
		gomock.Any(), utils.DashboardRefreshWorkflowName, testUID).
		Return(nil, err).Times(1)
}

func (ts *testServer) request(method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func (ts *testServer) authorized(method, path string, body interface{}) *httptest.ResponseRecorder {
	return ts.request(method, path, body, map[string]string{
		"Authorization": "Bearer " + testToken,
	})
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "wrong json response")
	return resp
}

func TestInformation(t *testing.T) {
	ts := newTestServer(t)
	defer ts.finish()

	w := ts.request("GET", "/api/information", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	info := decode(t, w)["information"].(map[string]interface{})
	questionnaires := info["questionnaires"].(map[string]interface{})
	assert.Equal(t, float64(15), questionnaires["assessment"])
	assert.Equal(t, float64(10), questionnaires["weekly_review"])
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	defer ts.finish()

	ts.mongo.EXPECT().Ping().Return(nil)
	ts.store.EXPECT().Ping().Return(nil)

	w := ts.request("GET", "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", decode(t, w)["status"])
}

func TestHealthzDatabaseDown(t *testing.T) {
	ts := newTestServer(t)
	defer ts.finish()

	ts.mongo.EXPECT().Ping().Return(nil)
	ts.store.EXPECT().Ping().Return(errors.New("connection refused"))

	w := ts.request("GET", "/healthz", nil, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, float64(999), decode(t, w)["code"])
}

func TestErrorMessageLocalized(t *testing.T) {
	ts := newTestServer(t)
	defer ts.finish()

	w := ts.request("GET", "/api/journey", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid authorization format.", decode(t, w)["message"])

	w = ts.request("GET", "/api/journey", nil, map[string]string{"Accept-Language": "id"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEqual(t, "Invalid authorization format.", decode(t, w)["message"])
}
