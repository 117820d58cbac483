package dashboard

import (
	"os"
	"testing"

	"github.com/bitmark-inc/innercore-api/store/mocks"
)

var testWorker *DashboardWorker
var mongoMock *mocks.MockMongoStore

func TestMain(m *testing.M) {
	testWorker = NewDashboardWorker("test", mongoMock)
	testWorker.Register()
	os.Exit(m.Run())
}
