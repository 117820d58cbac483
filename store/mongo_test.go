package store

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/innercore-api/schema"
	"github.com/bitmark-inc/innercore-api/score"
)

type MongoTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	store        MongoStore
}

func NewMongoTestSuite(connURI, dbName string) *MongoTestSuite {
	return &MongoTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *MongoTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)
	s.store = NewMongoStore(s.mongoClient, s.testDBName)
}

// SetupTest makes sure every test runs with a clean environment
func (s *MongoTestSuite) SetupTest() {
	if err := s.testDatabase.Drop(context.Background()); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

// LoadMongoDBFixtures will preload fixtures into test mongodb
func (s *MongoTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()

	_, err := s.testDatabase.Collection(schema.ProfileCollection).InsertOne(ctx, bson.M{
		"_id":       "legacy-user",
		"nama":      "Sari",
		"umur":      "20",
		"pekerjaan": "Mahasiswa",
		"gender":    "Perempuan",
	})
	return err
}

func (s *MongoTestSuite) TearDownSuite() {
	_ = s.testDatabase.Drop(context.Background())
	s.store.Close()
}

func (s *MongoTestSuite) TestPing() {
	s.NoError(s.store.Ping())
}

func (s *MongoTestSuite) TestGetProfileLegacyKeys() {
	p, err := s.store.GetProfile("legacy-user")
	s.NoError(err)
	s.Equal("Sari", p.Name)
	s.Equal("20", p.Age)
	s.Equal("Mahasiswa", p.Job)
	s.Equal("Perempuan", p.Gender)
}

func (s *MongoTestSuite) TestSetProfileOverwrites() {
	s.NoError(s.store.SetProfile("user-a", schema.Profile{Name: "Budi", Age: "22"}))
	s.NoError(s.store.SetProfile("user-a", schema.Profile{Name: "Budi Santoso", Job: "Guru"}))

	p, err := s.store.GetProfile("user-a")
	s.NoError(err)
	s.Equal("Budi Santoso", p.Name)
	s.Equal("", p.Age)
	s.Equal("Guru", p.Job)

	ok, err := s.store.HasProfile("user-a")
	s.NoError(err)
	s.True(ok)
}

func (s *MongoTestSuite) TestGetProfileNotFound() {
	_, err := s.store.GetProfile("nobody")
	s.Equal(ErrProfileNotFound, err)

	ok, err := s.store.HasProfile("nobody")
	s.NoError(err)
	s.False(ok)
}

func (s *MongoTestSuite) TestCreateAssessmentOnce() {
	a := schema.NewAssessment("user-a", score.Calculate([]int{4, 4, 0, 0}), now())
	s.NoError(s.store.CreateAssessment(a))

	second := schema.NewAssessment("user-a", score.Calculate([]int{0, 0, 0, 0}), now())
	s.Equal(ErrAssessmentExists, s.store.CreateAssessment(second))

	stored, err := s.store.GetAssessment("user-a")
	s.NoError(err)
	s.Equal(50, stored.Percent)
	s.Equal(score.Fair, stored.Status)
}

func (s *MongoTestSuite) TestCreateAssessmentConcurrently() {
	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for _, percent := range []int{0, 4} {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			errs <- s.store.CreateAssessment(schema.NewAssessment("user-b", score.Calculate([]int{v}), now()))
		}(percent)
	}
	wg.Wait()
	close(errs)

	succeeded, rejected := 0, 0
	for err := range errs {
		switch err {
		case nil:
			succeeded++
		case ErrAssessmentExists:
			rejected++
		default:
			s.Fail("unexpected error", err.Error())
		}
	}
	s.Equal(1, succeeded)
	s.Equal(1, rejected)

	count, err := s.testDatabase.Collection(schema.AssessmentCollection).CountDocuments(context.Background(), bson.M{"_id": "user-b"})
	s.NoError(err)
	s.Equal(int64(1), count)
}

func (s *MongoTestSuite) TestGetAssessmentNotFound() {
	_, err := s.store.GetAssessment("nobody")
	s.Equal(ErrAssessmentNotFound, err)

	ok, err := s.store.HasAssessment("nobody")
	s.NoError(err)
	s.False(ok)
}

func (s *MongoTestSuite) TestWeeklyReviewsInWriteOrder() {
	for _, p := range []int{30, 10, 80} {
		r, err := s.store.AppendWeeklyReview(schema.WeeklyReview{UID: "user-a", Percent: p})
		s.NoError(err)
		s.False(r.Date.IsZero())
	}
	_, err := s.store.AppendWeeklyReview(schema.WeeklyReview{UID: "user-c", Percent: 99})
	s.NoError(err)

	reviews, err := s.store.ListWeeklyReviews("user-a")
	s.NoError(err)
	s.Len(reviews, 3)
	s.Equal(30, reviews[0].Percent)
	s.Equal(10, reviews[1].Percent)
	s.Equal(80, reviews[2].Percent)
	s.Equal([]int{}, reviews[0].Answers)
}

func (s *MongoTestSuite) TestSleepRecordsNewestFirst() {
	base := now()
	for i := 0; i < 3; i++ {
		_, err := s.store.AppendSleepRecord(schema.SleepRecord{
			UID:       "user-a",
			Duration:  float64(6 + i),
			CreatedAt: base.AddDate(0, 0, i),
		})
		s.NoError(err)
	}

	records, err := s.store.ListSleepRecords("user-a")
	s.NoError(err)
	s.Len(records, 3)
	s.Equal(float64(8), records[0].Duration)
	s.Equal(float64(6), records[2].Duration)
}

func (s *MongoTestSuite) TestDashboardSnapshot() {
	_, err := s.store.GetDashboard("user-a")
	s.Equal(ErrDashboardNotFound, err)

	s.NoError(s.store.SaveDashboard(schema.Dashboard{ID: "user-a", AdjustedPercent: 40, Status: score.Fair}))
	s.NoError(s.store.SaveDashboard(schema.Dashboard{ID: "user-a", AdjustedPercent: 80, Status: score.Bad}))

	d, err := s.store.GetDashboard("user-a")
	s.NoError(err)
	s.Equal(80, d.AdjustedPercent)
	s.Equal(score.Bad, d.Status)
}

func (s *MongoTestSuite) TestStatusChanges() {
	s.NoError(s.store.AppendStatusChange(schema.StatusChange{UID: "user-a", From: score.Healthy, To: score.Fair, Timestamp: 100}))
	s.NoError(s.store.AppendStatusChange(schema.StatusChange{UID: "user-a", From: score.Fair, To: score.Poor, Timestamp: 200}))

	changes, err := s.store.ListStatusChanges("user-a", 1)
	s.NoError(err)
	s.Len(changes, 1)
	s.Equal(score.Poor, changes[0].To)

	changes, err = s.store.ListStatusChanges("user-a", 0)
	s.NoError(err)
	s.Len(changes, 2)
}

func TestMongoTestSuite(t *testing.T) {
	connURI := os.Getenv("INNERCORE_TEST_MONGO")
	if connURI == "" {
		t.Skip("INNERCORE_TEST_MONGO is not set")
	}
	suite.Run(t, NewMongoTestSuite(connURI, "innercore-test"))
}
