package store

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second

	DuplicateKeyCode = 11000
)

var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrAssessmentExists   = errors.New("assessment already submitted")
	ErrDashboardNotFound  = errors.New("dashboard not found")
)

// MongoStore - interface for mongodb operations
type MongoStore interface {
	Profiler
	AssessmentReport
	WeeklyReport
	SleepReport
	DashboardOperator
	Closer
	Pinger
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// Ping - ping mongo db
func (m mongoDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return m.client.Ping(ctx, nil)
}

// Close - close mongo db connections
func (m mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// NewMongoStore - return mongo db operations
func NewMongoStore(client *mongo.Client, database string) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

func (m *mongoDB) collection(name string) *mongo.Collection {
	return m.client.Database(m.database).Collection(name)
}

func isDuplicateKey(err error) bool {
	if we, ok := err.(mongo.WriteException); ok {
		return 1 == len(we.WriteErrors) && DuplicateKeyCode == we.WriteErrors[0].Code
	}
	return false
}

// mongo keeps milliseconds only
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
