package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexWeeklyReviewCollection())
	panicIfError(m.IndexSleepRecordCollection())
	panicIfError(m.IndexStatusChangeCollection())
}

// users, assessments and dashboards are keyed by the uid in _id

func (m *MongoDBIndexer) IndexWeeklyReviewCollection() error {
	return m.createIndex(WeeklyReviewCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "uid", Value: 1},
			{Key: "date", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexSleepRecordCollection() error {
	return m.createIndex(SleepRecordCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "uid", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
}

func (m *MongoDBIndexer) IndexStatusChangeCollection() error {
	return m.createIndex(StatusChangeCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "uid", Value: 1},
			{Key: "ts", Value: 1},
		},
	})
}
