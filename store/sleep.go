package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/innercore-api/schema"
)

// SleepReport - nights logged in the sleep tracker
type SleepReport interface {
	AppendSleepRecord(record schema.SleepRecord) (*schema.SleepRecord, error)
	ListSleepRecords(uid string) ([]schema.SleepRecord, error)
}

func (m *mongoDB) AppendSleepRecord(record schema.SleepRecord) (*schema.SleepRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	record.ID = primitive.NewObjectID()
	if _, err := m.collection(schema.SleepRecordCollection).InsertOne(ctx, record); err != nil {
		return nil, err
	}

	return &record, nil
}

// ListSleepRecords returns the records of a user, newest night first
func (m *mongoDB) ListSleepRecords(uid string) ([]schema.SleepRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.SleepRecordCollection).Find(ctx, bson.M{"uid": uid},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}))
	if err != nil {
		return nil, err
	}

	records := make([]schema.SleepRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}
