package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/innercore-api/schema"
)

// DashboardOperator - the snapshot and the status history kept by the
// dashboard worker
type DashboardOperator interface {
	GetDashboard(uid string) (*schema.Dashboard, error)
	SaveDashboard(dashboard schema.Dashboard) error
	AppendStatusChange(change schema.StatusChange) error
	ListStatusChanges(uid string, limit int64) ([]schema.StatusChange, error)
}

func (m *mongoDB) GetDashboard(uid string) (*schema.Dashboard, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var d schema.Dashboard
	if err := m.collection(schema.DashboardCollection).FindOne(ctx, bson.M{"_id": uid}).Decode(&d); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrDashboardNotFound
		}
		return nil, err
	}

	return &d, nil
}

func (m *mongoDB) SaveDashboard(dashboard schema.Dashboard) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	dashboard.UpdatedAt = now()
	_, err := m.collection(schema.DashboardCollection).ReplaceOne(ctx, bson.M{"_id": dashboard.ID}, dashboard,
		options.Replace().SetUpsert(true))
	return err
}

func (m *mongoDB) AppendStatusChange(change schema.StatusChange) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if change.Timestamp == 0 {
		change.Timestamp = now().Unix()
	}
	_, err := m.collection(schema.StatusChangeCollection).InsertOne(ctx, change)
	return err
}

// ListStatusChanges returns the latest changes first. A non-positive limit
// returns all of them.
func (m *mongoDB) ListStatusChanges(uid string, limit int64) ([]schema.StatusChange, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "ts", Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := m.collection(schema.StatusChangeCollection).Find(ctx, bson.M{"uid": uid}, opts)
	if err != nil {
		return nil, err
	}

	changes := make([]schema.StatusChange, 0)
	if err := cursor.All(ctx, &changes); err != nil {
		return nil, err
	}

	return changes, nil
}
