package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/innercore-api/schema"
)

// WeeklyReport - weekly reviews, appended on every submission
type WeeklyReport interface {
	AppendWeeklyReview(review schema.WeeklyReview) (*schema.WeeklyReview, error)
	ListWeeklyReviews(uid string) ([]schema.WeeklyReview, error)
}

// AppendWeeklyReview stores a review stamped with the write time
func (m *mongoDB) AppendWeeklyReview(review schema.WeeklyReview) (*schema.WeeklyReview, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	review.ID = primitive.NewObjectID()
	review.Date = now()
	if review.Answers == nil {
		review.Answers = []int{}
	}

	if _, err := m.collection(schema.WeeklyReviewCollection).InsertOne(ctx, review); err != nil {
		return nil, err
	}

	return &review, nil
}

// ListWeeklyReviews returns the reviews of a user, oldest first. Reviews
// written in the same millisecond keep their insertion order.
func (m *mongoDB) ListWeeklyReviews(uid string) ([]schema.WeeklyReview, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.WeeklyReviewCollection).Find(ctx, bson.M{"uid": uid},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}

	reviews := make([]schema.WeeklyReview, 0)
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}

	return reviews, nil
}
