package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bitmark-inc/innercore-api/schema"
)

// AssessmentReport - the one-time baseline of a user
type AssessmentReport interface {
	HasAssessment(uid string) (bool, error)
	GetAssessment(uid string) (*schema.Assessment, error)
	CreateAssessment(assessment schema.Assessment) error
}

func (m *mongoDB) HasAssessment(uid string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	count, err := m.collection(schema.AssessmentCollection).CountDocuments(ctx, bson.M{"_id": uid})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m *mongoDB) GetAssessment(uid string) (*schema.Assessment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var a schema.Assessment
	if err := m.collection(schema.AssessmentCollection).FindOne(ctx, bson.M{"_id": uid}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrAssessmentNotFound
		}
		return nil, err
	}

	return &a, nil
}

// CreateAssessment inserts the assessment keyed by its owner. A second
// insert for the same owner returns ErrAssessmentExists.
func (m *mongoDB) CreateAssessment(assessment schema.Assessment) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if assessment.CreatedAt.IsZero() {
		assessment.CreatedAt = now()
	}

	if _, err := m.collection(schema.AssessmentCollection).InsertOne(ctx, assessment); err != nil {
		if isDuplicateKey(err) {
			log.WithField("prefix", mongoLogPrefix).Infof("assessment of %s already exists", assessment.ID)
			return ErrAssessmentExists
		}
		return err
	}

	return nil
}
