package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/innercore-api/schema"
)

// Profiler - read and write the users collection
type Profiler interface {
	HasProfile(uid string) (bool, error)
	GetProfile(uid string) (*schema.Profile, error)
	SetProfile(uid string, profile schema.Profile) error
}

func (m *mongoDB) HasProfile(uid string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	count, err := m.collection(schema.ProfileCollection).CountDocuments(ctx, bson.M{"_id": uid})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetProfile returns the profile of a user with the legacy keys folded in
func (m *mongoDB) GetProfile(uid string) (*schema.Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var p schema.Profile
	if err := m.collection(schema.ProfileCollection).FindOne(ctx, bson.M{"_id": uid}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	p.Normalize()

	return &p, nil
}

// SetProfile overwrites the profile of a user. Legacy keys are dropped.
func (m *mongoDB) SetProfile(uid string, profile schema.Profile) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	profile.ID = uid
	profile.UpdatedAt = now()
	profile.LegacyName, profile.LegacyAge, profile.LegacyJob = "", "", ""

	if _, err := m.collection(schema.ProfileCollection).ReplaceOne(ctx, bson.M{"_id": uid}, profile,
		options.Replace().SetUpsert(true)); err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Errorf("fail to save profile of %s", uid)
		return err
	}

	return nil
}
