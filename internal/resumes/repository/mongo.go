package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/google/uuid"

	"github.com/resumecraft/go-services/internal/resumes"
)

// MongoRepo implements a MongoDB-backed repository for saved resumes.
// IDs are uuid strings under an "id" field rather than ObjectIDs so they
// round-trip through URLs unchanged.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	// indexes: unique id lookups, per-user dashboard listings
	col.Indexes().CreateOne(context.Background(),
		mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)})
	col.Indexes().CreateOne(context.Background(),
		mongo.IndexModel{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "updatedAt", Value: -1}}})
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Create(s *resumes.Saved) (string, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now
	if _, err := m.col.InsertOne(context.Background(), s); err != nil {
		return "", err
	}
	return s.ID, nil
}

func (m *MongoRepo) Get(id string) (*resumes.Saved, error) {
	var s resumes.Saved
	err := m.col.FindOne(context.Background(), bson.M{"id": id}).Decode(&s)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (m *MongoRepo) ListByUser(userID string) ([]*resumes.Saved, error) {
	filter := bson.M{}
	if userID != "" {
		filter["userId"] = userID
	}
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cur, err := m.col.Find(context.Background(), filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(context.Background())
	out := []*resumes.Saved{}
	for cur.Next(context.Background()) {
		var s resumes.Saved
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, nil
}

func (m *MongoRepo) Update(id string, s *resumes.Saved) error {
	set := bson.M{
		"title":     s.Title,
		"template":  s.Template,
		"document":  s.Document,
		"updatedAt": time.Now().UTC(),
	}
	res, err := m.col.UpdateOne(context.Background(), bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepo) Delete(id string) error {
	res, err := m.col.DeleteOne(context.Background(), bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
