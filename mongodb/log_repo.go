package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// LogRepository records server errors in a mongo collection for later
// inspection.
type LogRepository struct {
	collection *mongo.Collection
}

func NewLogRepository(c *mongo.Collection) *LogRepository {
	return &LogRepository{collection: c}
}

func (m *LogRepository) LogError(message string) error {
	_, err := m.collection.InsertOne(context.TODO(), bson.M{
		"error": message,
		"date":  time.Now().UTC(),
	})
	return err
}
