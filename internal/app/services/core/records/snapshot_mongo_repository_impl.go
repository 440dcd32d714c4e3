package records

import (
	"context"

	"policlinico-service/internal/app/models"
	"policlinico-service/internal/pkg/constvars"
	"policlinico-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// mongoSnapshotRepository keeps the snapshot as a single upserted document,
// same unit of persistence as the redis backend.
type mongoSnapshotRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

type snapshotDocument struct {
	ID       string          `bson:"_id"`
	Database models.Database `bson:"datos"`
}

func NewMongoSnapshotRepository(client *mongo.Client, dbName string, logger *zap.Logger) SnapshotRepository {
	return &mongoSnapshotRepository{
		collection: client.Database(dbName).Collection(constvars.MongoCollectionSnapshots),
		logger:     logger,
	}
}

func (r *mongoSnapshotRepository) Load(ctx context.Context) (*models.Database, error) {
	doc := &snapshotDocument{}
	err := r.collection.FindOne(ctx, bson.M{"_id": constvars.MongoSnapshotDocumentID}).Decode(doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doc.Database, nil
}

func (r *mongoSnapshotRepository) Save(ctx context.Context, db *models.Database) error {
	doc := snapshotDocument{
		ID:       constvars.MongoSnapshotDocumentID,
		Database: *db,
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": constvars.MongoSnapshotDocumentID}, doc, opts)
	if err != nil {
		return exceptions.ErrMongoDBUpsertDocument(err)
	}
	return nil
}
