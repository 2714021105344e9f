package healthtips

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HealthTipMongoRepository struct {
	Collection *mongo.Collection
}

func NewHealthTipMongoRepository(db *mongo.Client, dbName string) contracts.HealthTipRepository {
	return &HealthTipMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionHealthTips),
	}
}

func (r *HealthTipMongoRepository) FindAll(ctx context.Context, category string) ([]models.HealthTip, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var tips []models.HealthTip
	if err := cursor.All(ctx, &tips); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return tips, nil
}

func (r *HealthTipMongoRepository) CreateHealthTip(ctx context.Context, tipModel *models.HealthTip) (string, error) {
	result, err := r.Collection.InsertOne(ctx, tipModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}
