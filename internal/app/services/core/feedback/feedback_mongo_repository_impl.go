package feedback

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

type FeedbackMongoRepository struct {
	Collection *mongo.Collection
}

func NewFeedbackMongoRepository(db *mongo.Client, dbName string) contracts.FeedbackRepository {
	return &FeedbackMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionFeedback),
	}
}

func (r *FeedbackMongoRepository) CreateFeedback(ctx context.Context, feedbackModel *models.Feedback) (string, error) {
	result, err := r.Collection.InsertOne(ctx, feedbackModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *FeedbackMongoRepository) FindAll(ctx context.Context) ([]models.Feedback, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var feedbackModels []models.Feedback
	if err := cursor.All(ctx, &feedbackModels); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return feedbackModels, nil
}
