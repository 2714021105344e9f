package notifications

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationMongoRepository struct {
	Collection *mongo.Collection
}

func NewNotificationMongoRepository(db *mongo.Client, dbName string) contracts.NotificationRepository {
	return &NotificationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionNotifications),
	}
}

func (r *NotificationMongoRepository) CreateNotification(ctx context.Context, notificationModel *models.Notification) (string, error) {
	result, err := r.Collection.InsertOne(ctx, notificationModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *NotificationMongoRepository) FindByID(ctx context.Context, notificationID string) (*models.Notification, error) {
	objectID, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var notification models.Notification
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&notification)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &notification, nil
}

func (r *NotificationMongoRepository) FindByUserID(ctx context.Context, userID string) ([]models.Notification, error) {
	filter := bson.M{"userId": userID}
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return notifications, nil
}

func (r *NotificationMongoRepository) UpdateNotification(ctx context.Context, notificationModel *models.Notification) error {
	objectID, err := primitive.ObjectIDFromHex(notificationModel.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"read":      notificationModel.Read,
		"updatedAt": notificationModel.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *NotificationMongoRepository) MarkAllReadByUserID(ctx context.Context, userID string) error {
	filter := bson.M{"userId": userID, "read": false}
	update := bson.M{"$set": bson.M{
		"read":      true,
		"updatedAt": time.Now(),
	}}
	_, err := r.Collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
