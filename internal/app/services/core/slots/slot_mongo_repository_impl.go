package slots

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

type SlotMongoRepository struct {
	Collection *mongo.Collection
}

func NewSlotMongoRepository(db *mongo.Client, dbName string) contracts.SlotRepository {
	return &SlotMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTimeSlots),
	}
}

func (r *SlotMongoRepository) FindByDoctorIDAndDate(ctx context.Context, doctorID, date string) ([]models.TimeSlot, error) {
	filter := bson.M{"doctorId": doctorID, "slotDate": date}
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.M{"startTime": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var slots []models.TimeSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return slots, nil
}

func (r *SlotMongoRepository) FindByID(ctx context.Context, slotID string) (*models.TimeSlot, error) {
	objectID, err := primitive.ObjectIDFromHex(slotID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var slot models.TimeSlot
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &slot, nil
}

func (r *SlotMongoRepository) FindByDoctorDateAndStartTime(ctx context.Context, doctorID, date, startTime string) (*models.TimeSlot, error) {
	var slot models.TimeSlot
	filter := bson.M{"doctorId": doctorID, "slotDate": date, "startTime": startTime}
	err := r.Collection.FindOne(ctx, filter).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &slot, nil
}

func (r *SlotMongoRepository) CreateSlots(ctx context.Context, slotModels []models.TimeSlot) error {
	documents := make([]interface{}, 0, len(slotModels))
	for _, slotModel := range slotModels {
		documents = append(documents, slotModel)
	}
	_, err := r.Collection.InsertMany(ctx, documents)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

// MarkBooked uses a conditional update so two concurrent bookings of the
// same slot cannot both succeed.
func (r *SlotMongoRepository) MarkBooked(ctx context.Context, slotID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(slotID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "isBooked": false}
	update := bson.M{"$set": bson.M{"isBooked": true}}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount == 1, nil
}

func (r *SlotMongoRepository) MarkFree(ctx context.Context, slotID string) error {
	objectID, err := primitive.ObjectIDFromHex(slotID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{"isBooked": false}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
