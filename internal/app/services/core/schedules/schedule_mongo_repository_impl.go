package schedules

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

type ScheduleMongoRepository struct {
	Collection *mongo.Collection
}

func NewScheduleMongoRepository(db *mongo.Client, dbName string) contracts.ScheduleRepository {
	return &ScheduleMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSchedules),
	}
}

func (r *ScheduleMongoRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.DoctorSchedule, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"doctorId": doctorID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var schedules []models.DoctorSchedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return schedules, nil
}

func (r *ScheduleMongoRepository) FindByDoctorIDAndDay(ctx context.Context, doctorID string, day time.Weekday) (*models.DoctorSchedule, error) {
	var schedule models.DoctorSchedule
	err := r.Collection.FindOne(ctx, bson.M{"doctorId": doctorID, "dayOfWeek": day}).Decode(&schedule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &schedule, nil
}

func (r *ScheduleMongoRepository) CreateSchedule(ctx context.Context, scheduleModel *models.DoctorSchedule) (string, error) {
	result, err := r.Collection.InsertOne(ctx, scheduleModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ScheduleMongoRepository) UpdateSchedule(ctx context.Context, scheduleModel *models.DoctorSchedule) error {
	objectID, err := primitive.ObjectIDFromHex(scheduleModel.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"startTime":           scheduleModel.StartTime,
		"endTime":             scheduleModel.EndTime,
		"slotDurationMinutes": scheduleModel.SlotDurationMinutes,
		"available":           scheduleModel.Available,
		"updatedAt":           scheduleModel.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
