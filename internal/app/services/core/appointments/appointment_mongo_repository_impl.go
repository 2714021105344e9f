package appointments

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

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, appointmentModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var appointment models.Appointment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindUpcomingByPatientID(ctx context.Context, patientID, fromDate string) ([]models.Appointment, error) {
	filter := bson.M{
		"patientId":       patientID,
		"status":          constvars.AppointmentStatusScheduled,
		"appointmentDate": bson.M{"$gte": fromDate},
	}
	return r.findSorted(ctx, filter, 1)
}

func (r *AppointmentMongoRepository) FindHistoryByPatientID(ctx context.Context, patientID, untilDate string) ([]models.Appointment, error) {
	filter := bson.M{
		"patientId": patientID,
		"$or": []bson.M{
			{"appointmentDate": bson.M{"$lt": untilDate}},
			{"status": bson.M{"$ne": constvars.AppointmentStatusScheduled}},
		},
	}
	return r.findSorted(ctx, filter, -1)
}

func (r *AppointmentMongoRepository) FindUpcomingByDoctorID(ctx context.Context, doctorID, fromDate string) ([]models.Appointment, error) {
	filter := bson.M{
		"doctorId":        doctorID,
		"status":          constvars.AppointmentStatusScheduled,
		"appointmentDate": bson.M{"$gte": fromDate},
	}
	return r.findSorted(ctx, filter, 1)
}

func (r *AppointmentMongoRepository) UpdateAppointment(ctx context.Context, appointmentModel *models.Appointment) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentModel.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"status":    appointmentModel.Status,
		"notes":     appointmentModel.Notes,
		"updatedAt": appointmentModel.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) findSorted(ctx context.Context, filter bson.M, order int) ([]models.Appointment, error) {
	sort := bson.D{{Key: "appointmentDate", Value: order}, {Key: "appointmentTime", Value: order}}
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}
