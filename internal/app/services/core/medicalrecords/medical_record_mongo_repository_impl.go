package medicalrecords

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

type MedicalRecordMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicalRecordMongoRepository(db *mongo.Client, dbName string) contracts.MedicalRecordRepository {
	return &MedicalRecordMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMedicalRecords),
	}
}

func (r *MedicalRecordMongoRepository) CreateMedicalRecord(ctx context.Context, recordModel *models.MedicalRecord) (string, error) {
	result, err := r.Collection.InsertOne(ctx, recordModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *MedicalRecordMongoRepository) FindByID(ctx context.Context, recordID string) (*models.MedicalRecord, error) {
	objectID, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var record models.MedicalRecord
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}

func (r *MedicalRecordMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.MedicalRecord, error) {
	filter := bson.M{"patientId": patientID}
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var records []models.MedicalRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, nil
}
