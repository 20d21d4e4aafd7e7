package practitioners

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PractitionerMongoRepository struct {
	Collection *mongo.Collection
}

func NewPractitionerMongoRepository(db *mongo.Client, dbName string) contracts.PractitionerRepository {
	return &PractitionerMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPractitioners),
	}
}

func (repo *PractitionerMongoRepository) CreatePractitioner(ctx context.Context, practitionerModel *models.Practitioner) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, practitionerModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PractitionerMongoRepository) FindAll(ctx context.Context) ([]models.Practitioner, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"deletedAt": nil})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var practitioners []models.Practitioner
	if err := cursor.All(ctx, &practitioners); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return practitioners, nil
}

func (r *PractitionerMongoRepository) FindByID(ctx context.Context, practitionerID string) (*models.Practitioner, error) {
	var practitioner models.Practitioner
	objectID, err := primitive.ObjectIDFromHex(practitionerID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&practitioner)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &practitioner, nil
}

func (r *PractitionerMongoRepository) FindByProfileID(ctx context.Context, profileID string) (*models.Practitioner, error) {
	var practitioner models.Practitioner
	err := r.Collection.FindOne(ctx, bson.M{"profileId": profileID}).Decode(&practitioner)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &practitioner, nil
}
