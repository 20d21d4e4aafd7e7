package reviews

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewMongoRepository struct {
	Collection *mongo.Collection
}

func NewReviewMongoRepository(db *mongo.Client, dbName string) contracts.ReviewRepository {
	return &ReviewMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionReviews),
	}
}

func (repo *ReviewMongoRepository) CreateReview(ctx context.Context, reviewModel *models.Review) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, reviewModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ReviewMongoRepository) FindByPractitionerID(ctx context.Context, practitionerID string) ([]models.Review, error) {
	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.Collection.Find(ctx, bson.M{"practitionerId": practitionerID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return reviews, nil
}
