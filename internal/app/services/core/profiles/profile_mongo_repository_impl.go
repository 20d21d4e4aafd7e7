package profiles

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProfileMongoRepository struct {
	Collection *mongo.Collection
}

func NewProfileMongoRepository(db *mongo.Client, dbName string) contracts.ProfileRepository {
	return &ProfileMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProfiles),
	}
}

// CreateProfile inserts with the caller-provided id: a profile always shares
// its identifier with the user that owns it.
func (repo *ProfileMongoRepository) CreateProfile(ctx context.Context, profileModel *models.Profile) (string, error) {
	_, err := repo.Collection.InsertOne(ctx, profileModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return profileModel.ID, nil
}

func (r *ProfileMongoRepository) FindByID(ctx context.Context, profileID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.Collection.FindOne(ctx, bson.M{"_id": profileID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &profile, nil
}

func (r *ProfileMongoRepository) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	profile.UpdatedAt = time.Now()
	filter := bson.M{"_id": profile.ID}
	update := bson.M{"$set": bson.M{
		"fullName":  profile.FullName,
		"updatedAt": profile.UpdatedAt,
	}}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
