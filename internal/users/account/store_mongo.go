// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taibuivan/artcine/internal/platform/apperr"
	"github.com/taibuivan/artcine/internal/platform/constants"
	"github.com/taibuivan/artcine/internal/platform/dberr"
	"github.com/taibuivan/artcine/internal/users/identity"
)

// userDocument is the BSON shape of the users collection. Favorites are
// stored as ObjectID references to the movies collection.
type userDocument struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty"`
	Username       string               `bson:"username"`
	Password       string               `bson:"password"`
	Email          string               `bson:"email"`
	Birthday       *time.Time           `bson:"birthday,omitempty"`
	FavoriteMovies []primitive.ObjectID `bson:"favoriteMovies"`
	CreatedAt      time.Time            `bson:"createdAt"`
	UpdatedAt      time.Time            `bson:"updatedAt"`
}

func (document *userDocument) toIdentity() *identity.Identity {
	favorites := make([]string, 0, len(document.FavoriteMovies))
	for _, movieID := range document.FavoriteMovies {
		favorites = append(favorites, movieID.Hex())
	}

	return &identity.Identity{
		ID:             document.ID.Hex(),
		Username:       document.Username,
		PasswordHash:   document.Password,
		Email:          document.Email,
		Birthday:       document.Birthday,
		FavoriteMovies: favorites,
		CreatedAt:      document.CreatedAt,
		UpdatedAt:      document.UpdatedAt,
	}
}

// MongoStore implements [Store] on the users collection.
type MongoStore struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewMongoStore creates an identity store on database.
func NewMongoStore(database *mongo.Database) *MongoStore {
	return &MongoStore{
		collection: database.Collection(constants.CollectionUsers),
		now:        func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

var returnAfter = options.FindOneAndUpdate().SetReturnDocument(options.After)

func (store *MongoStore) List(ctx context.Context) ([]*identity.Identity, error) {
	cursor, err := store.collection.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "username", Value: 1}}))
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}

	var documents []userDocument
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, dberr.Wrap(err, "User")
	}

	users := make([]*identity.Identity, 0, len(documents))
	for i := range documents {
		users = append(users, documents[i].toIdentity())
	}
	return users, nil
}

func (store *MongoStore) FindByUsername(ctx context.Context, username string) (*identity.Identity, error) {
	var document userDocument
	if err := store.collection.FindOne(ctx, bson.M{"username": username}).Decode(&document); err != nil {
		return nil, dberr.Wrap(err, "User")
	}
	return document.toIdentity(), nil
}

func (store *MongoStore) Create(ctx context.Context, user *identity.Identity) error {
	now := store.now()
	document := userDocument{
		Username:       user.Username,
		Password:       user.PasswordHash,
		Email:          user.Email,
		Birthday:       user.Birthday,
		FavoriteMovies: []primitive.ObjectID{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	result, err := store.collection.InsertOne(ctx, document)
	if err != nil {
		return dberr.Wrap(err, "User")
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return apperr.Internal(errors.New("account: unexpected inserted id type"))
	}

	user.ID = insertedID.Hex()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.FavoriteMovies == nil {
		user.FavoriteMovies = []string{}
	}
	return nil
}

func (store *MongoStore) Update(ctx context.Context, username string, changes Changes) (*identity.Identity, error) {
	set := bson.M{"updatedAt": store.now()}
	if changes.Username != nil {
		set["username"] = *changes.Username
	}
	if changes.PasswordHash != nil {
		set["password"] = *changes.PasswordHash
	}
	if changes.Email != nil {
		set["email"] = *changes.Email
	}
	if changes.Birthday != nil {
		set["birthday"] = *changes.Birthday
	}

	return store.findOneAndUpdate(ctx, username, bson.M{"$set": set})
}

func (store *MongoStore) Delete(ctx context.Context, username string) error {
	result, err := store.collection.DeleteOne(ctx, bson.M{"username": username})
	if err != nil {
		return dberr.Wrap(err, "User")
	}
	if result.DeletedCount == 0 {
		return apperr.NotFound("User")
	}
	return nil
}

func (store *MongoStore) AddFavorite(ctx context.Context, username, movieID string) (*identity.Identity, error) {
	objectID, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, apperr.NotFound("Movie")
	}

	return store.findOneAndUpdate(ctx, username, bson.M{
		"$addToSet": bson.M{"favoriteMovies": objectID},
		"$set":      bson.M{"updatedAt": store.now()},
	})
}

func (store *MongoStore) RemoveFavorite(ctx context.Context, username, movieID string) (*identity.Identity, error) {
	objectID, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		// Such an ID can never have been added.
		return store.FindByUsername(ctx, username)
	}

	return store.findOneAndUpdate(ctx, username, bson.M{
		"$pull": bson.M{"favoriteMovies": objectID},
		"$set":  bson.M{"updatedAt": store.now()},
	})
}

func (store *MongoStore) findOneAndUpdate(ctx context.Context, username string, update bson.M) (*identity.Identity, error) {
	var document userDocument
	err := store.collection.FindOneAndUpdate(ctx, bson.M{"username": username}, update, returnAfter).Decode(&document)
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}
	return document.toIdentity(), nil
}
