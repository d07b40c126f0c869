// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taibuivan/artcine/internal/platform/constants"
	"github.com/taibuivan/artcine/internal/platform/dberr"
)

// movieDocument is the BSON shape of the movies collection.
type movieDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Genre       Genre              `bson:"genre"`
	Director    Director           `bson:"director"`
	ImagePath   string             `bson:"imagePath"`
	Featured    bool               `bson:"featured"`
}

func (document *movieDocument) toMovie() *Movie {
	return &Movie{
		ID:          document.ID.Hex(),
		Title:       document.Title,
		Description: document.Description,
		Genre:       document.Genre,
		Director:    document.Director,
		ImagePath:   document.ImagePath,
		Featured:    document.Featured,
	}
}

// MongoStore implements [Store] on the movies collection.
type MongoStore struct {
	collection *mongo.Collection
}

// NewMongoStore creates a movie store on database.
func NewMongoStore(database *mongo.Database) *MongoStore {
	return &MongoStore{collection: database.Collection(constants.CollectionMovies)}
}

func (store *MongoStore) List(ctx context.Context) ([]*Movie, error) {
	cursor, err := store.collection.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, dberr.Wrap(err, "Movie")
	}

	var documents []movieDocument
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, dberr.Wrap(err, "Movie")
	}

	movies := make([]*Movie, 0, len(documents))
	for i := range documents {
		movies = append(movies, documents[i].toMovie())
	}
	return movies, nil
}

func (store *MongoStore) FindByTitle(ctx context.Context, title string) (*Movie, error) {
	var document movieDocument
	if err := store.collection.FindOne(ctx, bson.M{"title": title}).Decode(&document); err != nil {
		return nil, dberr.Wrap(err, "Movie")
	}
	return document.toMovie(), nil
}

func (store *MongoStore) FindGenre(ctx context.Context, name string) (*Genre, error) {
	var document movieDocument
	projection := options.FindOne().SetProjection(bson.M{"genre": 1})

	if err := store.collection.FindOne(ctx, bson.M{"genre.name": name}, projection).Decode(&document); err != nil {
		return nil, dberr.Wrap(err, "Genre")
	}
	return &document.Genre, nil
}

func (store *MongoStore) FindDirector(ctx context.Context, name string) (*Director, error) {
	var document movieDocument
	projection := options.FindOne().SetProjection(bson.M{"director": 1})

	if err := store.collection.FindOne(ctx, bson.M{"director.name": name}, projection).Decode(&document); err != nil {
		return nil, dberr.Wrap(err, "Director")
	}
	return &document.Director, nil
}

func (store *MongoStore) Exists(ctx context.Context, id string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	count, err := store.collection.CountDocuments(ctx, bson.M{"_id": objectID}, options.Count().SetLimit(1))
	if err != nil {
		return false, dberr.Wrap(err, "Movie")
	}
	return count > 0, nil
}
