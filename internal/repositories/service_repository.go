package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lawmanBack/internal/models"
)

var newestFirst = bson.D{{Key: "_id", Value: -1}}

type ServiceRepository struct {
	Collection *mongo.Collection
}

func (r *ServiceRepository) CreateService(ctx context.Context, service models.Service) (models.Service, error) {
	service.ID = primitive.NilObjectID
	res, err := r.Collection.InsertOne(ctx, service)
	if err != nil {
		return models.Service{}, writeError("insert service", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		service.ID = id
	}
	return service, nil
}

// GetService returns nil without error when no service has the id.
func (r *ServiceRepository) GetService(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	var service models.Service
	err := r.Collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&service)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find service: %w", err)
	}
	return &service, nil
}

func (r *ServiceRepository) ListServices(ctx context.Context, limit int64) ([]models.Service, error) {
	opts := options.Find().SetSort(newestFirst).SetLimit(limit)
	cursor, err := r.Collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find services: %w", err)
	}
	return decodeServices(ctx, cursor)
}

func (r *ServiceRepository) ListServicesByAuthor(ctx context.Context, authorID string) ([]models.Service, error) {
	cursor, err := r.Collection.Find(ctx, bson.D{{Key: "authorID", Value: authorID}})
	if err != nil {
		return nil, fmt.Errorf("find services by author: %w", err)
	}
	return decodeServices(ctx, cursor)
}

// DeleteService reports how many documents were removed.
func (r *ServiceRepository) DeleteService(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.Collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return 0, writeError("delete service", err)
	}
	return res.DeletedCount, nil
}

func decodeServices(ctx context.Context, cursor *mongo.Cursor) ([]models.Service, error) {
	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}
	return services, nil
}
