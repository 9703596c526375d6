// Package database owns the single MongoDB connection the server uses for
// its lifetime.
package database

import (
	"context"
	"fmt"
	"net/url"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"lawmanBack/internal/config"
)

const (
	ServicesCollection = "services"
	ReviewsCollection  = "reviews"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// BuildURI returns the configured URI, or assembles one from the host and
// credentials. Credentials are escaped.
func BuildURI(cfg config.DatabaseConfig) string {
	if cfg.URI != "" {
		return cfg.URI
	}
	u := url.URL{
		Scheme:   cfg.Scheme,
		Host:     cfg.Host,
		Path:     "/",
		RawQuery: cfg.Options,
	}
	if cfg.User != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	}
	return u.String()
}

// Open connects and pings once. There is no retry.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	opts := options.Client().
		ApplyURI(BuildURI(cfg)).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Store{client: client, db: client.Database(cfg.Name)}, nil
}

func (s *Store) Services() *mongo.Collection {
	return s.db.Collection(ServicesCollection)
}

func (s *Store) Reviews() *mongo.Collection {
	return s.db.Collection(ReviewsCollection)
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
