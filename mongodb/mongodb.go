// Package mongodb holds the document-store adapters. The connection is
// established once at bootstrap and handed to the repositories; there is no
// lazy reconnect inside data-access calls.
package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// Client wraps a connected mongo client scoped to one database.
type Client struct {
	client *mongo.Client
	db     string
}

// Connect dials and pings the server before returning a usable handle.
func Connect(uri, db string) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return &Client{client: client, db: db}, nil
}

func (c *Client) Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	return c.client.Disconnect(ctx)
}

func (c *Client) Collection(name string) *mongo.Collection {
	return c.client.Database(c.db).Collection(name)
}
