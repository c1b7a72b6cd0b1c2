package utils

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindOneWithTimeout performs a FindOne with a bounded timeout
func FindOneWithTimeout(ctx context.Context, collection *mongo.Collection, filter bson.M, result interface{}, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return collection.FindOne(ctx, filter).Decode(result)
}

// FindWithLimitAndTimeout performs a Find with a result limit and a bounded timeout
func FindWithLimitAndTimeout(ctx context.Context, collection *mongo.Collection, filter bson.M, limit int64, timeout time.Duration) (*mongo.Cursor, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return collection.Find(ctx, filter, options.Find().SetLimit(limit))
}

// InsertOneWithTimeout performs an InsertOne with a bounded timeout
func InsertOneWithTimeout(ctx context.Context, collection *mongo.Collection, document interface{}, timeout time.Duration) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return collection.InsertOne(ctx, document)
}

// UpdateOneWithTimeout performs an UpdateOne with a bounded timeout
func UpdateOneWithTimeout(ctx context.Context, collection *mongo.Collection, filter bson.M, update bson.M, timeout time.Duration) (*mongo.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return collection.UpdateOne(ctx, filter, update)
}
