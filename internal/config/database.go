package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.uber.org/zap"

	"github.com/hospsys/patient-registry/internal/logging"
	"github.com/hospsys/patient-registry/internal/redisclient"
)

var (
	// MongoDB client
	MongoDB *mongo.Database
	// Redis client
	Redis *redisclient.Client
)

// InitMongoDB initializes the MongoDB connection
func InitMongoDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(AppConfig.MongoURI).
		SetMonitor(otelmongo.NewMonitor()).
		SetMaxPoolSize(100).
		SetMinPoolSize(10).
		SetMaxConnIdleTime(5 * time.Minute).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Fatal(err)
	}

	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		log.Fatal(err)
	}

	MongoDB = client.Database(AppConfig.MongoDatabase)

	if err := ensureIndexes(); err != nil {
		logging.Logger.Error("failed to ensure indexes on startup", zap.Error(err))
	}
}

// ensureIndexes creates the indexes the duplicate search and document
// lookups depend on
func ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	collection := MongoDB.Collection(AppConfig.PatientCollection)

	indexes := []mongo.IndexModel{
		{
			// Similarity search scans by normalized name plus birth date
			Keys: bson.D{
				{Key: "first_name_normalized", Value: 1},
				{Key: "last_name_normalized", Value: 1},
				{Key: "date_of_birth", Value: 1},
			},
			Options: options.Index().SetName("idx_identity_search"),
		},
		{
			Keys:    bson.D{{Key: "cpf", Value: 1}},
			Options: options.Index().SetName("idx_cpf").SetUnique(true).SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "cns", Value: 1}},
			Options: options.Index().SetName("idx_cns").SetUnique(true).SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("idx_status"),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return err
	}

	logging.Logger.Info("patient collection indexes ensured",
		zap.String("collection", AppConfig.PatientCollection),
		zap.Int("count", len(indexes)))
	return nil
}

// InitRedis initializes the Redis connection
func InitRedis() {
	opts, err := redis.ParseURL(AppConfig.RedisURI)
	if err != nil {
		log.Fatal(err)
	}
	if AppConfig.RedisPassword != "" {
		opts.Password = AppConfig.RedisPassword
	}
	opts.DB = AppConfig.RedisDB

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal(err)
	}

	Redis = redisclient.NewClient(client)
	logging.Logger.Info("redis connection established")
}
