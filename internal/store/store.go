package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harentsoaR/hospital-seed/internal/models"
)

const (
	UsersCollection   = "users"
	DoctorsCollection = "doctors"
)

// Store is the persistence the seeder needs.
type Store interface {
	// FindUserByUsername returns nil, nil when no user has that username.
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	InsertUser(ctx context.Context, user *models.User) error
	CountDoctors(ctx context.Context) (int64, error)
	InsertDoctors(ctx context.Context, doctors []models.Doctor) error
}

var _ Store = (*MongoStore)(nil)

type MongoStore struct {
	DB     *mongo.Database
	client *mongo.Client
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{DB: db, client: db.Client()}
}

// Connect dials MongoDB and pings it within a 10 second window.
func Connect(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	log.Println("Successfully connected to MongoDB!")
	return NewMongoStore(client.Database(dbName)), nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.DB.Collection(UsersCollection).FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user %q: %w", username, err)
	}
	return &user, nil
}

func (s *MongoStore) InsertUser(ctx context.Context, user *models.User) error {
	if _, err := s.DB.Collection(UsersCollection).InsertOne(ctx, user); err != nil {
		return fmt.Errorf("insert user %q: %w", user.Username, err)
	}
	return nil
}

func (s *MongoStore) CountDoctors(ctx context.Context) (int64, error) {
	n, err := s.DB.Collection(DoctorsCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count doctors: %w", err)
	}
	return n, nil
}

func (s *MongoStore) InsertDoctors(ctx context.Context, doctors []models.Doctor) error {
	if len(doctors) == 0 {
		return nil
	}
	docs := make([]interface{}, len(doctors))
	for i := range doctors {
		docs[i] = doctors[i]
	}
	if _, err := s.DB.Collection(DoctorsCollection).InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert doctors: %w", err)
	}
	return nil
}
