package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adityakumar003/TrainX/models"
)

// MongoUserStore keeps one document per user in a single collection.
type MongoUserStore struct {
	users *mongo.Collection
}

func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{users: db.Collection("users")}
}

func (s *MongoUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var user models.User
	err = s.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (s *MongoUserStore) Insert(ctx context.Context, user *models.User) (string, error) {
	res, err := s.users.InsertOne(ctx, user)
	if err != nil {
		return "", fmt.Errorf("insert user: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (s *MongoUserStore) SetFields(ctx context.Context, id string, fields map[string]any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	_, err = s.users.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("set user fields: %w", err)
	}
	return nil
}

func (s *MongoUserStore) PushWorkout(ctx context.Context, id string, workout models.Workout) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	_, err = s.users.UpdateByID(ctx, oid, bson.M{"$push": bson.M{"workouts": workout}})
	if err != nil {
		return fmt.Errorf("push workout: %w", err)
	}
	return nil
}

func (s *MongoUserStore) ReplaceWorkouts(ctx context.Context, id string, workouts []models.Workout) error {
	return s.SetFields(ctx, id, map[string]any{"workouts": workouts})
}

func (s *MongoUserStore) UpdateExerciseByDate(ctx context.Context, id, date, exerciseName string, reps int, weight, calories float64) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	filter := bson.M{
		"_id":                             oid,
		"workouts.date":                   date,
		"workouts.exercises.exercise_name": exerciseName,
	}
	update := bson.M{"$set": bson.M{
		"workouts.$[w].exercises.$[e].reps":     reps,
		"workouts.$[w].exercises.$[e].weight":   weight,
		"workouts.$[w].exercises.$[e].calories": calories,
	}}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{Filters: []interface{}{
		bson.M{"w.date": date},
		bson.M{"e.exercise_name": exerciseName},
	}})

	if _, err := s.users.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("update exercise: %w", err)
	}
	return nil
}

func (s *MongoUserStore) PullExercise(ctx context.Context, id, workoutID, exerciseName string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	filter := bson.M{"_id": oid, "workouts.id": workoutID}
	update := bson.M{"$pull": bson.M{
		"workouts.$.exercises": bson.M{"exercise_name": exerciseName},
	}}
	if _, err := s.users.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("pull exercise: %w", err)
	}
	return nil
}

func (s *MongoUserStore) PruneEmptyWorkouts(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	update := bson.M{"$pull": bson.M{
		"workouts": bson.M{"exercises": bson.M{"$size": 0}},
	}}
	if _, err := s.users.UpdateByID(ctx, oid, update); err != nil {
		return fmt.Errorf("prune empty workouts: %w", err)
	}
	return nil
}
