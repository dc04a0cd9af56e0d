package repository

import (
	"context"

	"backend/internal/database"
	"backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CurrentStudentRepository owns the current-students collection.
type CurrentStudentRepository interface {
	Insert(ctx context.Context, student *model.CurrentStudent) (primitive.ObjectID, error)
	FindAllByRoll(ctx context.Context) ([]model.CurrentStudent, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type currentStudentRepository struct {
	coll *mongo.Collection
}

func NewCurrentStudentRepository(db *mongo.Database) CurrentStudentRepository {
	return &currentStudentRepository{coll: db.Collection(database.CollCurrentStudents)}
}

func (r *currentStudentRepository) Insert(ctx context.Context, student *model.CurrentStudent) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, student)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// FindAllByRoll returns every current student sorted ascending by roll
// number; callers group the sorted sequence by class.
func (r *currentStudentRepository) FindAllByRoll(ctx context.Context) ([]model.CurrentStudent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "roll", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var students []model.CurrentStudent
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// UpdateFields merges the given fields into the document, leaving all
// other fields untouched.
func (r *currentStudentRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (r *currentStudentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNoDocument
	}
	return nil
}
