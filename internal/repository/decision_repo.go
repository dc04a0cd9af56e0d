package repository

import (
	"context"
	"errors"

	"backend/internal/database"
	"backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DecisionRepository owns the terminal collections: the role-specific
// approved/rejected collections and the shared Approved_Users lookup.
type DecisionRepository interface {
	InsertApproved(ctx context.Context, role model.Role, req *model.Request) error
	InsertRejected(ctx context.Context, role model.Role, req *model.Request) error
	InsertApprovedUser(ctx context.Context, req *model.Request) error
	FindApprovedUserByEmail(ctx context.Context, email string) (*model.Request, error)
	FindAllApproved(ctx context.Context, role model.Role) ([]model.Request, error)
	FindAllRejected(ctx context.Context, role model.Role) ([]model.Request, error)
	DeleteRejected(ctx context.Context, role model.Role, id primitive.ObjectID) error
	DeleteApprovedByEmail(ctx context.Context, role model.Role, email string) error
	DeleteApprovedUserByEmail(ctx context.Context, email string) error
}

type decisionRepository struct {
	db *mongo.Database
}

func NewDecisionRepository(db *mongo.Database) DecisionRepository {
	return &decisionRepository{db: db}
}

func approvedCollection(role model.Role) string {
	if role == model.RoleInstructor {
		return database.CollApprovedInstructors
	}
	return database.CollApprovedStudents
}

func rejectedCollection(role model.Role) string {
	if role == model.RoleInstructor {
		return database.CollRejectedInstructors
	}
	return database.CollRejectedStudents
}

func (r *decisionRepository) InsertApproved(ctx context.Context, role model.Role, req *model.Request) error {
	_, err := r.db.Collection(approvedCollection(role)).InsertOne(ctx, req)
	return err
}

func (r *decisionRepository) InsertRejected(ctx context.Context, role model.Role, req *model.Request) error {
	_, err := r.db.Collection(rejectedCollection(role)).InsertOne(ctx, req)
	return err
}

func (r *decisionRepository) InsertApprovedUser(ctx context.Context, req *model.Request) error {
	_, err := r.db.Collection(database.CollApprovedUsers).InsertOne(ctx, req)
	return err
}

func (r *decisionRepository) FindApprovedUserByEmail(ctx context.Context, email string) (*model.Request, error) {
	var req model.Request
	err := r.db.Collection(database.CollApprovedUsers).FindOne(ctx, bson.M{"email": email}).Decode(&req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoDocument
		}
		return nil, err
	}
	return &req, nil
}

func (r *decisionRepository) FindAllApproved(ctx context.Context, role model.Role) ([]model.Request, error) {
	return r.findAll(ctx, approvedCollection(role))
}

func (r *decisionRepository) FindAllRejected(ctx context.Context, role model.Role) ([]model.Request, error) {
	return r.findAll(ctx, rejectedCollection(role))
}

func (r *decisionRepository) findAll(ctx context.Context, collection string) ([]model.Request, error) {
	cursor, err := r.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []model.Request
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *decisionRepository) DeleteRejected(ctx context.Context, role model.Role, id primitive.ObjectID) error {
	return r.deleteOne(ctx, rejectedCollection(role), bson.M{"_id": id})
}

func (r *decisionRepository) DeleteApprovedByEmail(ctx context.Context, role model.Role, email string) error {
	return r.deleteOne(ctx, approvedCollection(role), bson.M{"email": email})
}

func (r *decisionRepository) DeleteApprovedUserByEmail(ctx context.Context, email string) error {
	return r.deleteOne(ctx, database.CollApprovedUsers, bson.M{"email": email})
}

func (r *decisionRepository) deleteOne(ctx context.Context, collection string, filter bson.M) error {
	res, err := r.db.Collection(collection).DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNoDocument
	}
	return nil
}
