package repository

import (
	"context"
	"errors"

	"backend/internal/database"
	"backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNoDocument is returned when a key-based operation matched nothing.
// Services translate it into the apperror taxonomy.
var ErrNoDocument = errors.New("no matching document")

// RequestRepository owns the role-specific pending collections.
type RequestRepository interface {
	Insert(ctx context.Context, role model.Role, req *model.Request) (primitive.ObjectID, error)
	ClaimPending(ctx context.Context, role model.Role, id primitive.ObjectID, status string) (*model.Request, error)
	DeletePending(ctx context.Context, role model.Role, id primitive.ObjectID) error
	FindAllPending(ctx context.Context, role model.Role) ([]model.Request, error)
}

type requestRepository struct {
	db *mongo.Database
}

func NewRequestRepository(db *mongo.Database) RequestRepository {
	return &requestRepository{db: db}
}

func pendingCollection(role model.Role) string {
	if role == model.RoleInstructor {
		return database.CollInstructorRequests
	}
	return database.CollStudentRequests
}

func (r *requestRepository) pending(role model.Role) *mongo.Collection {
	return r.db.Collection(pendingCollection(role))
}

func (r *requestRepository) Insert(ctx context.Context, role model.Role, req *model.Request) (primitive.ObjectID, error) {
	res, err := r.pending(role).InsertOne(ctx, req)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("store returned a non-ObjectID identifier")
	}
	return id, nil
}

// ClaimPending atomically stamps the terminal status onto a still-undecided
// pending request and returns the post-image. The filter excludes documents
// that already carry a terminal status, so of two concurrent decisions for
// the same id exactly one claims it; the other gets ErrNoDocument.
func (r *requestRepository) ClaimPending(ctx context.Context, role model.Role, id primitive.ObjectID, status string) (*model.Request, error) {
	filter := bson.M{
		"_id":    id,
		"status": bson.M{"$nin": bson.A{model.StatusApproved, model.StatusRejected}},
	}
	update := bson.M{"$set": bson.M{"status": status}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var req model.Request
	if err := r.pending(role).FindOneAndUpdate(ctx, filter, update, opts).Decode(&req); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoDocument
		}
		return nil, err
	}
	return &req, nil
}

func (r *requestRepository) DeletePending(ctx context.Context, role model.Role, id primitive.ObjectID) error {
	res, err := r.pending(role).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (r *requestRepository) FindAllPending(ctx context.Context, role model.Role) ([]model.Request, error) {
	cursor, err := r.pending(role).Find(ctx, bson.M{})
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
