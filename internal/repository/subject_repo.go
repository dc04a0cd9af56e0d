package repository

import (
	"context"
	"errors"

	"backend/internal/database"
	"backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SubjectRepository owns the static subjects collection.
type SubjectRepository interface {
	FindByClass(ctx context.Context, class string) (*model.Subject, error)
}

type subjectRepository struct {
	coll *mongo.Collection
}

func NewSubjectRepository(db *mongo.Database) SubjectRepository {
	return &subjectRepository{coll: db.Collection(database.CollSubjects)}
}

func (r *subjectRepository) FindByClass(ctx context.Context, class string) (*model.Subject, error) {
	var subject model.Subject
	if err := r.coll.FindOne(ctx, bson.M{"class": class}).Decode(&subject); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoDocument
		}
		return nil, err
	}
	return &subject, nil
}
