package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Subject is the static per-class subject list.
type Subject struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Class    string             `bson:"class" json:"class"`
	Subjects []string           `bson:"subjects" json:"subjects"`
}
