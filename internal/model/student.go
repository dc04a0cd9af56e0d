package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// CurrentStudent is an enrolled student. The listing endpoints sort by
// roll number ascending before grouping by class.
type CurrentStudent struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Class   string             `bson:"class" json:"class"`
	Roll    int                `bson:"roll" json:"roll"`
	Section string             `bson:"section,omitempty" json:"section,omitempty"`
	Phone   string             `bson:"phone,omitempty" json:"phone,omitempty"`
}
