package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role selects which collection family a request moves through.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
)

// Terminal statuses. A pending request carries no status field at all;
// the status is stamped at decision time, just before relocation.
const (
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Request is a sign-up application from a student or an instructor.
// Students must carry a class name, instructors a subject; the other
// role's field stays empty and is omitted from the stored document.
type Request struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Role      Role               `bson:"role" json:"role"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	ClassName string             `bson:"className,omitempty" json:"className,omitempty"`
	Subject   string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Roll      int                `bson:"roll,omitempty" json:"roll,omitempty"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Status    string             `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Decided reports whether the request already reached a terminal status.
func (r *Request) Decided() bool {
	return r.Status == StatusApproved || r.Status == StatusRejected
}
