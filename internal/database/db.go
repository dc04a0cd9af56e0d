package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names. Approved_Users is the shared email-keyed lookup of every
// approved account regardless of role; the rest are role- or entity-specific.
const (
	CollStudentRequests     = "student-requests"
	CollInstructorRequests  = "instructor-requests"
	CollApprovedStudents    = "approved-students"
	CollApprovedInstructors = "approved-instructors"
	CollRejectedStudents    = "rejected-students"
	CollRejectedInstructors = "rejected-instructors"
	CollApprovedUsers       = "Approved_Users"
	CollCurrentStudents     = "current-students"
	CollSubjects            = "subjects"
)

// AllCollections lists every collection the admin stats endpoint reports on.
var AllCollections = []string{
	CollStudentRequests,
	CollInstructorRequests,
	CollApprovedStudents,
	CollApprovedInstructors,
	CollRejectedStudents,
	CollRejectedInstructors,
	CollApprovedUsers,
	CollCurrentStudents,
	CollSubjects,
}

// InstructorStatsCollections is the subset shown on the instructor dashboard.
var InstructorStatsCollections = []string{
	CollCurrentStudents,
	CollStudentRequests,
	CollApprovedStudents,
	CollRejectedStudents,
}

// Connect establishes the single long-lived client shared by all handlers
// and verifies the connection with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return nil, err
	}

	return client, nil
}
