package service

import (
	"context"
	"fmt"
	"strings"

	"backend/internal/apperror"
	"backend/internal/model"
	"backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

// --- DTOs ---

type StoreCurrentStudentDTO struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Class   string `json:"class" binding:"required"`
	Roll    int    `json:"roll" binding:"required"`
	Section string `json:"section"`
	Phone   string `json:"phone"`
}

// UpdateCurrentStudentDTO merges only the fields present in the payload;
// pointers distinguish "absent" from zero values.
type UpdateCurrentStudentDTO struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Class   *string `json:"class"`
	Roll    *int    `json:"roll"`
	Section *string `json:"section"`
	Phone   *string `json:"phone"`
}

// --- Interface ---

// CurrentStudentService manages the enrolled-students collection.
type CurrentStudentService interface {
	Store(ctx context.Context, dto StoreCurrentStudentDTO) (*model.CurrentStudent, error)
	GroupedByClass(ctx context.Context) (map[string][]model.CurrentStudent, error)
	Update(ctx context.Context, id string, dto UpdateCurrentStudentDTO) error
	Delete(ctx context.Context, id string) error
}

type currentStudentService struct {
	students repository.CurrentStudentRepository
}

func NewCurrentStudentService(students repository.CurrentStudentRepository) CurrentStudentService {
	return &currentStudentService{students: students}
}

// --- Implementation ---

func (s *currentStudentService) Store(ctx context.Context, dto StoreCurrentStudentDTO) (*model.CurrentStudent, error) {
	student := &model.CurrentStudent{
		Name:    dto.Name,
		Email:   dto.Email,
		Class:   dto.Class,
		Roll:    dto.Roll,
		Section: dto.Section,
		Phone:   dto.Phone,
	}

	id, err := s.students.Insert(ctx, student)
	if err != nil {
		return nil, storeFailure("store current student", err)
	}
	student.ID = id
	return student, nil
}

// GroupedByClass returns students bucketed under their lower-cased class,
// each bucket ordered ascending by roll number.
func (s *currentStudentService) GroupedByClass(ctx context.Context) (map[string][]model.CurrentStudent, error) {
	students, err := s.students.FindAllByRoll(ctx)
	if err != nil {
		return nil, storeFailure("list current students", err)
	}

	grouped := make(map[string][]model.CurrentStudent, len(students))
	for _, student := range students {
		key := strings.ToLower(student.Class)
		grouped[key] = append(grouped[key], student)
	}
	return grouped, nil
}

func (s *currentStudentService) Update(ctx context.Context, id string, dto UpdateCurrentStudentDTO) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	fields := bson.M{}
	if dto.Name != nil {
		fields["name"] = *dto.Name
	}
	if dto.Email != nil {
		fields["email"] = *dto.Email
	}
	if dto.Class != nil {
		fields["class"] = *dto.Class
	}
	if dto.Roll != nil {
		fields["roll"] = *dto.Roll
	}
	if dto.Section != nil {
		fields["section"] = *dto.Section
	}
	if dto.Phone != nil {
		fields["phone"] = *dto.Phone
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: no updatable fields in payload", apperror.ErrValidation)
	}

	if err := s.students.UpdateFields(ctx, oid, fields); err != nil {
		return classify("update current student", err)
	}
	return nil
}

func (s *currentStudentService) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.students.Delete(ctx, oid); err != nil {
		return classify("delete current student", err)
	}
	return nil
}
