package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend/internal/apperror"
	"backend/internal/model"
	"backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- DTOs ---

// SubmitRequestDTO carries a sign-up submission. Name and email are required
// for both roles; students must also carry className and instructors subject.
type SubmitRequestDTO struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	ClassName string `json:"className"`
	Subject   string `json:"subject"`
	Roll      int    `json:"roll"`
	Phone     string `json:"phone"`
}

// ApproveInstructorDTO identifies the pending instructor request to approve.
type ApproveInstructorDTO struct {
	RequestID string `json:"requestId" binding:"required"`
}

// --- Interface ---

// LifecycleService moves a request from pending to a terminal state,
// consistently across every collection it must appear in.
type LifecycleService interface {
	Submit(ctx context.Context, role model.Role, dto SubmitRequestDTO) (*model.Request, error)
	Approve(ctx context.Context, role model.Role, id string) (*model.Request, error)
	Reject(ctx context.Context, role model.Role, id string) (*model.Request, error)
	DeleteRejected(ctx context.Context, role model.Role, id string) error
	DeleteApprovedStudent(ctx context.Context, email string) error
}

type lifecycleService struct {
	requests  repository.RequestRepository
	decisions repository.DecisionRepository
}

func NewLifecycleService(requests repository.RequestRepository, decisions repository.DecisionRepository) LifecycleService {
	return &lifecycleService{requests: requests, decisions: decisions}
}

// --- Implementation ---

func (s *lifecycleService) Submit(ctx context.Context, role model.Role, dto SubmitRequestDTO) (*model.Request, error) {
	if err := validateSubmission(role, dto); err != nil {
		return nil, err
	}

	req := &model.Request{
		Role:      role,
		Name:      dto.Name,
		Email:     dto.Email,
		ClassName: dto.ClassName,
		Subject:   dto.Subject,
		Roll:      dto.Roll,
		Phone:     dto.Phone,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.requests.Insert(ctx, role, req)
	if err != nil {
		return nil, storeFailure("submit request", err)
	}
	req.ID = id
	return req, nil
}

// Approve claims the pending request (stamping status=approved atomically,
// so a concurrent second decision for the same id loses with NotFound),
// mirrors it into the shared approved-user lookup and the role's approved
// collection, then removes the pending original. The three calls after the
// claim are not transactional; a failure between them leaves the claimed
// document in the pending collection where it can no longer be re-claimed,
// so the partial state is visible rather than silently duplicated.
func (s *lifecycleService) Approve(ctx context.Context, role model.Role, id string) (*model.Request, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	req, err := s.requests.ClaimPending(ctx, role, oid, model.StatusApproved)
	if err != nil {
		return nil, classify("claim pending request", err)
	}

	if req.Email == "" {
		return nil, fmt.Errorf("%w: claimed request %s has no email for the user lookup", apperror.ErrInvalidState, id)
	}

	if err := s.decisions.InsertApprovedUser(ctx, req); err != nil {
		return nil, storeFailure("mirror approved user", err)
	}
	if err := s.decisions.InsertApproved(ctx, role, req); err != nil {
		return nil, storeFailure("store approved record", err)
	}
	if err := s.requests.DeletePending(ctx, role, oid); err != nil && !errors.Is(err, repository.ErrNoDocument) {
		return nil, storeFailure("remove pending original", err)
	}

	return req, nil
}

// Reject mirrors Approve but writes only the role's rejected collection;
// rejected users never enter the approved-user lookup.
func (s *lifecycleService) Reject(ctx context.Context, role model.Role, id string) (*model.Request, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	req, err := s.requests.ClaimPending(ctx, role, oid, model.StatusRejected)
	if err != nil {
		return nil, classify("claim pending request", err)
	}

	if err := s.decisions.InsertRejected(ctx, role, req); err != nil {
		return nil, storeFailure("store rejected record", err)
	}
	if err := s.requests.DeletePending(ctx, role, oid); err != nil && !errors.Is(err, repository.ErrNoDocument) {
		return nil, storeFailure("remove pending original", err)
	}

	return req, nil
}

func (s *lifecycleService) DeleteRejected(ctx context.Context, role model.Role, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.decisions.DeleteRejected(ctx, role, oid); err != nil {
		return classify("delete rejected record", err)
	}
	return nil
}

// DeleteApprovedStudent removes the approved record and its user-lookup
// mirror. Two deletes, not atomic: if the second fails the lookup entry
// survives and the error reports it.
func (s *lifecycleService) DeleteApprovedStudent(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", apperror.ErrValidation)
	}
	if err := s.decisions.DeleteApprovedByEmail(ctx, model.RoleStudent, email); err != nil {
		return classify("delete approved record", err)
	}
	if err := s.decisions.DeleteApprovedUserByEmail(ctx, email); err != nil && !errors.Is(err, repository.ErrNoDocument) {
		return storeFailure("delete approved user mirror", err)
	}
	return nil
}

// --- Helpers ---

func validateSubmission(role model.Role, dto SubmitRequestDTO) error {
	if dto.Name == "" || dto.Email == "" {
		return fmt.Errorf("%w: name and email are required", apperror.ErrValidation)
	}
	switch role {
	case model.RoleStudent:
		if dto.ClassName == "" {
			return fmt.Errorf("%w: className is required for student requests", apperror.ErrValidation)
		}
	case model.RoleInstructor:
		if dto.Subject == "" {
			return fmt.Errorf("%w: subject is required for instructor requests", apperror.ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown role %q", apperror.ErrValidation, role)
	}
	return nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid id %q", apperror.ErrValidation, id)
	}
	return oid, nil
}

// classify maps a repository error onto the taxonomy: a missed key lookup
// becomes NotFound, anything else a store failure.
func classify(op string, err error) error {
	if errors.Is(err, repository.ErrNoDocument) {
		return fmt.Errorf("%s: %w", op, apperror.ErrNotFound)
	}
	return storeFailure(op, err)
}

func storeFailure(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, apperror.ErrStoreUnavailable, err)
}
