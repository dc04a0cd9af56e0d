package service

import (
	"context"
	"strings"

	"backend/internal/model"
	"backend/internal/repository"
)

// QueryService is the read-only facade: point lookups and the
// case-insensitive group-by-class listings.
type QueryService interface {
	SubjectByClass(ctx context.Context, class string) (*model.Subject, error)
	ApprovedUserByEmail(ctx context.Context, email string) (*model.Request, error)
	PendingByClass(ctx context.Context, role model.Role) (map[string][]model.Request, error)
	ApprovedByClass(ctx context.Context, role model.Role) (map[string][]model.Request, error)
	RejectedByClass(ctx context.Context, role model.Role) (map[string][]model.Request, error)
}

type queryService struct {
	subjects  repository.SubjectRepository
	requests  repository.RequestRepository
	decisions repository.DecisionRepository
}

func NewQueryService(subjects repository.SubjectRepository, requests repository.RequestRepository, decisions repository.DecisionRepository) QueryService {
	return &queryService{subjects: subjects, requests: requests, decisions: decisions}
}

func (s *queryService) SubjectByClass(ctx context.Context, class string) (*model.Subject, error) {
	subject, err := s.subjects.FindByClass(ctx, class)
	if err != nil {
		return nil, classify("lookup subject", err)
	}
	return subject, nil
}

func (s *queryService) ApprovedUserByEmail(ctx context.Context, email string) (*model.Request, error) {
	user, err := s.decisions.FindApprovedUserByEmail(ctx, email)
	if err != nil {
		return nil, classify("lookup approved user", err)
	}
	return user, nil
}

func (s *queryService) PendingByClass(ctx context.Context, role model.Role) (map[string][]model.Request, error) {
	requests, err := s.requests.FindAllPending(ctx, role)
	if err != nil {
		return nil, storeFailure("list pending requests", err)
	}
	return groupByClass(requests), nil
}

func (s *queryService) ApprovedByClass(ctx context.Context, role model.Role) (map[string][]model.Request, error) {
	requests, err := s.decisions.FindAllApproved(ctx, role)
	if err != nil {
		return nil, storeFailure("list approved records", err)
	}
	return groupByClass(requests), nil
}

func (s *queryService) RejectedByClass(ctx context.Context, role model.Role) (map[string][]model.Request, error) {
	requests, err := s.decisions.FindAllRejected(ctx, role)
	if err != nil {
		return nil, storeFailure("list rejected records", err)
	}
	return groupByClass(requests), nil
}

// groupByClass buckets requests under their lower-cased class name,
// preserving store order within each bucket. An empty collection yields an
// empty map, not nil, so the wire payload stays {} instead of null.
func groupByClass(requests []model.Request) map[string][]model.Request {
	grouped := make(map[string][]model.Request, len(requests))
	for _, req := range requests {
		key := strings.ToLower(req.ClassName)
		grouped[key] = append(grouped[key], req)
	}
	return grouped
}
