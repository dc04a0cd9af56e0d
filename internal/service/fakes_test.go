package service

import (
	"context"
	"sync"

	"backend/internal/model"
	"backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore is an in-memory stand-in for the document store, implementing
// the request, decision, current-student and stats repository interfaces.
// ClaimPending takes the same lock as every other mutation, mirroring the
// store's per-document atomicity for the claim.
type fakeStore struct {
	mu       sync.Mutex
	pending  map[model.Role]map[primitive.ObjectID]model.Request
	approved map[model.Role][]model.Request
	rejected map[model.Role][]model.Request
	users    []model.Request
	students map[primitive.ObjectID]model.CurrentStudent
	subjects map[string]model.Subject

	// failOn maps an operation name to the error it should return.
	failOn map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		pending: map[model.Role]map[primitive.ObjectID]model.Request{
			model.RoleStudent:    {},
			model.RoleInstructor: {},
		},
		approved: map[model.Role][]model.Request{},
		rejected: map[model.Role][]model.Request{},
		students: map[primitive.ObjectID]model.CurrentStudent{},
		subjects: map[string]model.Subject{},
		failOn:   map[string]error{},
	}
}

func (f *fakeStore) fail(op string) error {
	return f.failOn[op]
}

// --- RequestRepository ---

func (f *fakeStore) Insert(_ context.Context, role model.Role, req *model.Request) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("insertPending"); err != nil {
		return primitive.NilObjectID, err
	}
	id := primitive.NewObjectID()
	stored := *req
	stored.ID = id
	f.pending[role][id] = stored
	return id, nil
}

func (f *fakeStore) ClaimPending(_ context.Context, role model.Role, id primitive.ObjectID, status string) (*model.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("claim"); err != nil {
		return nil, err
	}
	req, ok := f.pending[role][id]
	if !ok || req.Decided() {
		return nil, repository.ErrNoDocument
	}
	req.Status = status
	f.pending[role][id] = req
	claimed := req
	return &claimed, nil
}

func (f *fakeStore) DeletePending(_ context.Context, role model.Role, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("deletePending"); err != nil {
		return err
	}
	if _, ok := f.pending[role][id]; !ok {
		return repository.ErrNoDocument
	}
	delete(f.pending[role], id)
	return nil
}

func (f *fakeStore) FindAllPending(_ context.Context, role model.Role) ([]model.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("findAllPending"); err != nil {
		return nil, err
	}
	var out []model.Request
	for _, req := range f.pending[role] {
		out = append(out, req)
	}
	return out, nil
}

// --- DecisionRepository ---

func (f *fakeStore) InsertApproved(_ context.Context, role model.Role, req *model.Request) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("insertApproved"); err != nil {
		return err
	}
	f.approved[role] = append(f.approved[role], *req)
	return nil
}

func (f *fakeStore) InsertRejected(_ context.Context, role model.Role, req *model.Request) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("insertRejected"); err != nil {
		return err
	}
	f.rejected[role] = append(f.rejected[role], *req)
	return nil
}

func (f *fakeStore) InsertApprovedUser(_ context.Context, req *model.Request) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("insertUser"); err != nil {
		return err
	}
	f.users = append(f.users, *req)
	return nil
}

func (f *fakeStore) FindApprovedUserByEmail(_ context.Context, email string) (*model.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("findUser"); err != nil {
		return nil, err
	}
	for _, user := range f.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, repository.ErrNoDocument
}

func (f *fakeStore) FindAllApproved(_ context.Context, role model.Role) ([]model.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("findAllApproved"); err != nil {
		return nil, err
	}
	return append([]model.Request(nil), f.approved[role]...), nil
}

func (f *fakeStore) FindAllRejected(_ context.Context, role model.Role) ([]model.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("findAllRejected"); err != nil {
		return nil, err
	}
	return append([]model.Request(nil), f.rejected[role]...), nil
}

func (f *fakeStore) DeleteRejected(_ context.Context, role model.Role, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, req := range f.rejected[role] {
		if req.ID == id {
			f.rejected[role] = append(f.rejected[role][:i], f.rejected[role][i+1:]...)
			return nil
		}
	}
	return repository.ErrNoDocument
}

func (f *fakeStore) DeleteApprovedByEmail(_ context.Context, role model.Role, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, req := range f.approved[role] {
		if req.Email == email {
			f.approved[role] = append(f.approved[role][:i], f.approved[role][i+1:]...)
			return nil
		}
	}
	return repository.ErrNoDocument
}

func (f *fakeStore) DeleteApprovedUserByEmail(_ context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("deleteUser"); err != nil {
		return err
	}
	for i, user := range f.users {
		if user.Email == email {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return repository.ErrNoDocument
}

// --- CurrentStudentRepository ---

func (f *fakeStore) InsertStudent(_ context.Context, student *model.CurrentStudent) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail("insertStudent"); err != nil {
		return primitive.NilObjectID, err
	}
	id := primitive.NewObjectID()
	stored := *student
	stored.ID = id
	f.students[id] = stored
	return id, nil
}

func (f *fakeStore) UpdateFields(_ context.Context, id primitive.ObjectID, fields bson.M) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	student, ok := f.students[id]
	if !ok {
		return repository.ErrNoDocument
	}
	for key, value := range fields {
		switch key {
		case "name":
			student.Name = value.(string)
		case "email":
			student.Email = value.(string)
		case "class":
			student.Class = value.(string)
		case "roll":
			student.Roll = value.(int)
		case "section":
			student.Section = value.(string)
		case "phone":
			student.Phone = value.(string)
		}
	}
	f.students[id] = student
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.students[id]; !ok {
		return repository.ErrNoDocument
	}
	delete(f.students, id)
	return nil
}

// fakeStudentRepo adapts fakeStore to CurrentStudentRepository with a
// deterministic roll-sorted listing.
type fakeStudentRepo struct {
	store *fakeStore
}

func (r *fakeStudentRepo) Insert(ctx context.Context, student *model.CurrentStudent) (primitive.ObjectID, error) {
	return r.store.InsertStudent(ctx, student)
}

func (r *fakeStudentRepo) FindAllByRoll(_ context.Context) ([]model.CurrentStudent, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.fail("findAllStudents"); err != nil {
		return nil, err
	}
	var out []model.CurrentStudent
	for _, student := range r.store.students {
		out = append(out, student)
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Roll < out[i].Roll {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (r *fakeStudentRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	return r.store.UpdateFields(ctx, id, fields)
}

func (r *fakeStudentRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.store.Delete(ctx, id)
}

// --- SubjectRepository ---

type fakeSubjectRepo struct {
	store *fakeStore
}

func (r *fakeSubjectRepo) FindByClass(_ context.Context, class string) (*model.Subject, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	subject, ok := r.store.subjects[class]
	if !ok {
		return nil, repository.ErrNoDocument
	}
	return &subject, nil
}

// --- StatsRepository ---

type fakeStatsRepo struct {
	counts map[string]int64
	err    error
}

func (r *fakeStatsRepo) CountDocuments(_ context.Context, collections []string) (map[string]int64, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make(map[string]int64, len(collections))
	for _, name := range collections {
		out[name] = r.counts[name]
	}
	return out, nil
}
