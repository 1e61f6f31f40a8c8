package todo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"casahub/internal/pkg/access"
	"casahub/internal/pkg/apperr"
	"casahub/internal/pkg/pagination"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Create(ctx context.Context, t *Todo) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockStore) GetByID(ctx context.Context, id string) (*Todo, error) {
	args := m.Called(ctx, id)
	if t := args.Get(0); t != nil {
		return t.(*Todo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) List(ctx context.Context, scope access.Scope, filter ListFilter, page pagination.Params) ([]Todo, int64, error) {
	args := m.Called(ctx, scope, filter, page)
	if t := args.Get(0); t != nil {
		return t.([]Todo), args.Get(1).(int64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *mockStore) Update(ctx context.Context, t *Todo) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockStore) AddComment(ctx context.Context, c *Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockStore) GetComment(ctx context.Context, id string) (*Comment, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) ListComments(ctx context.Context, todoID string) ([]Comment, error) {
	args := m.Called(ctx, todoID)
	if c := args.Get(0); c != nil {
		return c.([]Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockUserDirectory struct {
	mock.Mock
}

func (m *mockUserDirectory) Exists(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func newTestService() (*Service, *mockStore, *mockUserDirectory) {
	store := new(mockStore)
	users := new(mockUserDirectory)
	return NewService(store, users, zap.NewNop()), store, users
}

var (
	creator  = access.Caller{ID: "user-1", Role: access.RoleEditor}
	assignee = access.Caller{ID: "user-2", Role: access.RoleGuest}
	stranger = access.Caller{ID: "user-3", Role: access.RoleEditor}
)

func strptr(s string) *string { return &s }

func TestCreate_DefaultsToPendingMedium(t *testing.T) {
	svc, store, _ := newTestService()
	store.On("Create", mock.Anything, mock.AnythingOfType("*todo.Todo")).Return(nil)

	item, err := svc.Create(context.Background(), creator, CreateRequest{Title: "Call the notary"})

	assert.NoError(t, err)
	assert.Equal(t, StatusPending, item.Status)
	assert.Equal(t, PriorityMedium, item.Priority)
	assert.Equal(t, "user-1", item.CreatedBy)
}

func TestCreate_MissingAssignee(t *testing.T) {
	svc, store, users := newTestService()
	users.On("Exists", mock.Anything, "ghost").Return(false, nil)

	_, err := svc.Create(context.Background(), creator, CreateRequest{
		Title:      "Unassignable",
		AssignedTo: strptr("ghost"),
	})

	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	store.AssertNotCalled(t, "Create")
}

func TestGet_VisibleToAssignee(t *testing.T) {
	svc, store, _ := newTestService()
	store.On("GetByID", mock.Anything, "t1").Return(&Todo{
		ID: "t1", CreatedBy: "user-1", AssignedTo: strptr("user-2"),
	}, nil)

	item, err := svc.Get(context.Background(), assignee, "t1")

	assert.NoError(t, err)
	assert.Equal(t, "t1", item.ID)
}

func TestGet_HiddenFromStrangers(t *testing.T) {
	svc, store, _ := newTestService()
	store.On("GetByID", mock.Anything, "t1").Return(&Todo{
		ID: "t1", CreatedBy: "user-1", AssignedTo: strptr("user-2"),
	}, nil)

	_, err := svc.Get(context.Background(), stranger, "t1")

	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestUpdate_AssigneeCanChangeStatus(t *testing.T) {
	svc, store, _ := newTestService()
	store.On("GetByID", mock.Anything, "t1").Return(&Todo{
		ID: "t1", CreatedBy: "user-1", AssignedTo: strptr("user-2"), Status: StatusPending,
	}, nil)
	store.On("Update", mock.Anything, mock.AnythingOfType("*todo.Todo")).Return(nil)

	item, err := svc.Update(context.Background(), assignee, "t1", UpdateRequest{Status: strptr("COMPLETED")})

	assert.NoError(t, err)
	assert.Equal(t, StatusCompleted, item.Status)
}

func TestDelete_AssigneeCannotDelete(t *testing.T) {
	svc, store, _ := newTestService()
	store.On("GetByID", mock.Anything, "t1").Return(&Todo{
		ID: "t1", CreatedBy: "user-1", AssignedTo: strptr("user-2"),
	}, nil)

	err := svc.Delete(context.Background(), assignee, "t1")

	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	store.AssertNotCalled(t, "Delete")
}

func TestAddComment_ReplyToForeignComment(t *testing.T) {
	svc, store, _ := newTestService()
	store.On("GetByID", mock.Anything, "t1").Return(&Todo{
		ID: "t1", CreatedBy: "user-1",
	}, nil)
	// Parent comment exists but belongs to a different todo.
	store.On("GetComment", mock.Anything, "c9").Return(&Comment{ID: "c9", TodoID: "t2"}, nil)

	_, err := svc.AddComment(context.Background(), creator, "t1", AddCommentRequest{
		Content:  "reply",
		ParentID: strptr("c9"),
	})

	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	store.AssertNotCalled(t, "AddComment")
}

func TestAddComment_Threaded(t *testing.T) {
	svc, store, _ := newTestService()
	store.On("GetByID", mock.Anything, "t1").Return(&Todo{
		ID: "t1", CreatedBy: "user-1",
	}, nil)
	store.On("GetComment", mock.Anything, "c1").Return(&Comment{ID: "c1", TodoID: "t1"}, nil)
	store.On("AddComment", mock.Anything, mock.AnythingOfType("*todo.Comment")).Return(nil)

	comment, err := svc.AddComment(context.Background(), creator, "t1", AddCommentRequest{
		Content:  "sounds good",
		ParentID: strptr("c1"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "c1", *comment.ParentID)
	assert.Equal(t, "user-1", comment.CreatedBy)
}
