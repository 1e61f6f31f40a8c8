package linkedin

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

func (m *mockStore) Create(ctx context.Context, p *Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockStore) GetByID(ctx context.Context, id string) (*Post, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*Post), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) List(ctx context.Context, scope access.Scope, filter ListFilter, page pagination.Params) ([]Post, int64, error) {
	args := m.Called(ctx, scope, filter, page)
	if p := args.Get(0); p != nil {
		return p.([]Post), args.Get(1).(int64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *mockStore) Update(ctx context.Context, p *Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockStore) AddMedia(ctx context.Context, media *Media) error {
	args := m.Called(ctx, media)
	return args.Error(0)
}

func (m *mockStore) GetAnalytics(ctx context.Context, postID string) (*Analytics, error) {
	args := m.Called(ctx, postID)
	if a := args.Get(0); a != nil {
		return a.(*Analytics), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) SaveAnalytics(ctx context.Context, a *Analytics) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) PostSubmitted(ctx context.Context, p *Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockNotifier) PostReviewed(ctx context.Context, p *Post, approved bool, feedback string) error {
	args := m.Called(ctx, p, approved, feedback)
	return args.Error(0)
}

type mockCampaignChecker struct {
	mock.Mock
}

func (m *mockCampaignChecker) Accessible(ctx context.Context, caller access.Caller, campaignID string) error {
	args := m.Called(ctx, caller, campaignID)
	return args.Error(0)
}

func newTestService() (*Service, *mockStore, *mockNotifier, *mockCampaignChecker) {
	store := new(mockStore)
	notifier := new(mockNotifier)
	campaigns := new(mockCampaignChecker)
	return NewService(store, notifier, campaigns, zap.NewNop()), store, notifier, campaigns
}

var (
	creator = access.Caller{ID: "user-1", Role: access.RoleEditor}
	admin   = access.Caller{ID: "admin-1", Role: access.RoleAdmin}
	guest   = access.Caller{ID: "guest-1", Role: access.RoleGuest}
)

func TestSubmit_DraftFansOutToApprovers(t *testing.T) {
	svc, store, notifier, _ := newTestService()
	store.On("GetByID", mock.Anything, "p1").
		Return(&Post{ID: "p1", CreatedBy: "user-1", Status: StatusDraft}, nil)
	store.On("Update", mock.Anything, mock.AnythingOfType("*linkedin.Post")).Return(nil)
	notifier.On("PostSubmitted", mock.Anything, mock.AnythingOfType("*linkedin.Post")).Return(nil)

	p, err := svc.Submit(context.Background(), creator, "p1")

	assert.NoError(t, err)
	assert.Equal(t, StatusPendingApproval, p.Status)
	notifier.AssertCalled(t, "PostSubmitted", mock.Anything, mock.AnythingOfType("*linkedin.Post"))
}

func TestSubmit_DoubleSubmit(t *testing.T) {
	svc, store, notifier, _ := newTestService()
	store.On("GetByID", mock.Anything, "p1").
		Return(&Post{ID: "p1", CreatedBy: "user-1", Status: StatusPendingApproval}, nil)

	_, err := svc.Submit(context.Background(), creator, "p1")

	assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
	store.AssertNotCalled(t, "Update")
	notifier.AssertNotCalled(t, "PostSubmitted")
}

func TestSubmit_RejectedPostMayResubmit(t *testing.T) {
	svc, store, notifier, _ := newTestService()
	store.On("GetByID", mock.Anything, "p1").
		Return(&Post{ID: "p1", CreatedBy: "user-1", Status: StatusRejected}, nil)
	store.On("Update", mock.Anything, mock.AnythingOfType("*linkedin.Post")).Return(nil)
	notifier.On("PostSubmitted", mock.Anything, mock.AnythingOfType("*linkedin.Post")).Return(nil)

	p, err := svc.Submit(context.Background(), creator, "p1")

	assert.NoError(t, err)
	assert.Equal(t, StatusPendingApproval, p.Status)
}

func TestSubmit_OnlyCreator(t *testing.T) {
	svc, store, _, _ := newTestService()
	store.On("GetByID", mock.Anything, "p1").
		Return(&Post{ID: "p1", CreatedBy: "user-1", Status: StatusDraft}, nil)

	// Even an admin cannot submit on the creator's behalf.
	_, err := svc.Submit(context.Background(), admin, "p1")

	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	store.AssertNotCalled(t, "Update")
}

func TestApprove_DraftIsInvalid(t *testing.T) {
	svc, store, notifier, _ := newTestService()
	store.On("GetByID", mock.Anything, "p1").
		Return(&Post{ID: "p1", CreatedBy: "user-1", Status: StatusDraft}, nil)

	_, err := svc.Approve(context.Background(), admin, "p1", true, "")

	assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
	notifier.AssertNotCalled(t, "PostReviewed")
}

func TestApprove_GuestForbidden(t *testing.T) {
	svc, store, _, _ := newTestService()

	_, err := svc.Approve(context.Background(), guest, "p1", true, "")

	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	store.AssertNotCalled(t, "GetByID")
}

func TestApprove_RecordsApproverAndNotifiesCreator(t *testing.T) {
	svc, store, notifier, _ := newTestService()
	store.On("GetByID", mock.Anything, "p1").
		Return(&Post{ID: "p1", CreatedBy: "user-1", Status: StatusPendingApproval}, nil)
	store.On("Update", mock.Anything, mock.AnythingOfType("*linkedin.Post")).Return(nil)
	notifier.On("PostReviewed", mock.Anything, mock.AnythingOfType("*linkedin.Post"), true, "").Return(nil)

	p, err := svc.Approve(context.Background(), admin, "p1", true, "")

	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, p.Status)
	assert.Equal(t, "admin-1", *p.ApprovedBy)
}

func TestReject_CarriesFeedback(t *testing.T) {
	svc, store, notifier, _ := newTestService()
	store.On("GetByID", mock.Anything, "p1").
		Return(&Post{ID: "p1", CreatedBy: "user-1", Status: StatusPendingApproval}, nil)
	store.On("Update", mock.Anything, mock.AnythingOfType("*linkedin.Post")).Return(nil)
	notifier.On("PostReviewed", mock.Anything, mock.AnythingOfType("*linkedin.Post"), false, "tone it down").Return(nil)

	p, err := svc.Approve(context.Background(), admin, "p1", false, "tone it down")

	assert.NoError(t, err)
	assert.Equal(t, StatusRejected, p.Status)
	notifier.AssertExpectations(t)
}

func TestSchedule_RequiresApprovedStatus(t *testing.T) {
	svc, store, _, _ := newTestService()
	store.On("GetByID", mock.Anything, "p1").
		Return(&Post{ID: "p1", CreatedBy: "user-1", Status: StatusDraft}, nil)

	_, err := svc.Schedule(context.Background(), creator, "p1", ScheduleRequest{ScheduledDate: "2026-09-15"})

	assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
}

func TestSchedule(t *testing.T) {
	svc, store, _, _ := newTestService()
	store.On("GetByID", mock.Anything, "p1").
		Return(&Post{ID: "p1", CreatedBy: "user-1", Status: StatusApproved}, nil)
	store.On("Update", mock.Anything, mock.AnythingOfType("*linkedin.Post")).Return(nil)

	p, err := svc.Schedule(context.Background(), creator, "p1", ScheduleRequest{ScheduledDate: "2026-09-15"})

	assert.NoError(t, err)
	assert.Equal(t, StatusScheduled, p.Status)
	assert.NotNil(t, p.ScheduledDate)
}

func TestUpdate_PublishedIsLockedForAdmin(t *testing.T) {
	svc, store, _, _ := newTestService()
	store.On("GetByID", mock.Anything, "p1").
		Return(&Post{ID: "p1", CreatedBy: "user-1", Status: StatusPublished}, nil)

	content := "new content"
	_, err := svc.Update(context.Background(), admin, "p1", UpdateRequest{Content: &content})

	assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
	store.AssertNotCalled(t, "Update")
}

func TestDelete_PublishedIsLocked(t *testing.T) {
	svc, store, _, _ := newTestService()
	store.On("GetByID", mock.Anything, "p1").
		Return(&Post{ID: "p1", CreatedBy: "user-1", Status: StatusPublished}, nil)

	err := svc.Delete(context.Background(), creator, "p1")

	assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
	store.AssertNotCalled(t, "Delete")
}

func TestAddMedia_PublishedIsLocked(t *testing.T) {
	svc, store, _, _ := newTestService()
	store.On("GetByID", mock.Anything, "p1").
		Return(&Post{ID: "p1", CreatedBy: "user-1", Status: StatusPublished}, nil)

	_, err := svc.AddMedia(context.Background(), creator, "p1", AddMediaRequest{
		Filename: "a.png", URL: "https://cdn.example.com/a.png", MediaType: "IMAGE",
	})

	assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
	store.AssertNotCalled(t, "AddMedia")
}

func TestUpsertAnalytics_AdminOnly(t *testing.T) {
	svc, store, _, _ := newTestService()

	views := int64(100)
	_, err := svc.UpsertAnalytics(context.Background(), creator, "p1", AnalyticsRequest{Views: &views})

	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	store.AssertNotCalled(t, "SaveAnalytics")
}

func TestUpsertAnalytics_MergesPartialUpdate(t *testing.T) {
	svc, store, _, _ := newTestService()
	store.On("GetByID", mock.Anything, "p1").
		Return(&Post{ID: "p1", CreatedBy: "user-1", Status: StatusPublished}, nil)
	store.On("GetAnalytics", mock.Anything, "p1").
		Return(&Analytics{PostID: "p1", Views: 100, Likes: 10}, nil)
	store.On("SaveAnalytics", mock.Anything, mock.AnythingOfType("*linkedin.Analytics")).Return(nil)

	likes := int64(25)
	a, err := svc.UpsertAnalytics(context.Background(), admin, "p1", AnalyticsRequest{Likes: &likes})

	assert.NoError(t, err)
	assert.Equal(t, int64(100), a.Views)
	assert.Equal(t, int64(25), a.Likes)
}

func TestCreate_StartsAsDraft(t *testing.T) {
	svc, store, _, _ := newTestService()
	store.On("Create", mock.Anything, mock.AnythingOfType("*linkedin.Post")).Return(nil)

	p, err := svc.Create(context.Background(), creator, CreateRequest{
		Content:  "Open house this weekend",
		Hashtags: []string{"realestate"},
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusDraft, p.Status)
	assert.Equal(t, "user-1", p.CreatedBy)
}

func TestCreate_CampaignCheckPropagates(t *testing.T) {
	svc, store, _, campaigns := newTestService()
	campaignID := "c-404"
	campaigns.On("Accessible", mock.Anything, creator, campaignID).
		Return(apperr.NotFound("CAMPAIGN_NOT_FOUND", "Campaign not found"))

	_, err := svc.Create(context.Background(), creator, CreateRequest{
		Content:    "tied to a campaign",
		CampaignID: &campaignID,
	})

	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	store.AssertNotCalled(t, "Create")
}
