package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/internal/domain/mocks"
	"github.com/sagestone/sagestone/pkg/logger"
)

type contactServiceMocks struct {
	transactor  *mocks.MockTransactor
	repo        *mocks.MockContactRepository
	tagRepo     *mocks.MockTagRepository
	authService *mocks.MockAuthService
}

func setupContactService(t *testing.T) (*ContactService, contactServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := contactServiceMocks{
		transactor:  mocks.NewMockTransactor(ctrl),
		repo:        mocks.NewMockContactRepository(ctrl),
		tagRepo:     mocks.NewMockTagRepository(ctrl),
		authService: mocks.NewMockAuthService(ctrl),
	}
	svc := NewContactService(ContactServiceConfig{
		Transactor:        m.transactor,
		ContactRepository: m.repo,
		TagRepository:     m.tagRepo,
		AuthService:       m.authService,
		Logger:            logger.NewNoopLogger(),
	})
	return svc, m
}

func ownerOf(workspaceID string) *domain.WorkspaceMember {
	return &domain.WorkspaceMember{UserID: "u1", WorkspaceID: workspaceID, Role: domain.MemberRoleOwner}
}

func TestContactService_ListContacts(t *testing.T) {
	t.Run("page with tags", func(t *testing.T) {
		svc, m := setupContactService(t)
		params := domain.ListContactsParams{WorkspaceID: "w1", Search: " john ", Page: 2, Limit: 10}
		expected := domain.ListContactsParams{WorkspaceID: "w1", Search: "john", Page: 2, Limit: 10}

		m.authService.EXPECT().AuthenticateUserForWorkspace(gomock.Any(), "w1").Return(ownerOf("w1"), nil)
		m.repo.EXPECT().List(gomock.Any(), expected).Return([]*domain.Contact{
			{ID: "c1", WorkspaceID: "w1", Email: "john@example.com"},
			{ID: "c2", WorkspaceID: "w1", Email: "johnny@example.com"},
		}, nil)
		m.repo.EXPECT().Count(gomock.Any(), expected).Return(15, nil)
		m.tagRepo.EXPECT().ListForContacts(gomock.Any(), []string{"c1", "c2"}).Return(map[string][]*domain.Tag{
			"c1": {{ID: "t1", Name: "VIP"}},
		}, nil)

		resp, err := svc.ListContacts(context.Background(), params)
		require.NoError(t, err)
		require.Len(t, resp.Contacts, 2)
		assert.Equal(t, "VIP", resp.Contacts[0].Tags[0].Name)
		assert.NotNil(t, resp.Contacts[1].Tags)
		assert.Empty(t, resp.Contacts[1].Tags)
		assert.Equal(t, domain.Pagination{Page: 2, Limit: 10, Total: 15, TotalPages: 2}, resp.Pagination)
	})

	t.Run("defaults and caps paging", func(t *testing.T) {
		svc, m := setupContactService(t)
		expected := domain.ListContactsParams{WorkspaceID: "w1", Page: 1, Limit: domain.MaxLimit}

		m.authService.EXPECT().AuthenticateUserForWorkspace(gomock.Any(), "w1").Return(ownerOf("w1"), nil)
		m.repo.EXPECT().List(gomock.Any(), expected).Return([]*domain.Contact{}, nil)
		m.repo.EXPECT().Count(gomock.Any(), expected).Return(0, nil)

		resp, err := svc.ListContacts(context.Background(), domain.ListContactsParams{WorkspaceID: "w1", Page: 0, Limit: 500})
		require.NoError(t, err)
		assert.Empty(t, resp.Contacts)
		assert.Equal(t, 0, resp.Pagination.TotalPages)
	})

	t.Run("missing workspace", func(t *testing.T) {
		svc, _ := setupContactService(t)

		_, err := svc.ListContacts(context.Background(), domain.ListContactsParams{})
		var validation domain.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "Workspace ID is required", validation.Message)
	})

	t.Run("not a member", func(t *testing.T) {
		svc, m := setupContactService(t)
		m.authService.EXPECT().AuthenticateUserForWorkspace(gomock.Any(), "w2").Return(nil, &domain.ErrForbidden{})

		_, err := svc.ListContacts(context.Background(), domain.ListContactsParams{WorkspaceID: "w2"})
		var forbidden *domain.ErrForbidden
		assert.ErrorAs(t, err, &forbidden)
	})

	t.Run("count fails", func(t *testing.T) {
		svc, m := setupContactService(t)
		m.authService.EXPECT().AuthenticateUserForWorkspace(gomock.Any(), "w1").Return(ownerOf("w1"), nil)
		m.repo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*domain.Contact{}, nil).AnyTimes()
		m.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, &domain.ErrDatabaseUnavailable{Err: errors.New("refused")})

		_, err := svc.ListContacts(context.Background(), domain.ListContactsParams{WorkspaceID: "w1"})
		var unavailable *domain.ErrDatabaseUnavailable
		assert.ErrorAs(t, err, &unavailable)
	})
}

func TestContactService_CreateContact(t *testing.T) {
	req := domain.CreateContactRequest{
		WorkspaceID: "w1",
		Email:       "jane@example.com",
		FirstName:   "Jane",
		Tags:        []string{"VIP", " Lead ", "VIP", ""},
	}

	t.Run("creates contact and links tags", func(t *testing.T) {
		svc, m := setupContactService(t)

		m.authService.EXPECT().AuthenticateUserForWorkspace(gomock.Any(), "w1").Return(ownerOf("w1"), nil)
		runInline(m.transactor)
		m.repo.EXPECT().GetByEmailTx(gomock.Any(), gomock.Nil(), "w1", "jane@example.com").Return(nil, nil)
		m.repo.EXPECT().CreateTx(gomock.Any(), gomock.Nil(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sql.Tx, c *domain.Contact) error {
			assert.Equal(t, domain.ContactStatusActive, c.Status)
			c.ID = "c1"
			return nil
		})
		m.tagRepo.EXPECT().UpsertByNameTx(gomock.Any(), gomock.Nil(), "w1", "VIP").Return(&domain.Tag{ID: "t1", Name: "VIP"}, nil)
		m.tagRepo.EXPECT().UpsertByNameTx(gomock.Any(), gomock.Nil(), "w1", "Lead").Return(&domain.Tag{ID: "t2", Name: "Lead"}, nil)
		m.repo.EXPECT().SetTagsTx(gomock.Any(), gomock.Nil(), "c1", []string{"t1", "t2"}, false).Return(nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "w1", "c1").Return(&domain.Contact{ID: "c1", WorkspaceID: "w1", Email: "jane@example.com"}, nil)
		m.tagRepo.EXPECT().ListForContacts(gomock.Any(), []string{"c1"}).Return(map[string][]*domain.Tag{
			"c1": {{ID: "t2", Name: "Lead"}, {ID: "t1", Name: "VIP"}},
		}, nil)

		contact, err := svc.CreateContact(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "c1", contact.ID)
		assert.Len(t, contact.Tags, 2)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, m := setupContactService(t)

		m.authService.EXPECT().AuthenticateUserForWorkspace(gomock.Any(), "w1").Return(ownerOf("w1"), nil)
		runInline(m.transactor)
		m.repo.EXPECT().GetByEmailTx(gomock.Any(), gomock.Nil(), "w1", "jane@example.com").
			Return(&domain.Contact{ID: "c0"}, nil)

		_, err := svc.CreateContact(context.Background(), req)
		var exists *domain.ErrContactExists
		require.ErrorAs(t, err, &exists)
		assert.Equal(t, "Contact with this email already exists", err.Error())
	})

	t.Run("tag upsert failure aborts", func(t *testing.T) {
		svc, m := setupContactService(t)

		m.authService.EXPECT().AuthenticateUserForWorkspace(gomock.Any(), "w1").Return(ownerOf("w1"), nil)
		runInline(m.transactor)
		m.repo.EXPECT().GetByEmailTx(gomock.Any(), gomock.Nil(), "w1", "jane@example.com").Return(nil, nil)
		m.repo.EXPECT().CreateTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)
		m.tagRepo.EXPECT().UpsertByNameTx(gomock.Any(), gomock.Nil(), "w1", "VIP").Return(nil, errors.New("boom"))

		_, err := svc.CreateContact(context.Background(), req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `failed to upsert tag "VIP"`)
	})

	t.Run("missing email", func(t *testing.T) {
		svc, _ := setupContactService(t)

		_, err := svc.CreateContact(context.Background(), domain.CreateContactRequest{WorkspaceID: "w1"})
		var validation domain.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, "Workspace ID and email are required", validation.Message)
	})
}

func TestContactService_UpdateContact(t *testing.T) {
	t.Run("replaces tags", func(t *testing.T) {
		svc, m := setupContactService(t)
		tags := []string{"Customer"}

		m.authService.EXPECT().AuthenticateUserForWorkspace(gomock.Any(), "w1").Return(ownerOf("w1"), nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "w1", "c1").Return(&domain.Contact{ID: "c1", WorkspaceID: "w1", Status: domain.ContactStatusActive}, nil)
		runInline(m.transactor)
		m.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sql.Tx, c *domain.Contact) error {
			assert.Equal(t, "Acme", c.Company)
			assert.Equal(t, domain.ContactStatusUnsubscribed, c.Status)
			return nil
		})
		m.tagRepo.EXPECT().UpsertByNameTx(gomock.Any(), gomock.Nil(), "w1", "Customer").Return(&domain.Tag{ID: "t3"}, nil)
		m.repo.EXPECT().SetTagsTx(gomock.Any(), gomock.Nil(), "c1", []string{"t3"}, true).Return(nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "w1", "c1").Return(&domain.Contact{ID: "c1", WorkspaceID: "w1", Company: "Acme"}, nil)
		m.tagRepo.EXPECT().ListForContacts(gomock.Any(), []string{"c1"}).Return(map[string][]*domain.Tag{}, nil)

		contact, err := svc.UpdateContact(context.Background(), "w1", "c1", domain.UpdateContactRequest{
			Company: "Acme",
			Status:  domain.ContactStatusUnsubscribed,
			Tags:    &tags,
		})
		require.NoError(t, err)
		assert.Equal(t, "Acme", contact.Company)
	})

	t.Run("nil tags leaves links alone", func(t *testing.T) {
		svc, m := setupContactService(t)

		m.authService.EXPECT().AuthenticateUserForWorkspace(gomock.Any(), "w1").Return(ownerOf("w1"), nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "w1", "c1").Return(&domain.Contact{ID: "c1", WorkspaceID: "w1", Status: domain.ContactStatusActive}, nil).Times(2)
		runInline(m.transactor)
		m.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)
		m.tagRepo.EXPECT().ListForContacts(gomock.Any(), []string{"c1"}).Return(nil, nil)

		contact, err := svc.UpdateContact(context.Background(), "w1", "c1", domain.UpdateContactRequest{FirstName: "Jo"})
		require.NoError(t, err)
		assert.Equal(t, domain.ContactStatusActive, contact.Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		svc, _ := setupContactService(t)

		_, err := svc.UpdateContact(context.Background(), "w1", "c1", domain.UpdateContactRequest{Status: "gone"})
		var validation domain.ValidationError
		assert.ErrorAs(t, err, &validation)
	})

	t.Run("contact in another workspace", func(t *testing.T) {
		svc, m := setupContactService(t)

		m.authService.EXPECT().AuthenticateUserForWorkspace(gomock.Any(), "w1").Return(ownerOf("w1"), nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "w1", "c9").Return(nil, &domain.ErrNotFound{Entity: "contact", ID: "c9"})

		_, err := svc.UpdateContact(context.Background(), "w1", "c9", domain.UpdateContactRequest{})
		var notFound *domain.ErrNotFound
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestContactService_GetAndDelete(t *testing.T) {
	svc, m := setupContactService(t)
	ctx := context.Background()

	m.authService.EXPECT().AuthenticateUserForWorkspace(ctx, "w1").Return(ownerOf("w1"), nil).Times(2)
	m.repo.EXPECT().GetByID(ctx, "w1", "c1").Return(&domain.Contact{ID: "c1"}, nil)
	m.tagRepo.EXPECT().ListForContacts(ctx, []string{"c1"}).Return(map[string][]*domain.Tag{}, nil)
	m.repo.EXPECT().Delete(ctx, "w1", "c1").Return(nil)

	contact, err := svc.GetContact(ctx, "w1", "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", contact.ID)

	require.NoError(t, svc.DeleteContact(ctx, "w1", "c1"))
}
