package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/sagestone/sagestone/internal/domain"
	"github.com/sagestone/sagestone/pkg/logger"
	"github.com/sagestone/sagestone/pkg/tracing"
)

type ContactService struct {
	transactor  domain.Transactor
	repo        domain.ContactRepository
	tagRepo     domain.TagRepository
	authService domain.AuthService
	logger      logger.Logger
}

type ContactServiceConfig struct {
	Transactor        domain.Transactor
	ContactRepository domain.ContactRepository
	TagRepository     domain.TagRepository
	AuthService       domain.AuthService
	Logger            logger.Logger
}

func NewContactService(cfg ContactServiceConfig) *ContactService {
	return &ContactService{
		transactor:  cfg.Transactor,
		repo:        cfg.ContactRepository,
		tagRepo:     cfg.TagRepository,
		authService: cfg.AuthService,
		logger:      cfg.Logger,
	}
}

var _ domain.ContactService = (*ContactService)(nil)

// ListContacts returns one page of the workspace's contacts, newest first, with their tags.
// The page and the total count are read concurrently.
func (s *ContactService) ListContacts(ctx context.Context, params domain.ListContactsParams) (*domain.ListContactsResponse, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "ContactService", "ListContacts")
	tracing.AddAttribute(ctx, "workspace_id", params.WorkspaceID)
	result, err := s.listContacts(ctx, params)
	tracing.EndSpan(span, err)
	return result, err
}

func (s *ContactService) listContacts(ctx context.Context, params domain.ListContactsParams) (*domain.ListContactsResponse, error) {
	if strings.TrimSpace(params.WorkspaceID) == "" {
		return nil, domain.NewValidationError("Workspace ID is required")
	}
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, params.WorkspaceID); err != nil {
		return nil, err
	}

	if params.Page < 1 {
		params.Page = domain.DefaultPage
	}
	if params.Limit < 1 {
		params.Limit = domain.DefaultLimit
	}
	if params.Limit > domain.MaxLimit {
		params.Limit = domain.MaxLimit
	}
	params.Search = strings.TrimSpace(params.Search)

	var (
		contacts []*domain.Contact
		total    int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		contacts, err = s.repo.List(gctx, params)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gctx, params)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.WithField("workspace_id", params.WorkspaceID).WithField("error", err.Error()).Error("Failed to list contacts")
		return nil, err
	}

	if err := s.attachTags(ctx, contacts); err != nil {
		return nil, err
	}

	return &domain.ListContactsResponse{
		Contacts:   contacts,
		Pagination: domain.NewPagination(params.Page, params.Limit, total),
	}, nil
}

// CreateContact inserts the contact and links each named tag, creating missing tags.
// Everything runs in one transaction so a duplicate email leaves no partial rows.
func (s *ContactService) CreateContact(ctx context.Context, req domain.CreateContactRequest) (*domain.Contact, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "ContactService", "CreateContact")
	tracing.AddAttribute(ctx, "workspace_id", req.WorkspaceID)
	contact, err := s.createContact(ctx, req)
	tracing.EndSpan(span, err)
	return contact, err
}

func (s *ContactService) createContact(ctx context.Context, req domain.CreateContactRequest) (*domain.Contact, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, req.WorkspaceID); err != nil {
		return nil, err
	}

	contact := &domain.Contact{
		WorkspaceID: req.WorkspaceID,
		Email:       strings.TrimSpace(req.Email),
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Phone:       strings.TrimSpace(req.Phone),
		Company:     strings.TrimSpace(req.Company),
		Status:      domain.ContactStatusActive,
	}
	if err := contact.Validate(); err != nil {
		return nil, err
	}
	tagNames := domain.NormalizeTagNames(req.Tags)

	err := s.transactor.WithTransaction(ctx, func(tx *sql.Tx) error {
		existing, err := s.repo.GetByEmailTx(ctx, tx, contact.WorkspaceID, contact.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return &domain.ErrContactExists{WorkspaceID: contact.WorkspaceID, Email: contact.Email}
		}

		if err := s.repo.CreateTx(ctx, tx, contact); err != nil {
			return err
		}
		return s.linkTagsTx(ctx, tx, contact, tagNames, false)
	})
	if err != nil {
		return nil, s.contactWriteError(contact, err, "Failed to create contact")
	}

	return s.loadContact(ctx, contact.WorkspaceID, contact.ID)
}

func (s *ContactService) GetContact(ctx context.Context, workspaceID, id string) (*domain.Contact, error) {
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, workspaceID); err != nil {
		return nil, err
	}
	return s.loadContact(ctx, workspaceID, id)
}

// UpdateContact replaces the editable fields; req.Tags, when set, replaces the tag set
func (s *ContactService) UpdateContact(ctx context.Context, workspaceID, id string, req domain.UpdateContactRequest) (*domain.Contact, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "ContactService", "UpdateContact")
	contact, err := s.updateContact(ctx, workspaceID, id, req)
	tracing.EndSpan(span, err)
	return contact, err
}

func (s *ContactService) updateContact(ctx context.Context, workspaceID, id string, req domain.UpdateContactRequest) (*domain.Contact, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, workspaceID); err != nil {
		return nil, err
	}

	contact, err := s.repo.GetByID(ctx, workspaceID, id)
	if err != nil {
		return nil, err
	}

	contact.FirstName = strings.TrimSpace(req.FirstName)
	contact.LastName = strings.TrimSpace(req.LastName)
	contact.Phone = strings.TrimSpace(req.Phone)
	contact.Company = strings.TrimSpace(req.Company)
	if req.Status != "" {
		contact.Status = req.Status
	}

	err = s.transactor.WithTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, contact); err != nil {
			return err
		}
		if req.Tags == nil {
			return nil
		}
		return s.linkTagsTx(ctx, tx, contact, domain.NormalizeTagNames(*req.Tags), true)
	})
	if err != nil {
		return nil, s.contactWriteError(contact, err, "Failed to update contact")
	}

	return s.loadContact(ctx, workspaceID, id)
}

func (s *ContactService) DeleteContact(ctx context.Context, workspaceID, id string) error {
	if _, err := s.authService.AuthenticateUserForWorkspace(ctx, workspaceID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, workspaceID, id); err != nil {
		s.logger.WithField("contact_id", id).WithField("error", err.Error()).Error("Failed to delete contact")
		return err
	}
	return nil
}

func (s *ContactService) linkTagsTx(ctx context.Context, tx *sql.Tx, contact *domain.Contact, names []string, replace bool) error {
	if len(names) == 0 && !replace {
		return nil
	}
	tagIDs := make([]string, 0, len(names))
	for _, name := range names {
		tag, err := s.tagRepo.UpsertByNameTx(ctx, tx, contact.WorkspaceID, name)
		if err != nil {
			return fmt.Errorf("failed to upsert tag %q: %w", name, err)
		}
		tagIDs = append(tagIDs, tag.ID)
	}
	return s.repo.SetTagsTx(ctx, tx, contact.ID, tagIDs, replace)
}

func (s *ContactService) loadContact(ctx context.Context, workspaceID, id string) (*domain.Contact, error) {
	contact, err := s.repo.GetByID(ctx, workspaceID, id)
	if err != nil {
		return nil, err
	}
	if err := s.attachTags(ctx, []*domain.Contact{contact}); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) attachTags(ctx context.Context, contacts []*domain.Contact) error {
	if len(contacts) == 0 {
		return nil
	}
	ids := make([]string, len(contacts))
	for i, c := range contacts {
		ids[i] = c.ID
	}
	tags, err := s.tagRepo.ListForContacts(ctx, ids)
	if err != nil {
		s.logger.WithField("error", err.Error()).Error("Failed to load contact tags")
		return err
	}
	for _, c := range contacts {
		c.Tags = tags[c.ID]
		if c.Tags == nil {
			c.Tags = []*domain.Tag{}
		}
	}
	return nil
}

func (s *ContactService) contactWriteError(contact *domain.Contact, err error, msg string) error {
	var exists *domain.ErrContactExists
	if !errors.As(err, &exists) {
		s.logger.WithField("workspace_id", contact.WorkspaceID).WithField("error", err.Error()).Error(msg)
	}
	return err
}
