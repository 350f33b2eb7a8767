package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks OwnerStore,TokenIssuer,TokenRevocationList,LockoutStore

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	jwttoken "aquaria/internal/jwt_token"
	"aquaria/internal/owner/models"
	"aquaria/internal/owner/service/mocks"
	"aquaria/internal/owner/store/lockout"
	id "aquaria/pkg/domain"
	dErrors "aquaria/pkg/domain-errors"
	"aquaria/pkg/platform/sentinel"
	"aquaria/pkg/requestcontext"
	"aquaria/pkg/secrets"
)

type ServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	owners  *mocks.MockOwnerStore
	tokens  *mocks.MockTokenIssuer
	trl     *mocks.MockTokenRevocationList
	service *Service
	ctx     context.Context
	now     time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.owners = mocks.NewMockOwnerStore(s.ctrl)
	s.tokens = mocks.NewMockTokenIssuer(s.ctrl)
	s.trl = mocks.NewMockTokenRevocationList(s.ctrl)
	s.service = New(s.owners, s.tokens, s.trl, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s.now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceSuite) storedOwner(password string) *models.Owner {
	hash, err := secrets.HashPassword(password)
	s.Require().NoError(err)
	return &models.Owner{ID: id.NewOwnerID(), FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", PasswordHash: hash, Role: models.RoleOwner}
}

func (s *ServiceSuite) TestRegister() {
	s.Run("creates owner with hashed password", func() {
		var created *models.Owner
		s.owners.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o *models.Owner) error {
			created = o
			return nil
		})
		owner, err := s.service.Register(s.ctx, RegisterCommand{FirstName: "Ada", LastName: "Lovelace", Email: "ADA@example.com", Password: "correct horse"})
		s.Require().NoError(err)
		s.Equal(created, owner)
		s.Equal("ada@example.com", owner.Email)
		s.Equal(s.now, owner.CreatedAt)
		s.NotEqual("correct horse", owner.PasswordHash)
		s.NoError(secrets.VerifyPassword("correct horse", owner.PasswordHash))
	})

	s.Run("duplicate email is a conflict", func() {
		s.owners.EXPECT().Create(gomock.Any(), gomock.Any()).Return(sentinel.ErrAlreadyUsed)
		_, err := s.service.Register(s.ctx, RegisterCommand{FirstName: "Ada", LastName: "L", Email: "ada@example.com", Password: "correct horse"})
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})

	s.Run("short password never reaches the store", func() {
		_, err := s.service.Register(s.ctx, RegisterCommand{FirstName: "Ada", LastName: "L", Email: "ada@example.com", Password: "short"})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("store failure is internal", func() {
		s.owners.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		_, err := s.service.Register(s.ctx, RegisterCommand{FirstName: "Ada", LastName: "L", Email: "ada@example.com", Password: "correct horse"})
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}

func (s *ServiceSuite) TestLogin() {
	s.Run("issues a token and records the client", func() {
		owner := s.storedOwner("correct horse")
		ctx := requestcontext.WithClientMetadata(s.ctx, "192.0.2.1",
			"Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0")
		issued := jwttoken.IssuedToken{Token: "signed", JTI: "jti-1", ExpiresAt: s.now.Add(time.Minute)}

		s.owners.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(owner, nil)
		s.owners.EXPECT().Save(gomock.Any(), owner).Return(nil)
		s.tokens.EXPECT().GenerateOwnerToken(gomock.Any(), owner.ID, "OWNER").Return(issued, nil)

		res, err := s.service.Login(ctx, " Ada@Example.com ", "correct horse")
		s.Require().NoError(err)
		s.Equal(issued, res.Token)
		s.Require().NotNil(res.Owner.LastLogin)
		s.Equal(s.now, *res.Owner.LastLogin)
		s.Contains(res.Owner.LastLoginClient, "Firefox")
	})

	s.Run("unknown email and wrong password look the same", func() {
		s.owners.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").Return(nil, sentinel.ErrNotFound)
		_, unknownErr := s.service.Login(s.ctx, "nobody@example.com", "whatever1")

		s.owners.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(s.storedOwner("correct horse"), nil)
		_, wrongErr := s.service.Login(s.ctx, "ada@example.com", "wrong horse")

		s.True(dErrors.HasCode(unknownErr, dErrors.CodeUnauthorized))
		s.True(dErrors.HasCode(wrongErr, dErrors.CodeUnauthorized))
		s.Equal(unknownErr.Error(), wrongErr.Error())
	})

	s.Run("store failure is internal", func() {
		s.owners.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
		_, err := s.service.Login(s.ctx, "ada@example.com", "correct horse")
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}

func (s *ServiceSuite) TestGet() {
	owner := &models.Owner{ID: id.NewOwnerID()}
	s.owners.EXPECT().FindByID(gomock.Any(), owner.ID).Return(owner, nil)
	got, err := s.service.Get(s.ctx, owner.ID)
	s.Require().NoError(err)
	s.Equal(owner, got)

	missing := id.NewOwnerID()
	s.owners.EXPECT().FindByID(gomock.Any(), missing).Return(nil, sentinel.ErrNotFound)
	_, err = s.service.Get(s.ctx, missing)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = s.service.Get(s.ctx, id.OwnerID{})
	s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func (s *ServiceSuite) TestLogout() {
	s.trl.EXPECT().RevokeToken(gomock.Any(), "jti-1", 10*time.Minute).Return(nil)
	s.Require().NoError(s.service.Logout(s.ctx, "jti-1", s.now.Add(10*time.Minute)))

	s.True(dErrors.HasCode(s.service.Logout(s.ctx, "", s.now), dErrors.CodeBadRequest))

	s.trl.EXPECT().RevokeToken(gomock.Any(), "jti-2", gomock.Any()).Return(errors.New("redis down"))
	s.True(dErrors.HasCode(s.service.Logout(s.ctx, "jti-2", s.now.Add(time.Minute)), dErrors.CodeInternal))

	s.trl.EXPECT().IsRevoked(gomock.Any(), "jti-1").Return(true, nil)
	revoked, err := s.service.IsTokenRevoked(s.ctx, "jti-1")
	s.Require().NoError(err)
	s.True(revoked)
}

func (s *ServiceSuite) lockedService(store LockoutStore) *Service {
	policy := models.LockoutPolicy{MaxAttempts: 2, Window: time.Minute, LockDuration: 5 * time.Minute}
	return New(s.owners, s.tokens, s.trl,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithLockout(store, policy),
	)
}

func (s *ServiceSuite) TestLoginLockout() {
	s.Run("repeated failures lock the email until the lock lapses", func() {
		svc := s.lockedService(lockout.New())
		owner := s.storedOwner("correct horse")
		s.owners.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(owner, nil).Times(2)

		_, err := svc.Login(s.ctx, "ada@example.com", "wrong horse")
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
		_, err = svc.Login(s.ctx, "ADA@example.com", "wrong horse")
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))

		_, err = svc.Login(s.ctx, "ada@example.com", "correct horse")
		s.True(dErrors.HasCode(err, dErrors.CodeTooManyRequests), "locked before the password is checked")

		later := requestcontext.WithTime(context.Background(), s.now.Add(6*time.Minute))
		s.owners.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(owner, nil)
		s.owners.EXPECT().Save(gomock.Any(), owner).Return(nil)
		s.tokens.EXPECT().GenerateOwnerToken(gomock.Any(), owner.ID, "OWNER").Return(jwttoken.IssuedToken{JTI: "jti"}, nil)
		_, err = svc.Login(later, "ada@example.com", "correct horse")
		s.Require().NoError(err)
	})

	s.Run("unknown emails count towards the lock", func() {
		svc := s.lockedService(lockout.New())
		s.owners.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").Return(nil, sentinel.ErrNotFound).Times(2)
		_, _ = svc.Login(s.ctx, "nobody@example.com", "whatever1")
		_, _ = svc.Login(s.ctx, "nobody@example.com", "whatever1")
		_, err := svc.Login(s.ctx, "nobody@example.com", "whatever1")
		s.True(dErrors.HasCode(err, dErrors.CodeTooManyRequests))
	})

	s.Run("success clears earlier failures", func() {
		store := mocks.NewMockLockoutStore(s.ctrl)
		svc := s.lockedService(store)
		owner := s.storedOwner("correct horse")

		store.EXPECT().Get(gomock.Any(), "ada@example.com").Return(nil, sentinel.ErrNotFound)
		s.owners.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(owner, nil)
		store.EXPECT().Delete(gomock.Any(), "ada@example.com").Return(nil)
		s.owners.EXPECT().Save(gomock.Any(), owner).Return(nil)
		s.tokens.EXPECT().GenerateOwnerToken(gomock.Any(), owner.ID, "OWNER").Return(jwttoken.IssuedToken{JTI: "jti"}, nil)

		_, err := svc.Login(s.ctx, "ada@example.com", "correct horse")
		s.Require().NoError(err)
	})

	s.Run("failure to read the lock is internal", func() {
		store := mocks.NewMockLockoutStore(s.ctrl)
		svc := s.lockedService(store)
		store.EXPECT().Get(gomock.Any(), "ada@example.com").Return(nil, errors.New("redis down"))

		_, err := svc.Login(s.ctx, "ada@example.com", "correct horse")
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})

	s.Run("failure to save the counter keeps the login error", func() {
		store := mocks.NewMockLockoutStore(s.ctrl)
		svc := s.lockedService(store)
		s.owners.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(s.storedOwner("correct horse"), nil)
		store.EXPECT().Get(gomock.Any(), "ada@example.com").Return(nil, sentinel.ErrNotFound).Times(2)
		store.EXPECT().Save(gomock.Any(), gomock.Any(), s.now.Add(time.Minute)).Return(errors.New("redis down"))

		_, err := svc.Login(s.ctx, "ada@example.com", "wrong horse")
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}
