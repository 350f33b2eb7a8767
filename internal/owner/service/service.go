package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	jwttoken "aquaria/internal/jwt_token"
	"aquaria/internal/owner/models"
	"aquaria/internal/platform/metrics"
	id "aquaria/pkg/domain"
	dErrors "aquaria/pkg/domain-errors"
	"aquaria/pkg/platform/audit"
	"aquaria/pkg/platform/sentinel"
	platformsync "aquaria/pkg/platform/sync"
	"aquaria/pkg/requestcontext"
	"aquaria/pkg/secrets"
)

type OwnerStore interface {
	Create(ctx context.Context, owner *models.Owner) error
	Save(ctx context.Context, owner *models.Owner) error
	FindByID(ctx context.Context, ownerID id.OwnerID) (*models.Owner, error)
	FindByEmail(ctx context.Context, email string) (*models.Owner, error)
}

type TokenIssuer interface {
	GenerateOwnerToken(ctx context.Context, ownerID id.OwnerID, role string) (jwttoken.IssuedToken, error)
}

type TokenRevocationList interface {
	RevokeToken(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// LockoutStore keeps failed-login counters keyed by normalized email.
// Get returns sentinel.ErrNotFound when no live record exists.
type LockoutStore interface {
	Get(ctx context.Context, key string) (*models.LoginLockout, error)
	Save(ctx context.Context, lockout *models.LoginLockout, expiresAt time.Time) error
	Delete(ctx context.Context, key string) error
}

// Service registers owners and issues and revokes their access tokens.
type Service struct {
	owners       OwnerStore
	tokens       TokenIssuer
	trl          TokenRevocationList
	lockouts     LockoutStore
	policy       models.LockoutPolicy
	lockoutMu    *platformsync.ShardedMutex
	logger       *slog.Logger
	auditEmitter audit.Emitter
	audit        *audit.Logger
	metrics      *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithAuditEmitter persists audit events in addition to the audit log lines.
func WithAuditEmitter(emitter audit.Emitter) Option {
	return func(s *Service) {
		s.auditEmitter = emitter
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithLockout locks an email out of login after repeated failures.
func WithLockout(store LockoutStore, policy models.LockoutPolicy) Option {
	return func(s *Service) {
		s.lockouts = store
		s.policy = policy
	}
}

func New(owners OwnerStore, tokens TokenIssuer, trl TokenRevocationList, opts ...Option) *Service {
	s := &Service{
		owners:    owners,
		tokens:    tokens,
		trl:       trl,
		policy:    models.DefaultLockoutPolicy(),
		lockoutMu: platformsync.NewShardedMutex(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.audit = audit.NewLogger(s.logger, s.auditEmitter)
	return s
}

type RegisterCommand struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (*models.Owner, error) {
	if err := models.ValidatePassword(cmd.Password); err != nil {
		return nil, err
	}
	hash, err := secrets.HashPassword(cmd.Password)
	if err != nil {
		return nil, err
	}
	owner, err := models.NewOwner(id.NewOwnerID(), models.NewOwnerParams{
		FirstName:    cmd.FirstName,
		LastName:     cmd.LastName,
		Email:        cmd.Email,
		PasswordHash: hash,
	}, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.owners.Create(ctx, owner); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return nil, dErrors.New(dErrors.CodeConflict, "email is already registered")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create owner")
	}

	s.logAudit(ctx, audit.EventOwnerRegistered, "owner_id", owner.ID)
	if s.metrics != nil {
		s.metrics.IncrementOwnersRegistered()
	}
	return owner, nil
}

type LoginResult struct {
	Owner *models.Owner
	Token jwttoken.IssuedToken
}

// Login answers unknown emails and wrong passwords with the same error.
// With a lockout store configured, a locked email is rejected before the
// password is checked.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	key := models.NormalizeEmail(email)
	if err := s.checkLockout(ctx, key); err != nil {
		return nil, err
	}
	owner, err := s.owners.FindByEmail(ctx, key)
	if err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load owner")
		}
		_ = secrets.VerifyPassword(password, dummyHash()) //nolint:errcheck // equalizes timing for unknown emails
		return nil, s.loginFailed(ctx, key, "unknown_email")
	}
	if err := secrets.VerifyPassword(password, owner.PasswordHash); err != nil {
		if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
			return nil, s.loginFailed(ctx, key, "wrong_password", "owner_id", owner.ID)
		}
		return nil, err
	}
	s.clearLockout(ctx, key)

	owner.RecordLogin(requestcontext.UserAgent(ctx), requestcontext.Now(ctx))
	if err := s.owners.Save(ctx, owner); err != nil {
		return nil, wrapOwnerErr(err, "failed to record login")
	}
	token, err := s.tokens.GenerateOwnerToken(ctx, owner.ID, string(owner.Role))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue token")
	}

	s.logAudit(ctx, audit.EventOwnerLoggedIn, "owner_id", owner.ID, "client", owner.LastLoginClient)
	if s.metrics != nil {
		s.metrics.IncrementLogins()
	}
	return &LoginResult{Owner: owner, Token: token}, nil
}

func (s *Service) Get(ctx context.Context, ownerID id.OwnerID) (*models.Owner, error) {
	if ownerID.IsNil() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "owner ID required")
	}
	owner, err := s.owners.FindByID(ctx, ownerID)
	if err != nil {
		return nil, wrapOwnerErr(err, "failed to load owner")
	}
	return owner, nil
}

// Logout revokes the token until it would have expired anyway.
func (s *Service) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if jti == "" {
		return dErrors.New(dErrors.CodeBadRequest, "token id required")
	}
	ttl := expiresAt.Sub(requestcontext.Now(ctx))
	if err := s.trl.RevokeToken(ctx, jti, ttl); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to revoke token")
	}
	s.logAudit(ctx, audit.EventOwnerLoggedOut, "owner_id", requestcontext.OwnerID(ctx))
	if s.metrics != nil {
		s.metrics.IncrementLogouts()
	}
	return nil
}

// IsTokenRevoked lets the auth middleware consult the revocation list.
func (s *Service) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	return s.trl.IsRevoked(ctx, jti)
}

func (s *Service) loginFailed(ctx context.Context, key, reason string, attributes ...any) error {
	s.logAudit(ctx, audit.EventOwnerLoginFailed, append(attributes, "reason", reason)...)
	if s.metrics != nil {
		s.metrics.IncrementAuthFailures()
	}
	s.recordFailure(ctx, key, attributes...)
	return dErrors.New(dErrors.CodeUnauthorized, "invalid email or password")
}

func (s *Service) checkLockout(ctx context.Context, key string) error {
	if s.lockouts == nil {
		return nil
	}
	l, err := s.lockouts.Get(ctx, key)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check login lockout")
	}
	if l.IsLocked(requestcontext.Now(ctx)) {
		return dErrors.New(dErrors.CodeTooManyRequests, "too many failed login attempts, try again later")
	}
	return nil
}

// recordFailure serializes the read-modify-write per email within this
// process. Store errors are logged and never replace the login error.
func (s *Service) recordFailure(ctx context.Context, key string, attributes ...any) {
	if s.lockouts == nil {
		return
	}
	var l *models.LoginLockout
	var lockedNow bool
	var err error
	s.lockoutMu.WithLock(key, func() {
		l, err = s.lockouts.Get(ctx, key)
		if err != nil {
			if !errors.Is(err, sentinel.ErrNotFound) {
				return
			}
			l = models.NewLoginLockout(key)
		}
		lockedNow = l.RegisterFailure(s.policy, requestcontext.Now(ctx))
		err = s.lockouts.Save(ctx, l, l.ExpiresAt(s.policy))
	})
	if err != nil {
		s.warn(ctx, "failed to record login failure", "error", err)
		return
	}
	if lockedNow {
		s.logAudit(ctx, audit.EventOwnerLockedOut, append(attributes, "locked_until", l.LockedUntil)...)
		if s.metrics != nil {
			s.metrics.IncrementLockouts()
		}
	}
}

func (s *Service) clearLockout(ctx context.Context, key string) {
	if s.lockouts == nil {
		return
	}
	if err := s.lockouts.Delete(ctx, key); err != nil {
		s.warn(ctx, "failed to clear login lockout", "error", err)
	}
}

// logAudit never fails the owner operation; emitter errors are logged.
func (s *Service) logAudit(ctx context.Context, event audit.AuditEvent, attributes ...any) {
	if err := s.audit.Log(ctx, event, attributes...); err != nil {
		s.warn(ctx, "failed to record audit event", "event", string(event), "error", err)
	}
}

func (s *Service) warn(ctx context.Context, msg string, args ...any) {
	if s.logger != nil {
		s.logger.WarnContext(ctx, msg, args...)
	}
}

func wrapOwnerErr(err error, action string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "owner not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}

var (
	dummyOnce sync.Once
	dummy     string
)

func dummyHash() string {
	dummyOnce.Do(func() {
		dummy, _ = secrets.HashPassword("aquaria-dummy-password") //nolint:errcheck // constant input
	})
	return dummy
}
