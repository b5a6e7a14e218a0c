// Package services contains server-side business logic. AccountService runs
// the two public credential flows: Register (sign-up) and Authenticate
// (sign-in). Both end by issuing a fresh session token.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrijs2005/blogauth/internal/common"
	"github.com/dmitrijs2005/blogauth/internal/logging"
	"github.com/dmitrijs2005/blogauth/internal/server/auth"
	"github.com/dmitrijs2005/blogauth/internal/server/config"
	"github.com/dmitrijs2005/blogauth/internal/server/models"
	"github.com/dmitrijs2005/blogauth/internal/server/passwords"
	"github.com/dmitrijs2005/blogauth/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/blogauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/blogauth/internal/server/usernames"
	"github.com/dmitrijs2005/blogauth/internal/server/validation"
	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"
)

// insertRetryDelay separates the first insert from the single retry made
// after a username collision.
const insertRetryDelay = 10 * time.Millisecond

// Session is returned by a successful Register or Authenticate.
type Session struct {
	Token        string
	Username     string
	Fullname     string
	ProfileImage string
}

type AccountService struct {
	db                  *sql.DB
	repomanager         repomanager.RepositoryManager
	hasher              *passwords.Hasher
	issuer              *auth.Issuer
	logger              logging.Logger
	hashTimeout         time.Duration
	storeTimeout        time.Duration
	defaultProfileImage string
}

// NewAccountService builds the service from repositories and server config.
// db may be nil when the repository manager does not need one.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) (*AccountService, error) {
	hasher, err := passwords.NewHasher(cfg.BcryptCost, cfg.HashWorkers)
	if err != nil {
		return nil, err
	}
	issuer, err := auth.NewIssuer(cfg.SecretKey, cfg.TokenValidityDuration)
	if err != nil {
		return nil, err
	}

	return &AccountService{
		db:                  db,
		repomanager:         m,
		hasher:              hasher,
		issuer:              issuer,
		logger:              logger.With("module", "accounts"),
		hashTimeout:         cfg.HashTimeout,
		storeTimeout:        cfg.StoreTimeout,
		defaultProfileImage: cfg.DefaultProfileImage,
	}, nil
}

// Register validates the sign-up form, stores a new account and returns a
// session for it.
//
// Errors: a common.ErrorValidation descendant, common.ErrEmailExists or
// common.ErrorInternal.
func (s *AccountService) Register(ctx context.Context, fullname, email, password string) (*Session, error) {
	if err := validation.ValidateRegistration(fullname, email, password); err != nil {
		return nil, err
	}

	repo := s.repomanager.Accounts(s.db)
	allocator := usernames.NewAllocator(repo)

	draft := &models.Account{Email: email, Fullname: fullname}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hctx, cancel := withTimeout(gctx, s.hashTimeout)
		defer cancel()

		hash, err := s.hasher.Hash(hctx, password)
		if err != nil {
			return err
		}
		draft.PasswordHash = hash
		return nil
	})
	g.Go(func() error {
		username, err := s.allocateUsername(gctx, allocator, email)
		if err != nil {
			return err
		}
		draft.Username = username
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, s.internal(ctx, "preparing account", err)
	}
	draft.ProfileImage = s.profileImageFor(draft.Username)

	account, err := s.insert(ctx, repo, allocator, draft)
	if err != nil {
		var conflict *accounts.ConflictError
		if errors.As(err, &conflict) && conflict.Field == accounts.FieldEmail {
			return nil, common.ErrEmailExists
		}
		return nil, s.internal(ctx, "inserting account", err)
	}

	session, err := s.sessionFor(account)
	if err != nil {
		return nil, s.internal(ctx, "issuing token", err)
	}

	s.logger.Info(ctx, "Account registered", "account_id", account.ID, "username", account.Username)
	return session, nil
}

// Authenticate checks an email/password pair and returns a session for the
// matching account. Input format is not validated here; an unknown or
// malformed email simply is not found.
//
// Errors: common.ErrEmailNotFound, common.ErrIncorrectPassword or
// common.ErrorInternal.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	repo := s.repomanager.Accounts(s.db)

	sctx, cancel := withTimeout(ctx, s.storeTimeout)
	account, err := repo.FindByEmail(sctx, email)
	cancel()
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrEmailNotFound
		}
		return nil, s.internal(ctx, "looking up account", err)
	}

	hctx, cancel := withTimeout(ctx, s.hashTimeout)
	ok, err := s.hasher.Verify(hctx, password, account.PasswordHash)
	cancel()
	if err != nil {
		return nil, s.internal(ctx, "verifying password", err, "account_id", account.ID)
	}
	if !ok {
		return nil, common.ErrIncorrectPassword
	}

	session, err := s.sessionFor(account)
	if err != nil {
		return nil, s.internal(ctx, "issuing token", err)
	}

	return session, nil
}

func (s *AccountService) allocateUsername(ctx context.Context, allocator *usernames.Allocator, email string) (string, error) {
	sctx, cancel := withTimeout(ctx, s.storeTimeout)
	defer cancel()
	return allocator.Allocate(sctx, email)
}

// insert stores draft. If the username was taken in the meantime a new one
// is allocated and the insert is tried exactly once more.
func (s *AccountService) insert(ctx context.Context, repo accounts.Repository, allocator *usernames.Allocator, draft *models.Account) (*models.Account, error) {
	var (
		account *models.Account
		attempt int
	)

	b := retry.WithMaxRetries(1, retry.NewConstant(insertRetryDelay))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		if attempt > 1 {
			s.logger.Warn(ctx, "Username taken concurrently, reallocating", "username", draft.Username)
			username, err := s.allocateUsername(ctx, allocator, draft.Email)
			if err != nil {
				return err
			}
			draft.Username = username
			draft.ProfileImage = s.profileImageFor(username)
		}

		sctx, cancel := withTimeout(ctx, s.storeTimeout)
		defer cancel()

		a, err := repo.Insert(sctx, draft)
		if err == nil {
			account = a
			return nil
		}

		var conflict *accounts.ConflictError
		if errors.As(err, &conflict) && conflict.Field == accounts.FieldUsername {
			return retry.RetryableError(err)
		}
		return err
	})

	return account, err
}

func (s *AccountService) sessionFor(a *models.Account) (*Session, error) {
	token, err := s.issuer.Issue(a.ID)
	if err != nil {
		return nil, err
	}
	return &Session{
		Token:        token,
		Username:     a.Username,
		Fullname:     a.Fullname,
		ProfileImage: a.ProfileImage,
	}, nil
}

func (s *AccountService) profileImageFor(username string) string {
	if s.defaultProfileImage == "" {
		return ""
	}
	return s.defaultProfileImage + url.QueryEscape(username)
}

// internal logs err with its details and returns the opaque
// common.ErrorInternal for the caller.
func (s *AccountService) internal(ctx context.Context, step string, err error, args ...any) error {
	args = append(args, "step", step, "error", err)
	if errors.Is(err, context.Canceled) {
		s.logger.Warn(ctx, "Request abandoned", args...)
	} else {
		s.logger.Error(ctx, "Internal error", args...)
	}
	return fmt.Errorf("%w: %s", common.ErrorInternal, step)
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
