package http

import (
	"context"
	"strings"
	"sync"
	"time"

	"booking/internal/domain/entity"
	"booking/internal/domain/repository"
	"booking/internal/errors"

	"github.com/google/uuid"
)

// memoryAccounts is an AccountRepository over a map, with the same visibility
// rules as the PostgreSQL one: inactive accounts are never found.
type memoryAccounts struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*entity.Account
}

func newMemoryAccounts() *memoryAccounts {
	return &memoryAccounts{byID: make(map[uuid.UUID]*entity.Account)}
}

func cloneAccount(a *entity.Account) *entity.Account {
	clone := *a
	if a.PasswordChangedAt != nil {
		changedAt := *a.PasswordChangedAt
		clone.PasswordChangedAt = &changedAt
	}
	if a.PasswordResetTokenHash != nil {
		digest := *a.PasswordResetTokenHash
		clone.PasswordResetTokenHash = &digest
	}
	if a.PasswordResetExpiresAt != nil {
		expiresAt := *a.PasswordResetExpiresAt
		clone.PasswordResetExpiresAt = &expiresAt
	}

	return &clone
}

func (m *memoryAccounts) find(match func(*entity.Account) bool) (*entity.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, account := range m.byID {
		if account.Active && match(account) {
			return cloneAccount(account), nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (m *memoryAccounts) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	return m.find(func(a *entity.Account) bool { return a.ID == id })
}

func (m *memoryAccounts) FindByIDWithPassword(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return m.FindByID(ctx, id)
}

func (m *memoryAccounts) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	email = entity.NormalizeEmail(email)

	return m.find(func(a *entity.Account) bool { return a.Email == email })
}

func (m *memoryAccounts) FindByResetTokenHash(_ context.Context, digest string, now time.Time) (*entity.Account, error) {
	return m.find(func(a *entity.Account) bool {
		return a.HasPendingReset() && *a.PasswordResetTokenHash == digest && a.PasswordResetExpiresAt.After(now)
	})
}

func (m *memoryAccounts) Create(_ context.Context, account *entity.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.byID {
		if existing.Email == account.Email {
			return errors.Wrap(repository.ErrEmailTaken, "create account")
		}
	}

	now := time.Now()
	account.ID = uuid.New()
	account.CreatedAt = now
	account.UpdatedAt = now
	m.byID[account.ID] = cloneAccount(account)

	return nil
}

func (m *memoryAccounts) Update(_ context.Context, account *entity.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for id, existing := range m.byID {
		if id != account.ID && existing.Email == account.Email {
			return errors.Wrap(repository.ErrEmailTaken, "email already exists")
		}
	}

	stored, ok := m.byID[account.ID]
	if !ok || !stored.Active {
		return repository.ErrAccountNotFound
	}
	*stored = *cloneAccount(account)
	stored.UpdatedAt = time.Now()

	return nil
}

func (m *memoryAccounts) SetPasswordResetToken(_ context.Context, id uuid.UUID, digest string, expiresAt time.Time) error {
	return m.mutate(id, func(stored *entity.Account) { stored.SetPasswordReset(digest, expiresAt) })
}

func (m *memoryAccounts) ClearPasswordResetToken(_ context.Context, id uuid.UUID) error {
	return m.mutate(id, func(stored *entity.Account) { stored.ClearPasswordReset() })
}

func (m *memoryAccounts) Deactivate(_ context.Context, id uuid.UUID) error {
	return m.mutate(id, func(stored *entity.Account) { stored.Active = false })
}

func (m *memoryAccounts) mutate(id uuid.UUID, fn func(*entity.Account)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.byID[id]
	if !ok || !stored.Active {
		return repository.ErrAccountNotFound
	}
	fn(stored)

	return nil
}

// promote changes the role of the account registered under email.
func (m *memoryAccounts) promote(email string, role entity.Role) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, account := range m.byID {
		if account.Email == email {
			account.Role = role
		}
	}
}

// snapshot returns the stored account registered under email, active or not.
func (m *memoryAccounts) snapshot(email string) *entity.Account {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, account := range m.byID {
		if account.Email == email {
			return cloneAccount(account)
		}
	}

	return nil
}

// memoryTransactions serializes transactional work over the same store.
type memoryTransactions struct {
	mu       sync.Mutex
	accounts *memoryAccounts
}

func (tm *memoryTransactions) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	return fn(tm)
}

func (tm *memoryTransactions) AccountRepo() repository.AccountRepository {
	return tm.accounts
}

// recordingNotifier keeps every link it was asked to send.
type recordingNotifier struct {
	mu         sync.Mutex
	welcome    []string
	resets     []string
	failResets bool
}

func (n *recordingNotifier) SendWelcome(_ context.Context, _ *entity.Account, url string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.welcome = append(n.welcome, url)

	return nil
}

func (n *recordingNotifier) SendPasswordReset(_ context.Context, _ *entity.Account, url string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.failResets {
		return errors.New("smtp: 421 service not available")
	}
	n.resets = append(n.resets, url)

	return nil
}

func (n *recordingNotifier) lastResetToken() string {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.resets) == 0 {
		return ""
	}
	last := n.resets[len(n.resets)-1]

	return last[strings.LastIndex(last, "/")+1:]
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}
