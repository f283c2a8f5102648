package auth

import (
	"encoding/json"
	"errors"
	"strings"

	"homenest/server/internal/models"
	"homenest/server/internal/storage"

	"github.com/sirupsen/logrus"
)

// UsersSlot is the storage key holding the JSON array of user records.
const UsersSlot = "homenest_users"

var (
	ErrAlreadyExists      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// CredentialStore manages the persisted user list. Emails are
// normalized to lower case, so lookups and uniqueness are
// case-insensitive.
type CredentialStore struct {
	store  storage.Store
	hasher Hasher
	logger *logrus.Logger
}

func NewCredentialStore(store storage.Store, hasher Hasher, logger *logrus.Logger) *CredentialStore {
	if logger == nil {
		logger = logrus.New()
	}
	return &CredentialStore{
		store:  store,
		hasher: hasher,
		logger: logger,
	}
}

// Users returns the persisted user list. A missing or corrupted slot
// decodes to an empty list rather than an error.
func (cs *CredentialStore) Users() []models.User {
	raw, err := cs.store.Get(UsersSlot)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			cs.logger.WithError(err).Error("Failed to read users slot")
		}
		return nil
	}

	var users []models.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		cs.logger.WithError(err).Warn("Users slot is corrupted, treating as empty")
		return nil
	}
	return users
}

func (cs *CredentialStore) saveUsers(users []models.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return cs.store.Set(UsersSlot, string(raw))
}

// Register creates a new account. The profile's PasswordHash field is
// ignored; the digest is computed here from password.
func (cs *CredentialStore) Register(profile models.User, password string) (models.User, error) {
	profile.Email = strings.ToLower(profile.Email)

	users := cs.Users()
	for _, u := range users {
		if strings.ToLower(u.Email) == profile.Email {
			return models.User{}, ErrAlreadyExists
		}
	}

	digest, err := cs.hasher.Hash(password)
	if err != nil {
		return models.User{}, err
	}
	profile.PasswordHash = digest

	if err := cs.saveUsers(append(users, profile)); err != nil {
		return models.User{}, err
	}

	cs.logger.WithField("email", profile.Email).Info("Registered new user")
	return profile, nil
}

// Authenticate verifies an email/password pair against the persisted
// list. Unknown email and wrong password are indistinguishable.
func (cs *CredentialStore) Authenticate(email, password string) (models.User, error) {
	email = strings.ToLower(email)

	for _, u := range cs.Users() {
		if strings.ToLower(u.Email) == email && cs.hasher.Verify(password, u.PasswordHash) {
			return u, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// UpdateProfile replaces the record matching updated.Email. The stored
// digest is preserved; profile edits cannot change the password.
func (cs *CredentialStore) UpdateProfile(updated models.User) (models.User, error) {
	updated.Email = strings.ToLower(updated.Email)

	users := cs.Users()
	for i, u := range users {
		if strings.ToLower(u.Email) != updated.Email {
			continue
		}
		updated.PasswordHash = u.PasswordHash
		users[i] = updated
		if err := cs.saveUsers(users); err != nil {
			return models.User{}, err
		}
		return updated, nil
	}
	return models.User{}, ErrUserNotFound
}
