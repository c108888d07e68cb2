package usecase

import "github.com/jimiolaniyan/goaccounts/account"

// Hasher produces a salted hash of a plaintext credential.
type Hasher interface {
	Hash(plaintext string) (string, error)
}

// HashComparer verifies a plaintext credential against a stored hash.
type HashComparer interface {
	Compare(plaintext, hash string) (bool, error)
}

// Encrypter produces an opaque signed token from an identity value.
type Encrypter interface {
	Encrypt(value string) (string, error)
}

// AddAccountRepository persists a new account. The store is the sole
// authority for generating the account ID.
type AddAccountRepository interface {
	Add(model AddAccountModel) (*account.Account, error)
}

// LoadAccountByEmailRepository retrieves an account by its email, returning
// (nil, nil) when no account matches.
type LoadAccountByEmailRepository interface {
	LoadByEmail(email string) (*account.Account, error)
}

// UpdateAccessTokenRepository stores a freshly issued token against an
// account.
type UpdateAccessTokenRepository interface {
	UpdateAccessToken(id account.ID, token string) error
}

// AddAccountModel carries registration data into the pipeline. Password is
// plaintext on the way in and must be hashed before it reaches a repository.
type AddAccountModel struct {
	Name     string
	Email    string
	Password string
}

// AuthenticationModel carries the raw credentials of a login attempt.
type AuthenticationModel struct {
	Email    string
	Password string
}

// AddAccount turns a registration request into a persisted account.
type AddAccount interface {
	Add(model AddAccountModel) (*account.Account, error)
}

// Authentication turns credentials into an access token. An empty token
// with a nil error means the credentials were rejected; it is not a failure.
type Authentication interface {
	Auth(model AuthenticationModel) (string, error)
}
