package usecase

import "github.com/jimiolaniyan/goaccounts/account"

type dbAddAccount struct {
	hasher Hasher
	repo   AddAccountRepository
}

// NewDBAddAccount wires the registration pipeline: hash the password, then
// persist the account. Input validation belongs to the caller.
func NewDBAddAccount(hasher Hasher, repo AddAccountRepository) AddAccount {
	return &dbAddAccount{hasher: hasher, repo: repo}
}

// Add returns the persisted account, ID assigned by the store and Password
// holding the hash. Hasher and repository errors propagate unchanged.
func (uc *dbAddAccount) Add(model AddAccountModel) (*account.Account, error) {
	hash, err := uc.hasher.Hash(model.Password)
	if err != nil {
		return nil, err
	}

	return uc.repo.Add(AddAccountModel{
		Name:     model.Name,
		Email:    model.Email,
		Password: hash,
	})
}
