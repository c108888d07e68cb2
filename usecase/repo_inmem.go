package usecase

import (
	"github.com/jimiolaniyan/goaccounts/account"
	"github.com/rs/xid"
)

// InMemAccountRepository keeps accounts in a map. It backs tests and local
// runs without a document store. Not safe for concurrent use.
type InMemAccountRepository struct {
	accounts map[account.ID]*account.Account
}

func NewInMemAccountRepository() *InMemAccountRepository {
	return &InMemAccountRepository{accounts: map[account.ID]*account.Account{}}
}

func (repo *InMemAccountRepository) Add(model AddAccountModel) (*account.Account, error) {
	acc := &account.Account{
		ID:       account.ID(xid.New().String()),
		Name:     model.Name,
		Email:    model.Email,
		Password: model.Password,
	}
	repo.accounts[acc.ID] = acc
	return acc, nil
}

func (repo *InMemAccountRepository) LoadByEmail(email string) (*account.Account, error) {
	for _, acc := range repo.accounts {
		if acc.Email == email {
			return acc, nil
		}
	}
	return nil, nil
}

func (repo *InMemAccountRepository) UpdateAccessToken(id account.ID, token string) error {
	if acc, ok := repo.accounts[id]; ok {
		acc.AccessToken = token
	}
	return nil
}
