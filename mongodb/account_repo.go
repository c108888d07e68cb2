package mongodb

import (
	"context"

	"github.com/rs/xid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jimiolaniyan/goaccounts/account"
	"github.com/jimiolaniyan/goaccounts/usecase"
)

// AccountRepository persists accounts in a mongo collection. It implements
// the add, load-by-email and update-access-token capabilities.
type AccountRepository struct {
	collection *mongo.Collection
}

func NewAccountRepository(c *mongo.Collection) *AccountRepository {
	return &AccountRepository{collection: c}
}

// Add generates the account id and inserts the record. The caller hands in
// the hashed password; no plaintext reaches this layer.
func (m *AccountRepository) Add(model usecase.AddAccountModel) (*account.Account, error) {
	acc := account.Account{
		ID:       account.ID(xid.New().String()),
		Name:     model.Name,
		Email:    model.Email,
		Password: model.Password,
	}

	if _, err := m.collection.InsertOne(context.TODO(), &acc); err != nil {
		return nil, err
	}

	return &acc, nil
}

// LoadByEmail returns (nil, nil) when no account matches; absence is a
// normal outcome, not an error.
func (m *AccountRepository) LoadByEmail(email string) (*account.Account, error) {
	sr := m.collection.FindOne(context.TODO(), bson.M{"email": email})
	if sr.Err() == mongo.ErrNoDocuments {
		return nil, nil
	}

	var acc account.Account
	if err := sr.Decode(&acc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &acc, nil
}

func (m *AccountRepository) UpdateAccessToken(id account.ID, token string) error {
	_, err := m.collection.UpdateOne(context.TODO(),
		bson.M{"_id": string(id)},
		bson.M{"$set": bson.M{"accessToken": token}})
	return err
}
