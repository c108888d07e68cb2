package account

// ID is an opaque account identifier. It is assigned by the store on
// creation and never changes afterwards.
type ID string

// Account is a registered user. Password holds the hashed credential once
// the account is persisted; the plaintext never reaches this struct.
// AccessToken is empty until the first successful login and is replaced on
// every subsequent one.
type Account struct {
	ID          ID     `bson:"_id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Email       string `bson:"email" json:"email"`
	Password    string `bson:"password" json:"password"`
	AccessToken string `bson:"accessToken,omitempty" json:"accessToken,omitempty"`
}
