package usecase

type dbAuthentication struct {
	accounts  LoadAccountByEmailRepository
	comparer  HashComparer
	encrypter Encrypter
	tokens    UpdateAccessTokenRepository
}

// NewDBAuthentication wires the credential-authentication pipeline.
func NewDBAuthentication(accounts LoadAccountByEmailRepository, comparer HashComparer,
	encrypter Encrypter, tokens UpdateAccessTokenRepository) Authentication {
	return &dbAuthentication{
		accounts:  accounts,
		comparer:  comparer,
		encrypter: encrypter,
		tokens:    tokens,
	}
}

// Auth gates each step on the previous one: an unknown email or a failed
// comparison short-circuits to ("", nil) without touching later steps, and
// the token is only persisted after issuance succeeds. Capability errors
// propagate unchanged.
func (uc *dbAuthentication) Auth(model AuthenticationModel) (string, error) {
	acc, err := uc.accounts.LoadByEmail(model.Email)
	if err != nil {
		return "", err
	}
	if acc == nil {
		return "", nil
	}

	matches, err := uc.comparer.Compare(model.Password, acc.Password)
	if err != nil {
		return "", err
	}
	if !matches {
		return "", nil
	}

	token, err := uc.encrypter.Encrypt(string(acc.ID))
	if err != nil {
		return "", err
	}

	if err := uc.tokens.UpdateAccessToken(acc.ID, token); err != nil {
		return "", err
	}

	return token, nil
}
