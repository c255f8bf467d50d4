package deployer

// Credential holds exactly one signing credential for the deployment account.
// It is consumed within a single run and never persisted or logged.
type Credential struct {
	PrivateKey string
	Mnemonic   string
}

// Present reports whether any usable credential was supplied.
func (c Credential) Present() bool {
	return len(c.PrivateKey) > 0 || len(c.Mnemonic) > 0
}
