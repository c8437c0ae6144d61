package repository

// CredentialsOptions holds the parameters for signing up or logging in.
type CredentialsOptions struct {
	Username string
	Password string
}
