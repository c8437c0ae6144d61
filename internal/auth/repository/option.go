package repository

type CreateUserOptions struct {
	Email        string
	PasswordHash string
}
