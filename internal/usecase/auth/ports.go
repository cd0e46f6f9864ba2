package auth

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

// DomainChecker reports whether the email's domain can receive mail.
type DomainChecker func(email string) bool
