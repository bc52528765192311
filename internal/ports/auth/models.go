package auth

// Claims es la identidad resuelta a partir del token.
type Claims struct {
	UserID string
	Email  string
	Issuer string
}
