package constant

const (
	DefaultUserRole = "user"

	// VerificationTokenBytes is the entropy of the plaintext verification
	// token before hex encoding.
	VerificationTokenBytes = 20

	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)
