package crypto

import "errors"

// ErrMalformedHash is returned by VerifyPassword when the stored hash string
// is not a valid Argon2id PHC string. It indicates data corruption rather
// than a wrong password.
var ErrMalformedHash = errors.New("malformed password hash")
