// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and bearer-token utilities.

# Passwords

Credentials are stored as bcrypt hashes:

	hash, err := auth.HashPassword(plain)
	err = auth.VerifyPassword(hash, plain)  // ErrInvalidCredentials on mismatch

# Access Tokens

Access tokens are HS256 JWTs carrying the user id as the subject claim,
valid for TokenTTL (7 days):

	token, err := auth.GenerateToken(userID, secret)
	userID, err := auth.ParseToken(token, secret)

ParseToken rejects non-HMAC signing methods, expired tokens, and tokens
without a subject, returning ErrInvalidToken in every case. The rest of
the system treats the verified user id as an opaque identity reference.
*/
package auth
