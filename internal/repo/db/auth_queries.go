package db

const createToken = `
INSERT INTO refresh_tokens (user_id, token_hash, session_id, expires_at)
VALUES ($1, $2, $3, $4)
`

const isValidToken = `
SELECT EXISTS (
	SELECT 1
	FROM refresh_tokens
	WHERE user_id = $1 AND token_hash = $2 AND revoked = FALSE AND expires_at > $3
)
`

const revokeAllTokens = `
UPDATE refresh_tokens
SET revoked = TRUE
WHERE user_id = $1 AND revoked = FALSE
`

const revokeToken = `
UPDATE refresh_tokens
SET revoked = TRUE
WHERE user_id = $1 AND token_hash = $2
`

const deleteExpiredTokens = `
DELETE FROM refresh_tokens
WHERE expires_at < $1
`
