package db

const createSession = `
INSERT INTO web_sessions (user_id, ip, user_agent, device_fingerprint, created_at, last_activity)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING id
`

const touchSession = `
UPDATE web_sessions
SET last_activity = $2, ip = $3
WHERE id = $1 AND is_active = TRUE
`

const getLiveSession = `
SELECT
	id,
	user_id,
	is_active,
	ip,
	user_agent,
	device_fingerprint,
	created_at,
	last_activity,
	logged_out_at
FROM web_sessions
WHERE user_id = $1 AND is_active = TRUE AND last_activity > $2
ORDER BY last_activity DESC
LIMIT 1
`

const endSession = `
UPDATE web_sessions
SET is_active = FALSE, logged_out_at = COALESCE(logged_out_at, $2)
WHERE id = $1
`

const endAllSessions = `
UPDATE web_sessions
SET is_active = FALSE, logged_out_at = COALESCE(logged_out_at, $2)
WHERE user_id = $1 AND is_active = TRUE
`
