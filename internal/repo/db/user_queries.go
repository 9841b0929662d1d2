package db

const userColumns = `
	id,
	name,
	email,
	phone,
	password,
	is_active,
	is_deleted,
	tier,
	trial_ends_at,
	daily_requests,
	requests_reset_at,
	created_at,
	updated_at
`

const userGetByIDQ = `SELECT` + userColumns + `FROM users WHERE id = $1`

const userGetByEmailQ = `SELECT` + userColumns + `FROM users WHERE email = $1 AND is_deleted = FALSE`

const userGetByPhoneQ = `SELECT` + userColumns + `FROM users WHERE phone = $1 AND is_deleted = FALSE`

const userCreateQ = `
INSERT INTO users (name, email, phone, password, is_active, tier, trial_ends_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`

const userSoftDeleteQ = `
UPDATE users
SET is_active = FALSE,
	is_deleted = TRUE,
	email = 'deleted_' || id::text || '@deleted.local',
	phone = NULL,
	updated_at = NOW()
WHERE id = $1 AND is_deleted = FALSE
`

const userIncrementRequestsQ = `
UPDATE users
SET daily_requests = CASE WHEN requests_reset_at < $2::date THEN 1 ELSE daily_requests + 1 END,
	requests_reset_at = $2::date,
	updated_at = NOW()
WHERE id = $1
RETURNING daily_requests
`
