package db

const deviceColumns = `
	id,
	user_id,
	fingerprint,
	status,
	device_type,
	user_agent,
	ip,
	auto_registered,
	first_seen,
	last_seen
`

const listDevices = `SELECT` + deviceColumns + `FROM devices WHERE user_id = $1 ORDER BY last_seen DESC`

const getDeviceByID = `SELECT` + deviceColumns + `FROM devices WHERE id = $1`

const getDeviceByFingerprint = `SELECT` + deviceColumns + `FROM devices WHERE user_id = $1 AND fingerprint = $2`

const countActiveDevices = `
SELECT COUNT(*)
FROM devices
WHERE user_id = $1 AND status = 'active'
`

const createDevice = `
INSERT INTO devices (user_id, fingerprint, status, device_type, user_agent, ip, auto_registered, first_seen, last_seen)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING id
`

const touchDevice = `
UPDATE devices
SET last_seen = $2, ip = $3, user_agent = $4
WHERE id = $1
`

const setDeviceStatus = `
UPDATE devices
SET status = $2
WHERE id = $1
`
