package db

const createSecurityEvent = `
INSERT INTO security_events (type, severity, user_id, ip, user_agent, endpoint, details, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

const countSevereEvents = `
SELECT COUNT(*)
FROM security_events
WHERE user_id = $1 AND severity IN ('high', 'critical') AND created_at > $2
`

const createRequestLog = `
INSERT INTO extension_request_logs (user_id, ip, user_agent, endpoint, created_at)
VALUES ($1, $2, $3, $4, $5)
`

const countRequestsByIP = `
SELECT COUNT(*)
FROM extension_request_logs
WHERE ip = $1 AND created_at > $2
`

const countRequestsByUserEndpoint = `
SELECT COUNT(*)
FROM extension_request_logs
WHERE user_id = $1 AND endpoint = $2 AND created_at > $3
`

const countDistinctUsersByIP = `
SELECT COUNT(DISTINCT user_id)
FROM extension_request_logs
WHERE ip = $1 AND user_id IS NOT NULL AND created_at > $2
`

const deleteRequestLogsBefore = `
DELETE FROM extension_request_logs
WHERE created_at < $1
`
