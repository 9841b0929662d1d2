package ctrl

import (
	"context"
	"strings"

	"github.com/JMURv/trust-bridge/internal/config"
	"github.com/JMURv/trust-bridge/internal/dto"
	md "github.com/JMURv/trust-bridge/internal/models"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

// ScorePatterns logs the request and evaluates it against the trailing abuse
// window. Counts include the request being scored.
func (c *Controller) ScorePatterns(
	ctx context.Context,
	uid uuid.UUID,
	d *dto.DeviceRequest,
) ([]dto.RiskPattern, error) {
	const op = "abuse.ScorePatterns.ctrl"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	conf := c.conf.Abuse
	now := c.now().UTC()
	since := now.Add(-conf.Window)

	err := c.repo.CreateRequestLog(
		ctx, &md.ExtensionRequestLog{
			UserID:    &uid,
			IP:        d.IP,
			UA:        d.UA,
			Endpoint:  d.Endpoint,
			CreatedAt: now,
		},
	)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}

	patterns := make([]dto.RiskPattern, 0)

	byIP, err := c.repo.CountRequestsByIP(ctx, d.IP, since)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	if byIP > conf.IPThreshold {
		patterns = append(patterns, dto.RiskPattern{
			Type:      dto.PatternHighFrequencyIP,
			RiskLevel: dto.RiskHigh,
			Details:   map[string]any{"ip": d.IP, "requests": byIP, "threshold": conf.IPThreshold},
		})
	}

	if len(strings.TrimSpace(d.UA)) < conf.MinUALength {
		patterns = append(patterns, dto.RiskPattern{
			Type:      dto.PatternSuspiciousUA,
			RiskLevel: dto.RiskMedium,
			Details:   map[string]any{"ua": d.UA},
		})
	}

	byEndpoint, err := c.repo.CountRequestsByUserEndpoint(ctx, uid, d.Endpoint, since)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	if byEndpoint > conf.EndpointThreshold {
		patterns = append(patterns, dto.RiskPattern{
			Type:      dto.PatternEndpointAbuse,
			RiskLevel: dto.RiskMedium,
			Details: map[string]any{
				"endpoint":  d.Endpoint,
				"requests":  byEndpoint,
				"threshold": conf.EndpointThreshold,
			},
		})
	}

	users, err := c.repo.CountDistinctUsersByIP(ctx, d.IP, since)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	if users > conf.UsersPerIP {
		patterns = append(patterns, dto.RiskPattern{
			Type:      dto.PatternMultipleUsersSameIP,
			RiskLevel: dto.RiskHigh,
			Details:   map[string]any{"ip": d.IP, "users": users, "threshold": conf.UsersPerIP},
		})
	}

	violations, err := c.repo.CountSevereEvents(ctx, uid, since)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return nil, err
	}
	if violations >= conf.ViolationThreshold {
		patterns = append(patterns, dto.RiskPattern{
			Type:      dto.PatternRepeatedViolations,
			RiskLevel: dto.RiskMedium,
			Details:   map[string]any{"events": violations, "threshold": conf.ViolationThreshold},
		})
	}

	if len(patterns) > 0 {
		sev := md.SeverityMedium
		if HasHighRisk(patterns) {
			sev = md.SeverityHigh
		}
		c.recordEvent(ctx, &md.SecurityEvent{
			Type:     md.EventSuspiciousActivity,
			Severity: sev,
			UserID:   &uid,
			IP:       d.IP,
			UA:       d.UA,
			Endpoint: d.Endpoint,
			Details:  md.Details{"patterns": patterns},
		})
	}

	return patterns, nil
}

func HasHighRisk(patterns []dto.RiskPattern) bool {
	for i := range patterns {
		if patterns[i].RiskLevel == dto.RiskHigh {
			return true
		}
	}
	return false
}
