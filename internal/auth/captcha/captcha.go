package captcha

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/JMURv/trust-bridge/internal/config"
	"github.com/goccy/go-json"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type Port interface {
	VerifyRecaptcha(ctx context.Context, token string, action Actions) (bool, error)
}

type Actions string

const (
	PassAuth Actions = "pass_auth"
)

const (
	captchaScore = 0.1
	verifyURL    = "https://www.google.com/recaptcha/api/siteverify"
)

type response struct {
	Success bool    `json:"success"`
	Score   float64 `json:"score"`
	Action  string  `json:"action"`
}

type Recaptcha struct {
	enabled bool
	secret  string
	url     string
	cli     *http.Client
}

func New(conf config.Config) *Recaptcha {
	return &Recaptcha{
		enabled: conf.Auth.CaptchaEnabled,
		secret:  conf.Auth.CaptchaSecret,
		url:     verifyURL,
		cli:     &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *Recaptcha) VerifyRecaptcha(ctx context.Context, token string, action Actions) (bool, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "VerifyRecaptcha")
	defer span.Finish()

	if !c.enabled {
		return true, nil
	}

	if token == "" {
		return false, nil
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.url,
		nil,
	)
	if err != nil {
		return false, err
	}
	req.URL.RawQuery = url.Values{
		"secret":   {c.secret},
		"response": {token},
	}.Encode()

	resp, err := c.cli.Do(req)
	if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to verify recaptcha", zap.Error(err))
		return false, err
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			zap.L().Error("failed to close body", zap.Error(err))
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("unexpected recaptcha status", zap.Int("status", resp.StatusCode))
		return false, ErrVerificationFailed
	}

	var result response
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Error("failed to decode body", zap.Error(err))
		return false, err
	}

	score := result.Success && result.Score > captchaScore
	if !score {
		zap.L().Debug("not enough score", zap.Float64("score", result.Score))
	}
	return score && result.Action == string(action), nil
}
