package urlcheck

import (
	"context"
	"net/http"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultTimeout        = 5 * time.Second
	DefaultMaxConcurrency = 20

	userAgent = "jugger-url-validator/1.0"
)

// Validator partitions candidate URLs into reachable and unreachable sets. A
// syntactic check filters malformed candidates first; survivors are probed
// with a HEAD request (falling back to a ranged GET on 405) under a bounded
// fan-out. Probe failures classify the URL as invalid, they never surface as
// errors.
type Validator struct {
	client         *http.Client
	timeout        time.Duration
	maxConcurrency int
}

type ValidatorDependencies struct {
	Client         *http.Client
	Timeout        time.Duration
	MaxConcurrency int
}

func NewValidator(deps ValidatorDependencies) *Validator {
	if deps.Timeout <= 0 {
		deps.Timeout = DefaultTimeout
	}
	if deps.MaxConcurrency <= 0 {
		deps.MaxConcurrency = DefaultMaxConcurrency
	}
	if deps.Client == nil {
		deps.Client = &http.Client{}
	}
	return &Validator{
		client:         deps.Client,
		timeout:        deps.Timeout,
		maxConcurrency: deps.MaxConcurrency,
	}
}

// Validate partitions urls into (valid, invalid). The partitions are disjoint
// and together cover every input exactly once, in input order. Validate
// returns only after every probe has completed.
func (v *Validator) Validate(ctx context.Context, urls []string) (valid []string, invalid []string) {
	if len(urls) == 0 {
		return nil, nil
	}

	reachable := make([]bool, len(urls))
	wellFormed := make([]bool, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.maxConcurrency)

	for i, u := range urls {
		if !govalidator.IsURL(u) {
			continue
		}
		wellFormed[i] = true

		g.Go(func() error {
			reachable[i] = v.probe(gctx, u)
			return nil
		})
	}

	// Probes never return errors; Wait is pure fan-in.
	_ = g.Wait()

	for i, u := range urls {
		if wellFormed[i] && reachable[i] {
			valid = append(valid, u)
		} else {
			invalid = append(invalid, u)
		}
	}
	return valid, invalid
}

// probe issues a lightweight reachability check. Servers rejecting HEAD with
// 405 get one retry as a GET for the first byte only.
func (v *Validator) probe(ctx context.Context, url string) bool {
	status, err := v.request(ctx, http.MethodHead, url, false)
	if err == nil && status == http.StatusMethodNotAllowed {
		status, err = v.request(ctx, http.MethodGet, url, true)
	}
	if err != nil {
		log.Debug().Err(err).Str("url", url).Msg("URL probe failed")
		return false
	}
	return status >= 200 && status < 400
}

func (v *Validator) request(ctx context.Context, method, url string, ranged bool) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", userAgent)
	if ranged {
		req.Header.Set("Range", "bytes=0-0")
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}
