package insight

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	apperrors "github.com/yanqian/astro-insight/pkg/errors"
	"github.com/yanqian/astro-insight/pkg/metrics"
)

const birthLayout = "2006-01-02 15:04"

// InvalidDateTimeMessage is reported for any unparseable birth date/time pair.
const InvalidDateTimeMessage = "Invalid date/time format. Use YYYY-MM-DD for date and HH:MM for time"

// Service exposes insight generation to the transports.
type Service interface {
	Predict(ctx context.Context, req Request) (Response, error)
	Stats() metrics.CacheStats
}

type service struct {
	cfg      Config
	resolver SignResolver
	contexts ContextSource
	composer Composer
	cache    Cache
	logger   *slog.Logger
	group    singleflight.Group
	stats    metrics.Recorder
}

// NewService wires up the insight pipeline.
func NewService(cfg Config, resolver SignResolver, contexts ContextSource, composer Composer, cache Cache, logger *slog.Logger) Service {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if strings.TrimSpace(cfg.DefaultLanguage) == "" {
		cfg.DefaultLanguage = "en"
	}
	return &service{
		cfg:      cfg,
		resolver: resolver,
		contexts: contexts,
		composer: composer,
		cache:    cache,
		logger:   logger.With("component", "insight.service"),
	}
}

// birthDetails is a Request that passed validation.
type birthDetails struct {
	name      string
	birthDate string
	born      time.Time
	language  string
}

func (s *service) Predict(ctx context.Context, req Request) (Response, error) {
	details, err := s.validate(req)
	if err != nil {
		return Response{}, err
	}

	key := CacheKey(details.name, details.birthDate, details.language)
	if resp, ok := s.lookup(ctx, key); ok {
		s.stats.Hit()
		return resp, nil
	}
	s.stats.Miss()

	result, err, shared := s.group.Do(key, func() (any, error) {
		if resp, ok := s.lookup(ctx, key); ok {
			return resp, nil
		}
		return s.compute(ctx, key, details)
	})
	if err != nil {
		return Response{}, err
	}
	if shared {
		s.logger.Debug("insight computation shared", "key", key)
	}
	return result.(Response), nil
}

func (s *service) Stats() metrics.CacheStats {
	return s.stats.Snapshot()
}

func (s *service) validate(req Request) (birthDetails, error) {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return birthDetails{}, apperrors.Wrap(apperrors.CodeInvalidInput, "name cannot be empty", nil)
	case strings.TrimSpace(req.BirthPlace) == "":
		return birthDetails{}, apperrors.Wrap(apperrors.CodeInvalidInput, "birth_place cannot be empty", nil)
	}

	born, err := time.Parse(birthLayout, req.BirthDate+" "+req.BirthTime)
	if err != nil {
		return birthDetails{}, apperrors.Wrap(apperrors.CodeInvalidInput, InvalidDateTimeMessage, err)
	}

	language := strings.TrimSpace(req.Language)
	if language == "" {
		language = s.cfg.DefaultLanguage
	}
	return birthDetails{
		name:      req.Name,
		birthDate: req.BirthDate,
		born:      born,
		language:  language,
	}, nil
}

// CacheKey derives the cache key from name, birth date and language.
// Birth time and place are not part of the key, so requests that differ only
// in those fields share a cached insight.
func CacheKey(name, birthDate, language string) string {
	return strings.ToLower(name) + "_" + birthDate + "_" + language
}

func (s *service) lookup(ctx context.Context, key string) (Response, bool) {
	payload, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("insight cache lookup failed", "key", key, "error", err)
		return Response{}, false
	}
	if !ok {
		return Response{}, false
	}
	var resp Response
	if err := json.Unmarshal(payload, &resp); err != nil {
		s.logger.Warn("insight cache payload corrupt", "key", key, "error", err)
		return Response{}, false
	}
	return resp, true
}

func (s *service) compute(ctx context.Context, key string, details birthDetails) (Response, error) {
	s.stats.Compute()

	info := s.resolver.ResolveDate(details.born)
	daily := s.contexts.Lookup(info.Sign)

	text, err := s.composer.Compose(ctx, details.name, info, daily, details.language)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeInsight) {
			return Response{}, err
		}
		return Response{}, apperrors.Wrap(apperrors.CodeInsight, "insight composition failed", err)
	}

	resp := newResponse(info, text, details.language)
	payload, err := json.Marshal(resp)
	if err != nil {
		return Response{}, apperrors.Wrap(apperrors.CodeInsight, "encode insight", err)
	}
	if err := s.cache.Set(ctx, key, payload, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("insight cache save failed", "key", key, "error", err)
	}
	s.logger.Info("insight generated", "sign", info.Sign, "language", details.language)
	return resp, nil
}
