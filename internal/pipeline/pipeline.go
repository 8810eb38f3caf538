package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ppiankov/postguard/internal/cache"
	"github.com/ppiankov/postguard/internal/classify"
	"github.com/ppiankov/postguard/internal/extract"
	"github.com/ppiankov/postguard/internal/grammar"
	"github.com/ppiankov/postguard/internal/model"
	"github.com/ppiankov/postguard/internal/render"
	"github.com/ppiankov/postguard/internal/transform"
)

// Pipeline runs classification, transformation and grammar validation on a
// post and aggregates the results. It is safe for concurrent use.
type Pipeline struct {
	classifier  *classify.Classifier
	transformer *transform.Transformer
	cache       cache.Cache // nil when caching is disabled
	logger      *zap.Logger
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithCache supplies the cache instead of building one from the configuration
func WithCache(c cache.Cache) Option {
	return func(p *Pipeline) {
		p.cache = c
	}
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config, opts ...Option) *Pipeline {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}

	keywords := extract.NewKeywords(cfg.Keywords.Hate, cfg.Keywords.Offensive)
	classifier := classify.NewClassifier(keywords, tokenizerFor(cfg.Tokenizer.Strategy))

	p := &Pipeline{
		classifier:  classifier,
		transformer: transform.NewTransformer(classifier),
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.cache == nil && cfg.Cache.Enabled {
		p.cache = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}
	return p
}

func tokenizerFor(strategy string) extract.Tokenizer {
	if strategy == model.TokenizerPattern {
		return extract.PatternTokenizer{}
	}
	return nil
}

// Classifier returns the classifier shared by the pipeline's engines
func (p *Pipeline) Classifier() *classify.Classifier {
	return p.classifier
}

// Transformer returns the pipeline's transformer
func (p *Pipeline) Transformer() *transform.Transformer {
	return p.transformer
}

// Process analyzes a post. It never fails: grammar errors are reported in
// the Validation section of the result.
func (p *Pipeline) Process(text string) *model.Analysis {
	key := cache.CacheKey(text)
	if a, ok := p.cached(key); ok {
		p.logResult(a, true)
		return a
	}

	report := p.classifier.Classify(text)
	analysis := &model.Analysis{
		OriginalPost: text,
		Classification: model.Classification{
			Status:  model.StatusSafe,
			Details: report,
		},
		Transformation: p.transformer.Transform(text),
		Validation:     model.Validation{Status: model.StatusValid},
	}
	if report.Violation() {
		analysis.Classification.Status = model.StatusViolation
	}

	rendered, err := ParseAndRender(text)
	if err != nil {
		analysis.Validation = invalid(err)
	} else {
		analysis.Preview = &rendered.Preview
	}

	p.store(key, analysis)
	p.logResult(analysis, false)
	return analysis
}

func invalid(err error) model.Validation {
	v := model.Validation{Status: model.StatusInvalid}
	msg := err.Error()

	var verr *grammar.ValidationError
	if errors.As(err, &verr) {
		msg = verr.Error()
		v.Line = verr.Line
		v.Column = verr.Column
	}
	v.Error = &msg
	return v
}

func (p *Pipeline) cached(key string) (*model.Analysis, bool) {
	if p.cache == nil {
		return nil, false
	}
	data, ok := p.cache.Get(key)
	if !ok {
		return nil, false
	}

	var a model.Analysis
	if err := json.Unmarshal(data, &a); err != nil {
		p.logger.Warn("dropping unreadable cache entry", zap.String("key", key), zap.Error(err))
		_ = p.cache.Delete(key)
		return nil, false
	}
	return &a, true
}

func (p *Pipeline) store(key string, a *model.Analysis) {
	if p.cache == nil {
		return
	}
	data, err := json.Marshal(a)
	if err != nil {
		p.logger.Warn("cannot encode analysis for cache", zap.Error(err))
		return
	}
	if err := p.cache.Set(key, data, cache.DefaultTTL); err != nil {
		p.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (p *Pipeline) logResult(a *model.Analysis, hit bool) {
	report := a.Classification.Details
	p.logger.Debug("processed post",
		zap.Bool("hate", report.Hate),
		zap.Bool("offensive", report.Offensive),
		zap.Bool("spam", report.Spam),
		zap.Bool("valid", a.Valid()),
		zap.Int("tokens", len(report.Details.Tokens)),
		zap.Bool("cache_hit", hit),
	)
}

// Rendered is a successfully parsed post and its preview
type Rendered struct {
	Document *grammar.Post
	Preview  string
}

// ParseAndRender validates text against the post grammar and renders it.
// Errors wrap a *grammar.ValidationError; nothing is rendered on failure.
func ParseAndRender(text string) (*Rendered, error) {
	post, err := grammar.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse post: %w", err)
	}
	return &Rendered{
		Document: post,
		Preview:  render.Render(post),
	}, nil
}
