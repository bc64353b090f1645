package repository

import (
	"context"
	"errors"

	"github.com/deppfellow/recordkit/internal/errs"
	"github.com/deppfellow/recordkit/internal/identifier"
	"github.com/deppfellow/recordkit/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ContentRepository stores content as {"title","body"} JSON under its key.
// Values never expire.
type ContentRepository struct {
	kv  KV
	gen identifier.Generator
	log *zerolog.Logger
}

func NewContentRepository(kv KV, logger *zerolog.Logger) *ContentRepository {
	return &ContentRepository{kv: kv, gen: identifier.New, log: logger}
}

func (r *ContentRepository) WithGenerator(gen identifier.Generator) *ContentRepository {
	r.gen = gen
	return r
}

// Get loads the content stored under key. Key is taken from the lookup,
// not from the stored value.
func (r *ContentRepository) Get(ctx context.Context, key string) (model.Content, error) {
	value, err := r.kv.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return model.Content{}, &errs.NotFoundError{Entity: "content", Key: key}
	}
	if err != nil {
		return model.Content{}, &errs.StoreError{Op: "content.get", Code: errs.CodeStore, Cause: err}
	}

	content, err := model.DecodeContentValue(key, value)
	if err != nil {
		return model.Content{}, &errs.DecodeError{Entity: "content", Payload: value, Cause: err}
	}
	return content, nil
}

// Set overwrites whatever is stored under c.Key.
func (r *ContentRepository) Set(ctx context.Context, c model.Content) error {
	value, err := model.EncodeContentValue(c)
	if err != nil {
		return &errs.StoreError{Op: "content.set", Code: errs.CodeStore, Message: "failed to encode content", Cause: err}
	}

	if err := r.kv.Set(ctx, c.Key, value, 0).Err(); err != nil {
		return &errs.StoreError{Op: "content.set", Code: errs.CodeStore, Cause: err}
	}

	loggerFrom(ctx, r.log).Debug().Str("entity", "content").Str("key", c.Key).Msg("stored")
	return nil
}

// Make fills unset fields of b, builds the content and stores it.
func (r *ContentRepository) Make(ctx context.Context, b *model.ContentBuilder) (model.Content, error) {
	c, err := b.ApplyDefaults(r.gen).Build()
	if err != nil {
		return model.Content{}, err
	}

	if err := r.Set(ctx, c); err != nil {
		return model.Content{}, err
	}
	return c, nil
}
