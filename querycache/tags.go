package querycache

import "context"

type tagsKey struct{}

// WithCacheTags returns a context whose cached reads are also indexed under tags,
// so a resolver can tie a result to the entities it touched besides its own. Tags
// are normalized like entity names and accumulate across calls.
func WithCacheTags(ctx context.Context, tags ...string) context.Context {
	added := normalizeTags(tags)
	if len(added) == 0 {
		return ctx
	}
	return context.WithValue(ctx, tagsKey{}, dedupeStrings(append(contextTags(ctx), added...)))
}

// contextTags returns a copy of the tags attached with WithCacheTags.
func contextTags(ctx context.Context) []string {
	tags, _ := ctx.Value(tagsKey{}).([]string)
	if tags == nil {
		return nil
	}
	return append([]string(nil), tags...)
}
