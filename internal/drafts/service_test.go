package drafts

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumecraft/go-services/internal/resume"
)

func testRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestServiceRoundTrip(t *testing.T) {
	for name, repo := range map[string]Repository{
		"memory": NewMemoryRepository(),
	} {
		t.Run(name, func(t *testing.T) {
			svc := NewService(repo, time.Hour)
			ctx := context.Background()

			doc := resume.DefaultDocument()
			doc.Personal.Name = "Jane Doe"
			doc.Skills.Technical = []string{"Go"}
			require.NoError(t, svc.Save(ctx, "sess-1", doc))

			got := svc.Load(ctx, "sess-1")
			assert.Equal(t, doc, got)
		})
	}
}

func TestServiceRedisRoundTrip(t *testing.T) {
	_, client := testRedis(t)
	svc := NewService(NewRedisRepository(client, ""), time.Hour)
	ctx := context.Background()

	doc := resume.DefaultDocument()
	doc.Personal.Name = "Jane Doe"
	doc.SelectedTemplate = resume.TemplateMinimal
	require.NoError(t, svc.Save(ctx, "sess-1", doc))

	got := svc.Load(ctx, "sess-1")
	assert.Equal(t, "Jane Doe", got.Personal.Name)
	assert.Equal(t, resume.TemplateMinimal, got.SelectedTemplate)

	// drafts are session-scoped
	other := svc.Load(ctx, "sess-2")
	assert.Equal(t, resume.DefaultDocument(), other)
}

func TestServiceLoadMissingReturnsDefault(t *testing.T) {
	svc := NewService(NewMemoryRepository(), time.Hour)
	got := svc.Load(context.Background(), "nope")
	assert.Equal(t, resume.DefaultDocument(), got)
}

func TestServiceClear(t *testing.T) {
	svc := NewService(NewMemoryRepository(), time.Hour)
	ctx := context.Background()

	doc := resume.DefaultDocument()
	doc.Personal.Name = "Jane"
	require.NoError(t, svc.Save(ctx, "sess-1", doc))
	require.NoError(t, svc.Clear(ctx, "sess-1"))
	assert.Equal(t, resume.DefaultDocument(), svc.Load(ctx, "sess-1"))
}

func TestRedisDraftExpires(t *testing.T) {
	mr, client := testRedis(t)
	repo := NewRedisRepository(client, "")
	svc := NewService(repo, time.Minute)
	ctx := context.Background()

	doc := resume.DefaultDocument()
	doc.Personal.Name = "Jane"
	require.NoError(t, svc.Save(ctx, "sess-1", doc))

	ttl := mr.TTL("draft:sess-1")
	assert.InDelta(t, time.Minute.Seconds(), ttl.Seconds(), 2)

	mr.FastForward(2 * time.Minute)
	assert.Equal(t, resume.DefaultDocument(), svc.Load(ctx, "sess-1"))
}

func TestCorruptDraftReplacedByDefault(t *testing.T) {
	mr, client := testRedis(t)
	repo := NewRedisRepository(client, "")
	svc := NewService(repo, time.Hour)
	ctx := context.Background()

	// raw garbage under the draft key
	require.NoError(t, mr.Set("draft:sess-1", "{not json"))
	assert.Equal(t, resume.DefaultDocument(), svc.Load(ctx, "sess-1"))

	// valid JSON that fails the document schema
	require.NoError(t, mr.Set("draft:sess-2", `{"sessionId":"sess-2","document":{"personal":{},"bogus":true}}`))
	assert.Equal(t, resume.DefaultDocument(), svc.Load(ctx, "sess-2"))
}
