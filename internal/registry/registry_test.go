package registry

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terminal-terrace/image-relay/internal/testutils"
)

func incoming(names ...string) []Incoming {
	files := make([]Incoming, 0, len(names))
	for _, n := range names {
		files = append(files, Incoming{Name: n, Content: []byte("bytes of " + n), MediaType: "image/png"})
	}
	return files
}

// storesUnderTest 同一组用例分别跑在内存和 Redis 存储上
func storesUnderTest(t *testing.T) map[string]Store {
	client, _ := testutils.SetupTestRedis(t)
	return map[string]Store{
		"memory": NewMemoryStore(),
		"redis":  NewRedisStore(client, time.Hour),
	}
}

func TestRegisterAssignsUniqueIDs(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			reg := New(store)
			ctx := context.Background()

			refs, err := reg.Register(ctx, "s1", incoming("a.png", "b.png", "c.png"))
			require.NoError(t, err)
			require.Len(t, refs, 3)

			seen := map[string]bool{}
			for i, ref := range refs {
				assert.NotEmpty(t, ref.ID)
				assert.False(t, seen[ref.ID], "duplicate id %s", ref.ID)
				seen[ref.ID] = true
				assert.Equal(t, []string{"a.png", "b.png", "c.png"}[i], ref.OriginalName)
			}

			batch, err := reg.Batch(ctx, "s1")
			require.NoError(t, err)
			require.Equal(t, 3, batch.Len())
			assert.Equal(t, []byte("bytes of b.png"), batch.Files[1].Content)
			assert.Equal(t, "image/png", batch.Files[1].MediaType)
		})
	}
}

func TestRegisterReplacesPreviousBatch(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			reg := New(store)
			ctx := context.Background()

			_, err := reg.Register(ctx, "s1", incoming("old1.png", "old2.png"))
			require.NoError(t, err)
			refs, err := reg.Register(ctx, "s1", incoming("new.jpg"))
			require.NoError(t, err)

			batch, err := reg.Batch(ctx, "s1")
			require.NoError(t, err)
			require.Equal(t, 1, batch.Len())
			assert.Equal(t, refs[0].ID, batch.Files[0].ID)
			assert.Equal(t, "new.jpg", batch.Files[0].OriginalName)
		})
	}
}

func TestBatchesAreScopedByKey(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			reg := New(store)
			ctx := context.Background()

			_, err := reg.Register(ctx, "alice", incoming("a.png"))
			require.NoError(t, err)

			other, err := reg.Batch(ctx, "bob")
			require.NoError(t, err)
			assert.Equal(t, 0, other.Len())
		})
	}
}

func TestUploadThenRenameRoundTrip(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			reg := New(store)
			ctx := context.Background()

			refs, err := reg.Register(ctx, "s1", incoming("a.png", "b.png"))
			require.NoError(t, err)

			renamed, err := reg.ReorderAndRename(ctx, "s1", []string{refs[1].ID, refs[0].ID}, "p")
			require.NoError(t, err)
			assert.Equal(t, []FileRef{
				{ID: refs[1].ID, OriginalName: "p__1.png"},
				{ID: refs[0].ID, OriginalName: "p__2.png"},
			}, renamed)

			batch, err := reg.Batch(ctx, "s1")
			require.NoError(t, err)
			require.Equal(t, 2, batch.Len())
			assert.Equal(t, []byte("bytes of b.png"), batch.Files[0].Content)
			assert.Equal(t, "p__1.png", batch.Files[0].OriginalName)
			assert.Equal(t, []byte("bytes of a.png"), batch.Files[1].Content)
		})
	}
}

func TestReorderAndRenameEmptyPrefixLeavesBatch(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			reg := New(store)
			ctx := context.Background()

			refs, err := reg.Register(ctx, "s1", incoming("a.png", "b.png"))
			require.NoError(t, err)

			_, err = reg.ReorderAndRename(ctx, "s1", []string{refs[1].ID}, "")
			require.ErrorIs(t, err, ErrEmptyPrefix)

			batch, err := reg.Batch(ctx, "s1")
			require.NoError(t, err)
			assert.Equal(t, refs, batch.Refs())
		})
	}
}

func TestRegisterRegeneratesCollidingIDs(t *testing.T) {
	ids := []string{"dup", "dup", "dup", "fresh"}
	calls := 0
	reg := New(NewMemoryStore(), WithIDGenerator(func() string {
		id := ids[calls%len(ids)]
		calls++
		return id
	}))

	refs, err := reg.Register(context.Background(), "s1", incoming("a.png", "b.png"))
	require.NoError(t, err)
	assert.Equal(t, "dup", refs[0].ID)
	assert.Equal(t, "fresh", refs[1].ID)
}

func TestRegisterFailsWhenGeneratorKeepsColliding(t *testing.T) {
	reg := New(NewMemoryStore(), WithIDGenerator(func() string { return "same" }))

	_, err := reg.Register(context.Background(), "s1", incoming("a.png", "b.png"))
	require.Error(t, err)

	batch, err := reg.Batch(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, batch.Len())
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "k", sampleBatch("a.png", "b.png")))

	loaded, err := store.Load(ctx, "k")
	require.NoError(t, err)
	loaded.Files[0].OriginalName = "changed"
	loaded.Files = loaded.Files[:1]

	again, err := store.Load(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, 2, again.Len())
	assert.Equal(t, "a.png", again.Files[0].OriginalName)
}

func TestRedisStoreAppliesTTL(t *testing.T) {
	client, mr := testutils.SetupTestRedis(t)
	store := NewRedisStore(client, 10*time.Minute)

	require.NoError(t, store.Save(context.Background(), "k", sampleBatch("a.png")))
	assert.Equal(t, 10*time.Minute, mr.TTL(BatchPrefix+"k"))

	mr.FastForward(11 * time.Minute)
	batch, err := store.Load(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, 0, batch.Len())
}

func TestLargeBatchKeepsUploadOrder(t *testing.T) {
	names := []string{}
	for i := 0; i < 40; i++ {
		names = append(names, "img"+strconv.Itoa(i)+".jpg")
	}
	reg := New(NewMemoryStore())

	refs, err := reg.Register(context.Background(), "s1", incoming(names...))
	require.NoError(t, err)
	for i, ref := range refs {
		assert.Equal(t, names[i], ref.OriginalName)
	}
}
