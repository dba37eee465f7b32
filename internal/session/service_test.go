package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodcart/shopping-assistant/internal/catalog"
	"github.com/moodcart/shopping-assistant/internal/dialogue"
	"github.com/moodcart/shopping-assistant/internal/image"
	"github.com/moodcart/shopping-assistant/internal/model"
	"github.com/moodcart/shopping-assistant/pkg/clock"
	"github.com/moodcart/shopping-assistant/pkg/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	fake := clock.NewFake(time.Unix(1700000000, 0))
	tax := catalog.Topics(catalog.TopicSetCategories)
	deps := dialogue.Deps{
		Taxonomy:    tax,
		Resolver:    catalog.NewResolver(tax, fake, 0, logger.NewNop()),
		Pipeline:    image.NewPipeline(image.NewStaticFetcher(fake, 0, 0, 0), 4, logger.NewNop()),
		Clock:       fake,
		TypingDelay: 500 * time.Millisecond,
		Logger:      logger.NewNop(),
	}
	return NewService(deps, logger.NewNop())
}

func TestCreateAndGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	sess, err := svc.Create(ctx)
	require.NoError(t, err)
	_, err = uuid.Parse(sess.ID)
	assert.NoError(t, err, "session id is a uuid")
	assert.False(t, sess.CreatedAt.IsZero())

	meta, engine, err := svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, meta.ID)
	require.NotNil(t, engine)

	snap := engine.Snapshot()
	require.Len(t, snap.Messages, 1, "engine greets on creation")
	assert.Equal(t, model.StageAwaitingTopic, snap.Stage)
}

func TestGetUnknown(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.Get(context.Background(), uuid.Must(uuid.NewV7()).String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	sess, err := svc.Create(ctx)
	require.NoError(t, err)
	_, engine, err := svc.Get(ctx, sess.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, sess.ID))

	_, _, err = svc.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound, "deleted sessions are gone")
	assert.ErrorIs(t, svc.Delete(ctx, sess.ID), ErrNotFound, "double delete")

	engine.SubmitText("hello")
	assert.Len(t, engine.Snapshot().Messages, 1, "engine is closed with the session")
}

func TestList(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		sess, err := svc.Create(ctx)
		require.NoError(t, err)
		ids = append(ids, sess.ID)
		time.Sleep(2 * time.Millisecond) // distinct CreatedAt for ordering
	}
	require.NoError(t, svc.Delete(ctx, ids[2]))

	resp, err := svc.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Total)
	assert.False(t, resp.HasMore)
	require.Len(t, resp.Sessions, 4)
	for i := 1; i < len(resp.Sessions); i++ {
		assert.True(t, !resp.Sessions[i-1].CreatedAt.Before(resp.Sessions[i].CreatedAt), "newest first")
	}
	for _, s := range resp.Sessions {
		assert.NotEqual(t, ids[2], s.ID, "deleted sessions are not listed")
	}

	t.Run("pagination", func(t *testing.T) {
		page, err := svc.List(ctx, 2, 0)
		require.NoError(t, err)
		assert.Len(t, page.Sessions, 2)
		assert.True(t, page.HasMore)

		rest, err := svc.List(ctx, 10, 2)
		require.NoError(t, err)
		assert.Len(t, rest.Sessions, 2)
		assert.False(t, rest.HasMore)

		empty, err := svc.List(ctx, 10, 100)
		require.NoError(t, err)
		assert.Empty(t, empty.Sessions)
	})
}

func TestTouch(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	sess, err := svc.Create(ctx)
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)
	svc.Touch(sess.ID)

	meta, _, err := svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, meta.UpdatedAt.After(meta.CreatedAt))
}
