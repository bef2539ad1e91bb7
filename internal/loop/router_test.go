package loop

import (
	"context"
	"testing"

	"github.com/genricoloni/cliploop/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRouter_ConfirmRequiresLoaded(t *testing.T) {
	seeker := &recordingSeeker{}
	r := NewRouter(zap.NewNop(), seeker)

	_, err := r.Confirm(context.Background())

	require.ErrorIs(t, err, ErrNotLoaded)
	assert.Same(t, r.Selector(), r.Current())
	assert.Nil(t, r.Previewer())
	assert.Empty(t, seeker.targets)
}

func TestRouter_HandOff(t *testing.T) {
	ctx := context.Background()
	seeker := &recordingSeeker{}
	r := NewRouter(zap.NewNop(), seeker)

	r.HandleEvent(ctx, loaded(60000, 1000))
	r.Selector().SetStart(5)
	r.Selector().SetEnd(15)

	p, err := r.Confirm(ctx)
	require.NoError(t, err)

	assert.Equal(t, domain.LoopBoundaries{Start: 5, End: 15}, p.Boundaries())
	assert.Same(t, p, r.Current())
	assert.Nil(t, r.Selector())
	assert.Equal(t, []int64{5000}, seeker.targets, "previewer seeks to start on mount")

	// the previewer enforces its own boundaries
	r.HandleEvent(ctx, loaded(60000, 14999))
	r.HandleEvent(ctx, loaded(60000, 15000))
	assert.Equal(t, []int64{5000, 5000}, seeker.targets)

	again, err := r.Confirm(ctx)
	require.NoError(t, err)
	assert.Same(t, p, again)
	assert.Len(t, seeker.targets, 2, "confirming twice does not remount")
}

func TestRouter_BackResetsSelection(t *testing.T) {
	ctx := context.Background()
	r := NewRouter(zap.NewNop(), &recordingSeeker{})
	first := r.Selector()

	r.HandleEvent(ctx, loaded(60000, 0))
	first.SetStart(30)
	first.SetEnd(40)
	_, err := r.Confirm(ctx)
	require.NoError(t, err)

	sel := r.Back(ctx)

	require.NotNil(t, sel)
	assert.NotSame(t, first, sel)
	assert.Nil(t, r.Previewer())
	assert.Equal(t, domain.RangeSelection{StartSeconds: 0, EndSeconds: 10}, sel.Selection())
	assert.Same(t, sel, r.Back(ctx))
}
