package loop

import (
	"context"
	"testing"

	"github.com/genricoloni/cliploop/internal/domain"
	"github.com/genricoloni/cliploop/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestLoopPreviewer_MountSeeksOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	seeker := mocks.NewMockSeeker(ctrl)
	seeker.EXPECT().SeekTo(gomock.Any(), int64(5000)).Return(nil).Times(1)

	p := NewLoopPreviewer(zap.NewNop(), seeker, domain.LoopBoundaries{Start: 5, End: 15})
	p.Mount(context.Background())
	p.Mount(context.Background())
}

func TestLoopPreviewer_EndToEnd(t *testing.T) {
	ctx := context.Background()
	seeker := &recordingSeeker{}
	p := NewLoopPreviewer(zap.NewNop(), seeker, domain.LoopBoundaries{Start: 5, End: 15})

	p.Mount(ctx)
	assert.Equal(t, []int64{5000}, seeker.targets)

	// three laps of a player that honours each seek on the following tick
	position := int64(0)
	for tick := 0; tick < 3*42; tick++ {
		if n := len(seeker.targets); n > 0 {
			position = seeker.targets[n-1]
			seeker.targets = seeker.targets[:0]
		}
		p.HandleEvent(ctx, loaded(60000, position))
		position += 250
		assert.Less(t, position, int64(15000+250+1))
	}

	assert.Equal(t, 3, p.LoopSeeks())
}

func TestLoopPreviewer_NoLoopUntilLoaded(t *testing.T) {
	ctx := context.Background()
	seeker := &recordingSeeker{}
	p := NewLoopPreviewer(zap.NewNop(), seeker, domain.LoopBoundaries{Start: 1, End: 2})

	p.HandleEvent(ctx, domain.StatusEvent(domain.PlaybackSnapshot{IsLoaded: false, PositionMillis: 5000}))
	assert.Empty(t, seeker.targets)

	p.HandleEvent(ctx, loaded(10000, 5000))
	assert.Equal(t, []int64{1000}, seeker.targets)
}

func TestLoopPreviewer_Describe(t *testing.T) {
	p := NewLoopPreviewer(zap.NewNop(), &recordingSeeker{}, domain.LoopBoundaries{Start: 5, End: 75})
	assert.Equal(t, "Playing from 0:05 to 1:15", p.Describe())
	assert.Equal(t, domain.LoopBoundaries{Start: 5, End: 75}, p.Boundaries())
}
