package tally

import (
	"context"
	"testing"

	"github.com/KirkDiggler/diceroller/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory()

	got, err := repo.GetTally(ctx, &GetTallyInput{PlayerID: "player-1"})
	require.NoError(t, err)
	assert.Equal(t, models.WinTally{}, *got)

	for i := 0; i < 3; i++ {
		_, err = repo.RecordResult(ctx, &RecordResultInput{
			PlayerID: "player-1",
			Delta:    models.WinDelta{Computer: 1},
		})
		require.NoError(t, err)
	}

	got, err = repo.GetTally(ctx, &GetTallyInput{PlayerID: "player-1"})
	require.NoError(t, err)
	assert.Equal(t, models.WinTally{Computer: 3}, *got)

	_, err = repo.RecordResult(ctx, nil)
	assert.Error(t, err)
}
