package dcm_test

import (
	"testing"

	"github.com/codeninja55/dcmcore/dcm"
	"github.com/codeninja55/dcmcore/dcmerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 6: offsets=[0,100,250], first_frame_offset=12.
func TestBasicOffsetTable_GetFrameOffset(t *testing.T) {
	bot, err := dcm.NewBasicOffsetTable([]int64{0, 100, 250}, 12)
	require.NoError(t, err)

	assert.Equal(t, 3, bot.NumFrames())

	off1, err := bot.GetFrameOffset(1)
	require.NoError(t, err)
	assert.Equal(t, int64(12), off1)

	off3, err := bot.GetFrameOffset(3)
	require.NoError(t, err)
	assert.Equal(t, int64(262), off3)
}

func TestBasicOffsetTable_GetFrameOffset_OutOfRange(t *testing.T) {
	bot, err := dcm.NewBasicOffsetTable([]int64{0, 100}, 0)
	require.NoError(t, err)

	_, err = bot.GetFrameOffset(0)
	require.Error(t, err)
	assert.True(t, dcmerr.IsCode(err, dcmerr.Invalid))

	_, err = bot.GetFrameOffset(3)
	require.Error(t, err)
}

func TestBasicOffsetTable_EmptyOffsets_Fails(t *testing.T) {
	_, err := dcm.NewBasicOffsetTable(nil, 0)
	require.Error(t, err)
	assert.True(t, dcmerr.IsCode(err, dcmerr.Invalid))
}

func TestBasicOffsetTable_String(t *testing.T) {
	bot, err := dcm.NewBasicOffsetTable([]int64{0, 100, 250}, 12)
	require.NoError(t, err)
	assert.Equal(t, "[12, 112, 262]", bot.String())
}
