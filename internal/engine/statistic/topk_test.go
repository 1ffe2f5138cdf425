package statistic

import (
	"Go2TrafficStats/internal/model"
	"testing"

	"github.com/stretchr/testify/require"
)

func counts(records []model.Record) []uint32 {
	out := make([]uint32, 0, len(records))
	for _, r := range records {
		out = append(out, r.Count)
	}
	return out
}

func TestTopK_ProcessRecord(t *testing.T) {
	tests := []struct {
		name   string
		counts []uint32
		want   []uint32
	}{
		{
			name:   "increasing",
			counts: []uint32{1, 2, 3, 4, 5, 6, 7, 8, 9},
			want:   []uint32{9, 8, 7},
		},
		{
			name:   "all equal keeps only the first",
			counts: []uint32{10, 10, 10, 10, 10, 10, 10, 10, 10},
			want:   []uint32{10},
		},
		{
			name:   "mixed",
			counts: []uint32{4, 9, 2, 7, 8, 1, 12},
			want:   []uint32{12, 9, 8},
		},
		{
			name:   "decreasing",
			counts: []uint32{9, 8, 7},
			want:   []uint32{9},
		},
		{
			name:   "empty",
			counts: nil,
			want:   []uint32{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top := NewTopK()
			for _, c := range tt.counts {
				require.NoError(t, top.ProcessRecord(model.Record{Count: c}))
			}
			require.Equal(t, tt.want, counts(top.Records()))
		})
	}
}

// A record that is not larger than any tracked entry is dropped even when fewer
// than three entries are held. This pins that behavior; changing it must be deliberate.
func TestTopK_NoAppendWhenNothingSmaller(t *testing.T) {
	top := NewTopK()
	require.NoError(t, top.ProcessRecord(model.Record{Timestamp: "a", Count: 5}))
	require.NoError(t, top.ProcessRecord(model.Record{Timestamp: "b", Count: 3}))

	require.Equal(t, []model.Record{{Timestamp: "a", Count: 5}}, top.Records())

	_, err := top.Top3()
	require.ErrorIs(t, err, model.ErrInsufficientData)
}

func TestTopK_TiesKeepArrivalOrder(t *testing.T) {
	top := NewTopK()
	for _, r := range []model.Record{
		{Timestamp: "t0", Count: 1},
		{Timestamp: "t1", Count: 5},
		{Timestamp: "t2", Count: 5},
		{Timestamp: "t3", Count: 6},
	} {
		require.NoError(t, top.ProcessRecord(r))
	}

	// t2 only displaces t0; it lands in front of the first strictly smaller entry.
	require.Equal(t, []model.Record{
		{Timestamp: "t3", Count: 6},
		{Timestamp: "t1", Count: 5},
		{Timestamp: "t2", Count: 5},
	}, top.Records())
}

func TestTopK_Top3(t *testing.T) {
	top := NewTopK()
	for i := uint32(1); i <= 9; i++ {
		require.NoError(t, top.ProcessRecord(model.Record{Count: i}))
	}

	first, err := top.Top3()
	require.NoError(t, err)
	second, err := top.Top3()
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, [TopSize]model.Record{{Count: 9}, {Count: 8}, {Count: 7}}, first)
}

func TestTopK_Top3NotEnoughData(t *testing.T) {
	top := NewTopK()
	require.NoError(t, top.ProcessRecord(model.Record{Count: 1}))
	require.NoError(t, top.ProcessRecord(model.Record{Count: 2}))

	_, err := top.Top3()
	require.ErrorIs(t, err, model.ErrInsufficientData)
}

func TestTopK_BoundedAndSorted(t *testing.T) {
	top := NewTopK()
	for _, c := range []uint32{3, 17, 4, 4, 99, 0, 23, 17, 18, 5, 100, 2} {
		require.NoError(t, top.ProcessRecord(model.Record{Count: c}))
		got := counts(top.Records())
		require.LessOrEqual(t, len(got), TopSize)
		for i := 1; i < len(got); i++ {
			require.GreaterOrEqual(t, got[i-1], got[i])
		}
	}
	require.Equal(t, []uint32{100, 99, 23}, counts(top.Records()))
}

func TestTopK_Reset(t *testing.T) {
	top := NewTopK()
	for i := uint32(1); i <= 4; i++ {
		require.NoError(t, top.ProcessRecord(model.Record{Count: i}))
	}
	top.Reset()
	require.Empty(t, top.Records())

	require.NoError(t, top.ProcessRecord(model.Record{Count: 1}))
	require.Equal(t, []uint32{1}, counts(top.Records()))
}
