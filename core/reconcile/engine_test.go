package reconcile_test

import (
	"testing"
	"time"

	"availability-watcher/core/recgov"
	"availability-watcher/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func detail(invAny, invSecondary, resAny, resSecondary int) recgov.DailyAvailability {
	return recgov.DailyAvailability{
		InventoryCount:   recgov.Count{Any: invAny, AnySecondary: invSecondary},
		ReservationCount: recgov.Count{Any: resAny, AnySecondary: resSecondary},
	}
}

var evalTime = time.Date(2024, 5, 9, 12, 0, 0, 0, time.UTC)

func TestQuantity(t *testing.T) {
	tests := []struct {
		name             string
		detail           recgov.DailyAvailability
		includeSecondary bool
		want             int
	}{
		{"SecondaryBalanced_Included", detail(10, 5, 7, 5), true, 3},
		{"SecondaryBalanced_Excluded", detail(10, 5, 7, 5), false, 3},
		{"SecondaryOpen_Included", detail(10, 8, 10, 2), true, 6},
		{"SecondaryOpen_Excluded", detail(10, 8, 10, 2), false, 0},
		{"Oversold", detail(10, 0, 12, 0), true, -2},
		{"Empty", detail(0, 0, 0, 0), true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reconcile.Quantity(tt.detail, tt.includeSecondary))
		})
	}
}

func TestIncludeSecondary(t *testing.T) {
	tests := []struct {
		name    string
		summary *recgov.TourSummary
		want    bool
		wantErr bool
	}{
		{"NilSummary", nil, true, false},
		{"NoTimestamp", &recgov.TourSummary{}, true, false},
		{"BlankTimestamp", &recgov.TourSummary{NextReleaseTimestamp: strPtr("  ")}, true, false},
		{"FutureRelease", &recgov.TourSummary{NextReleaseTimestamp: strPtr("2024-05-10T07:00:00-06:00")}, false, false},
		{"PastRelease", &recgov.TourSummary{NextReleaseTimestamp: strPtr("2024-05-08T07:00:00-06:00")}, true, false},
		{"ExactlyNow", &recgov.TourSummary{NextReleaseTimestamp: strPtr("2024-05-09T06:00:00-06:00")}, true, false},
		{"UTCDesignator", &recgov.TourSummary{NextReleaseTimestamp: strPtr("2024-05-09T12:00:01Z")}, false, false},
		{"Malformed", &recgov.TourSummary{NextReleaseTimestamp: strPtr("05/09/2024 07:00")}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reconcile.IncludeSecondary(tt.summary, evalTime)
			if tt.wantErr {
				assert.ErrorIs(t, err, reconcile.ErrInvalidReleaseTimestamp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReconcile(t *testing.T) {
	t.Run("FutureReleaseExcludesSecondary", func(t *testing.T) {
		summary := &recgov.TourSummary{NextReleaseTimestamp: strPtr("2024-05-10T07:00:00-06:00")}
		got, err := reconcile.Reconcile("2024-05-10", summary, detail(10, 8, 9, 0), evalTime)
		require.NoError(t, err)
		assert.Equal(t, reconcile.EffectiveAvailability{Date: "2024-05-10", Quantity: 1, IncludeSecondary: false}, got)
		assert.True(t, got.Available())
	})

	t.Run("PastReleaseIncludesSecondary", func(t *testing.T) {
		summary := &recgov.TourSummary{NextReleaseTimestamp: strPtr("2024-05-01T07:00:00-06:00")}
		got, err := reconcile.Reconcile("2024-05-10", summary, detail(10, 8, 9, 0), evalTime)
		require.NoError(t, err)
		assert.Equal(t, 9, got.Quantity)
		assert.True(t, got.IncludeSecondary)
	})

	t.Run("ZeroIsNotAvailable", func(t *testing.T) {
		got, err := reconcile.Reconcile("2024-05-10", &recgov.TourSummary{}, detail(10, 5, 10, 5), evalTime)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Quantity)
		assert.False(t, got.Available())
	})

	t.Run("NegativeIsNotAvailable", func(t *testing.T) {
		got, err := reconcile.Reconcile("2024-05-10", &recgov.TourSummary{}, detail(1, 0, 4, 0), evalTime)
		require.NoError(t, err)
		assert.Equal(t, -3, got.Quantity)
		assert.False(t, got.Available())
	})

	t.Run("MissingSummary", func(t *testing.T) {
		_, err := reconcile.Reconcile("2024-05-10", nil, detail(10, 0, 0, 0), evalTime)
		assert.ErrorIs(t, err, reconcile.ErrMissingSummary)
		assert.Contains(t, err.Error(), "2024-05-10")
	})

	t.Run("InvalidTimestamp", func(t *testing.T) {
		summary := &recgov.TourSummary{NextReleaseTimestamp: strPtr("tomorrow")}
		_, err := reconcile.Reconcile("2024-05-10", summary, detail(10, 0, 0, 0), evalTime)
		assert.ErrorIs(t, err, reconcile.ErrInvalidReleaseTimestamp)
	})

	t.Run("Idempotent", func(t *testing.T) {
		summary := &recgov.TourSummary{NextReleaseTimestamp: strPtr("2024-05-09T00:00:00Z")}
		d := detail(10, 5, 7, 1)
		first, err1 := reconcile.Reconcile("2024-05-10", summary, d, evalTime)
		second, err2 := reconcile.Reconcile("2024-05-10", summary, d, evalTime)
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, first, second)
	})
}

func TestLookupSummary(t *testing.T) {
	monthly := &recgov.MonthlyAvailability{
		Dates: map[string]recgov.MonthlyDaySummary{
			"2024-05-10": {
				Tours: map[string]recgov.TourSummary{
					"10086746": {TourID: 10086746, LocalDate: "2024-05-10"},
				},
			},
		},
	}

	found := reconcile.LookupSummary(monthly, "2024-05-10", 10086746)
	require.NotNil(t, found)
	assert.Equal(t, 10086746, found.TourID)

	assert.Nil(t, reconcile.LookupSummary(monthly, "2024-05-11", 10086746), "date absent")
	assert.Nil(t, reconcile.LookupSummary(monthly, "2024-05-10", 1), "tour absent")
	assert.Nil(t, reconcile.LookupSummary(nil, "2024-05-10", 10086746), "nil response")
}
