package mocks

import (
	"context"
	"time"

	"availability-watcher/core/recgov"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of recgov.Client
type Client struct {
	mock.Mock
}

func (m *Client) FetchMonthly(ctx context.Context, facilityID, year int, month time.Month) (*recgov.MonthlyAvailability, error) {
	args := m.Called(ctx, facilityID, year, month)
	if out, ok := args.Get(0).(*recgov.MonthlyAvailability); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) FetchDaily(ctx context.Context, facilityID int, date string) ([]recgov.DailyAvailability, error) {
	args := m.Called(ctx, facilityID, date)
	if out, ok := args.Get(0).([]recgov.DailyAvailability); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}
