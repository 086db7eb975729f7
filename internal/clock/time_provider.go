package clock

import "time"

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks github.com/Skelly0/DuelBot/internal/clock TimeProvider

// TimeProvider supplies the current time; the registry and sweeper use it for match ages
type TimeProvider interface {
	Now() time.Time
}

type systemTimeProvider struct{}

// NewSystemTimeProvider returns a TimeProvider reading the wall clock in UTC
func NewSystemTimeProvider() TimeProvider {
	return systemTimeProvider{}
}

func (systemTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
