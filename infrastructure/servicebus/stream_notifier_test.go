package servicebus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"enthro-backend/infrastructure/servicebus"
)

// TestNewStreamNotifier tests the creation of a new StreamNotifier
func TestNewStreamNotifier(t *testing.T) {
	notifier := servicebus.NewStreamNotifier(nil, "stream-events")
	assert.NotNil(t, notifier)
}
