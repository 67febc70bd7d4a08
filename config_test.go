package hashring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 20, cfg.ReplicationFactor)
	assert.Equal(t, 271, cfg.PartitionCount)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_Rejected(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero replication factor", Config{ReplicationFactor: 0, PartitionCount: 100}},
		{"zero partition count", Config{ReplicationFactor: 3, PartitionCount: 0}},
		{"both zero", Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	ring, err := New(Config{ReplicationFactor: 0, PartitionCount: 100})
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Nil(t, ring, "no partial ring on invalid config")
}
