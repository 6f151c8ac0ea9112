package testutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mingzhangyang/bond-lab/internal/infrastructure/monitoring/logging"
	"github.com/mingzhangyang/bond-lab/internal/testutil"
)

func TestMockLogger(t *testing.T) {
	logger := testutil.NewMockLogger()

	logger.Info("test info", logging.String("key", "value"))

	messages := logger.GetMessages()
	assert.Len(t, messages, 1)
	assert.Equal(t, "info", messages[0].Level)
	assert.Equal(t, "test info", messages[0].Message)
	assert.Equal(t, "value", messages[0].Field("key"))
	assert.Nil(t, messages[0].Field("missing"))

	logger.Clear()
	assert.Len(t, logger.GetMessages(), 0)

	logger.Error("test error")
	assert.True(t, logger.HasMessage("error", "test error"))
	assert.False(t, logger.HasMessage("info", "test info"))
}

func TestMockLogger_ChildrenShareRecord(t *testing.T) {
	root := testutil.NewMockLogger()
	child := root.Named("simulation").With(logging.String("session", "s1")).Named("drag")

	child.Warn("slow tick", logging.Int("ms", 40))

	msg, ok := root.Find("warn", "slow tick")
	require.True(t, ok)
	assert.Equal(t, "simulation.drag", msg.Logger)
	assert.Equal(t, "s1", msg.Field("session"))
	assert.Equal(t, 40, msg.Field("ms"))
}

//Personal.AI order the ending
