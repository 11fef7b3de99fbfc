package service

import (
	"fmt"
	"testing"

	"nexusforge/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSysLogService_NewestFirst(t *testing.T) {
	store := newFakeStore()
	svc := testSysLog(store)

	svc.Log(model.LogInfo, "first")
	svc.Log(model.LogWarn, "second")

	logs := svc.Logs()
	require.Len(t, logs, 2)
	assert.Equal(t, "second", logs[0].Message)
	assert.Equal(t, model.LogWarn, logs[0].Level)
	assert.Equal(t, "first", logs[1].Message)
	assert.NotEmpty(t, logs[0].ID)
	assert.False(t, logs[0].Timestamp.IsZero())
}

func TestSysLogService_CapsAtMaxEntries(t *testing.T) {
	store := newFakeStore()
	svc := NewSysLogService(store, 5, zap.NewNop())

	for i := 0; i < 8; i++ {
		svc.Log(model.LogInfo, fmt.Sprintf("entry %d", i))
	}

	logs := svc.Logs()
	require.Len(t, logs, 5)
	assert.Equal(t, "entry 7", logs[0].Message)
	assert.Equal(t, "entry 3", logs[4].Message)
}

func TestSysLogService_SurvivesRestart(t *testing.T) {
	store := newFakeStore()
	svc := testSysLog(store)
	svc.Log(model.LogError, "boom")

	restarted := testSysLog(store)
	logs := restarted.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, model.LogError, logs[0].Level)
	assert.False(t, logs[0].Timestamp.IsZero())
}

func TestSysLogService_Trim(t *testing.T) {
	store := newFakeStore()
	big := NewSysLogService(store, 100, zap.NewNop())
	for i := 0; i < 10; i++ {
		big.Log(model.LogInfo, fmt.Sprintf("entry %d", i))
	}

	// Перезапуск с меньшим лимитом: Trim убирает лишнее
	small := NewSysLogService(store, 4, zap.NewNop())
	assert.Equal(t, 6, small.Trim())
	assert.Len(t, small.Logs(), 4)
	assert.Equal(t, 0, small.Trim())
}
