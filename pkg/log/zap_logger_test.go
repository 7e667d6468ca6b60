package log_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statelayer/sigil/pkg/log"
)

// TestZapLogger verifies level filtering, the naming hierarchy, key-value
// propagation and caller reporting of the zap-backed logger. Output is
// captured through an extra write syncer and parsed as JSON.
func TestZapLogger(t *testing.T) {
	cfg := log.Config{
		Format: "json",
		Level:  log.LevelDebug,
	}
	tws := &testWriteSyncer{}
	logger := log.NewZapLogger(cfg, tws)

	testName := "encoder"
	logger = logger.WithName(testName)

	keysAndValues := []any{"primaryType", "Mail", "fields", "2"}
	testMessage := "struct hashed"

	logger.Debug(testMessage, keysAndValues...)
	tws.AssertEntry(t, log.LevelDebug, testName, testMessage, keysAndValues...)

	logger.Info(testMessage, keysAndValues...)
	tws.AssertEntry(t, log.LevelInfo, testName, testMessage, keysAndValues...)

	logger.Warn(testMessage, keysAndValues...)
	tws.AssertEntry(t, log.LevelWarn, testName, testMessage, keysAndValues...)

	logger.Error(testMessage, keysAndValues...)
	tws.AssertEntry(t, log.LevelError, testName, testMessage, keysAndValues...)

	// Names join into a dot-separated hierarchy.
	testSubsystem := "domain"
	newExpectedName := fmt.Sprintf("%s.%s", testName, testSubsystem)
	logger = logger.WithName(testSubsystem)
	assert.Equal(t, newExpectedName, logger.Name())

	// Persistent pairs appear on every future entry.
	newPair := []any{"chainId", "1"}
	logger = logger.WithKV("chainId", "1")
	assert.Equal(t, newPair, logger.GetAllKV())
	allKeysAndValues := append(newPair, keysAndValues...)

	logger.Info(testMessage, keysAndValues...)
	tws.AssertEntry(t, log.LevelInfo, newExpectedName, testMessage, allKeysAndValues...)

	// Entries below the configured level are dropped.
	quiet := log.NewZapLogger(log.Config{Format: "json", Level: log.LevelError}, tws)
	tws.lastEntry = nil
	quiet.Info(testMessage)
	assert.Nil(t, tws.lastEntry)
	quiet.Error(testMessage)
	assert.NotNil(t, tws.lastEntry)
}

// testWriteSyncer is a zapcore.WriteSyncer that keeps the last written entry
// for assertion.
type testWriteSyncer struct {
	lastEntry []byte
}

func (tws *testWriteSyncer) Write(p []byte) (n int, err error) {
	tws.lastEntry = p
	return len(p), nil
}

func (tws *testWriteSyncer) Sync() error {
	return nil
}

// AssertEntry checks the last entry's level, logger name, message, caller
// file and key-value pairs.
func (tws *testWriteSyncer) AssertEntry(t *testing.T, level log.Level, name, message string, keysAndValues ...any) {
	t.Helper()

	entryMap := make(map[string]any)
	require.NoError(t, json.Unmarshal(tws.lastEntry, &entryMap), "failed to unmarshal log entry: %s", string(tws.lastEntry))

	assert.Contains(t, entryMap, "ts")
	assert.Equal(t, name, entryMap["logger"])
	assert.Equal(t, string(level), entryMap["level"])
	assert.Equal(t, message, entryMap["msg"])

	caller, _ := entryMap["caller"].(string)
	assert.True(t, strings.Contains(caller, "log/zap_logger_test.go"), "unexpected caller %q", caller)

	for i := 0; i < len(keysAndValues); i += 2 {
		key := keysAndValues[i]
		value := keysAndValues[i+1]
		assert.Equal(t, value, entryMap[key.(string)])
	}
}
