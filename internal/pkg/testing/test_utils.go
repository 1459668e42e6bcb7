package testing

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/config"
	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/logger"
)

// SetupTestLogger sets up a logger for testing purposes.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	err := logger.InitLogger(settings)
	require.NoError(t, err)

	log, err := logger.GetLogger()
	require.NoError(t, err)

	return log
}

// FixedClock returns a clock function frozen at the given instant.
func FixedClock(instant time.Time) func() time.Time {
	return func() time.Time { return instant }
}

// SequenceReader is a deterministic random source for tests, yielding a
// repeating byte sequence.
type SequenceReader struct {
	next uint32
}

// Read fills p with a deterministic counter sequence.
func (r *SequenceReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(atomic.AddUint32(&r.next, 1))
	}
	return len(p), nil
}
