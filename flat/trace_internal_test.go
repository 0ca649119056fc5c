package flat

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poset/logging"
	"github.com/katalvlaran/poset/registry"
)

// withTracing swaps in a fresh registry whose trace goes to buf, restoring
// the process registry when the test ends.
func withTracing(t *testing.T, buf *bytes.Buffer) {
	t.Helper()
	instance()
	prevReg, prevTracer := reg, tracer
	l := zerolog.New(buf).Level(zerolog.DebugLevel)
	use(registry.New(registry.WithLogger(logging.Component(l, "flat"))), l)
	t.Cleanup(func() { reg, tracer = prevReg, prevTracer })
}

func messages(t *testing.T, buf *bytes.Buffer) []string {
	t.Helper()
	var out []string
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var ev struct {
			Component string `json:"component"`
			Message   string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(sc.Bytes(), &ev))
		require.Equal(t, "flat", ev.Component)
		out = append(out, ev.Message)
	}

	return out
}

func TestTrace_NilArguments(t *testing.T) {
	var buf bytes.Buffer
	withTracing(t, &buf)

	p := New()
	name := "a"
	require.True(t, Insert(p, &name))
	require.False(t, Insert(p, nil))
	require.False(t, Add(p, nil, nil))
	require.False(t, Test(p, &name, nil))
	Delete(p)
	Delete(p)

	require.Equal(t, []string{
		`poset 0 created`,
		`poset 0, element "a" inserted`,
		`invalid value (NULL)`,
		`invalid value1 (NULL)`,
		`invalid value2 (NULL)`,
		`invalid value2 (NULL)`,
		`poset 0 deleted`,
		`poset 0 does not exist`,
	}, messages(t, &buf))
}
