package statsd

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizePrefix(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"  adhyan.admin  ": "adhyan.admin",
		"..ui..":           "ui",
		".":                "",
		"":                 "",
	}
	for input, want := range tests {
		assert.Equal(t, want, sanitizePrefix(input), "input %q", input)
	}
}

func TestNormalizeMetricName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		" api/user_update ": "api_user_update",
		"ui..request":       "ui.request",
		"two  words":        "two__words",
		"users/u1/delete":   "users_u1_delete",
	}
	for input, want := range tests {
		assert.Equal(t, want, normalizeMetricName(input), "input %q", input)
	}
}

func TestMetricName_PrefixJoin(t *testing.T) {
	t.Parallel()

	prefixed := &Client{prefix: "adhyan.admin"}
	assert.Equal(t, "adhyan.admin.ui.request", prefixed.metricName("ui.request"))
	assert.Equal(t, "", prefixed.metricName(""))

	bare := &Client{}
	assert.Equal(t, "ui.request", bare.metricName("ui.request"))
}

func TestFormatTags(t *testing.T) {
	t.Parallel()

	global := map[string]string{
		"env":        "prod",
		" instance ": " web-1 ",
	}
	local := map[string]string{
		"route": " board_update ",
		"":      "dropped",
		"env":   "stage",
	}

	assert.Equal(t, "|#env:stage,instance:web-1,route:board_update", formatTags(global, local))
	assert.Equal(t, "", formatTags(nil, nil))
}

func TestCloneTags(t *testing.T) {
	t.Parallel()

	original := map[string]string{"env": "prod", "": "dropped"}
	cloned := cloneTags(original)
	require.NotNil(t, cloned)
	assert.NotContains(t, cloned, "")

	cloned["env"] = "stage"
	assert.Equal(t, "prod", original["env"])
}

func TestClient_WireFormat(t *testing.T) {
	t.Parallel()

	clientConn, peer := net.Pipe()
	defer peer.Close()

	client := &Client{
		enabled:    true,
		conn:       clientConn,
		prefix:     "adhyan.admin",
		globalTags: map[string]string{"env": "test"},
	}

	lines := make(chan string, 1)
	go func() {
		buf := make([]byte, 256)
		for {
			n, err := peer.Read(buf)
			if err != nil {
				return
			}
			lines <- string(buf[:n])
		}
	}()

	client.Count("ui.request", 1, map[string]string{"route": "board"})
	assert.Equal(t, "adhyan.admin.ui.request:1|c|#env:test,route:board", <-lines)

	client.Gauge("sessions.active", 42, nil)
	assert.Equal(t, "adhyan.admin.sessions.active:42|g|#env:test", <-lines)

	client.Timing("api.user_update", 250*time.Millisecond, nil)
	assert.Equal(t, "adhyan.admin.api.user_update:250|ms|#env:test", <-lines)
}

func TestClient_EnabledAndClose(t *testing.T) {
	t.Parallel()

	clientConn, peer := net.Pipe()
	defer peer.Close()

	client := &Client{enabled: true, conn: clientConn}
	assert.True(t, client.Enabled())

	require.NoError(t, client.Close())
	assert.False(t, client.Enabled())
	require.NoError(t, client.Close(), "second close must be a no-op")

	var nilClient *Client
	assert.False(t, nilClient.Enabled())
	assert.NoError(t, nilClient.Close())
}

func TestNewClient_DisabledWithoutAddress(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Config{Enabled: true, Address: "   "})
	require.NoError(t, err)
	assert.False(t, client.Enabled())
}

func TestNewClient_DialError(t *testing.T) {
	t.Parallel()

	_, err := NewClient(Config{Enabled: true, Address: "bad address"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "statsd dial")
}
