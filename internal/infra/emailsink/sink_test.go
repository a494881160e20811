package emailsink

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestSend_WritesEmailFile(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewSink(dir, nopLogger{})
	require.NoError(t, err)

	path, err := sink.Send(Email{
		To:      "jane.doe@example.com",
		ToName:  "Jane Doe",
		Subject: "Booking Confirmed - Haircut",
		Body:    "Your booking is confirmed.",
		Type:    "booking_created",
	})
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))

	filename := filepath.Base(path)
	assert.Contains(t, filename, "booking_created")
	assert.Contains(t, filename, "jane.doe_at_example.com")
	assert.True(t, strings.HasSuffix(filename, ".txt"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "To: Jane Doe <jane.doe@example.com>")
	assert.Contains(t, string(content), "Subject: Booking Confirmed - Haircut")
	assert.Contains(t, string(content), "Your booking is confirmed.")
}

func TestNewSink_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "emails")

	_, err := NewSink(dir, nopLogger{})
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "jane_at_example.com", sanitize("jane@example.com"))
	assert.Equal(t, "a_b_c_d", sanitize("a/b\\c d"))
}
