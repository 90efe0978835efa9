package main_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/is0692vs/ChronoClip-sub000/cmd/chronoclip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI against buffers and returns the captured output.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := main.NewMain().Run(testContext(), args, strings.NewReader(stdin), stdout, stderr)
	return stdout.String(), stderr.String(), err
}

// writeFile creates a temp file with the given content and returns its
// path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const eventPage = `<!DOCTYPE html>
<html>
<head><title>夏祭り2025 | ExampleTown</title></head>
<body>
<article>
  <h2>夏祭り2025</h2>
  <p>開催日: 2025年8月10日 18:00から</p>
  <p class="venue">中央公園</p>
</article>
</body>
</html>`

func TestCmdDetect(t *testing.T) {
	t.Parallel()

	t.Run("detects spans in argument text", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "", "detect", "次回は2025年8月10日 18:00に開催します", "--ref", "2025-04-01")
		require.NoError(t, err)
		assert.Contains(t, stdout, "2025-08-10")
		assert.Contains(t, stdout, "18:00")
	})

	t.Run("reads stdin when no argument given", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "meeting on 2025-12-01", "detect", "--ref", "2025-04-01")
		require.NoError(t, err)
		assert.Contains(t, stdout, "2025-12-01")
	})

	t.Run("emits JSON spans", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "", "detect", "2025/05/10に開催", "--ref", "2025-04-01", "--json")
		require.NoError(t, err)
		assert.Contains(t, stdout, `"normalizedDate": "2025-05-10"`)
		assert.Contains(t, stdout, `"recognizerId"`)
	})

	t.Run("reports when nothing is found", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "", "detect", "no temporal content here", "--ref", "2025-04-01")
		require.NoError(t, err)
		assert.Contains(t, stdout, "no temporal expressions found")
	})

	t.Run("rejects an invalid reference date", func(t *testing.T) {
		t.Parallel()

		_, _, err := run(t, "", "detect", "2025-05-10", "--ref", "bananas")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid reference date")
	})
}

func TestCmdExtract(t *testing.T) {
	t.Parallel()

	t.Run("extracts an event from a local page", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "event.html", eventPage)

		stdout, _, err := run(t, "", "extract", path, "--ref", "2025-04-01")
		require.NoError(t, err)
		assert.Contains(t, stdout, "夏祭り2025")
		assert.Contains(t, stdout, "2025-08-10T18:00:00")
		assert.Contains(t, stdout, "Asia/Tokyo")
		assert.Contains(t, stdout, "中央公園")
	})

	t.Run("emits JSON results", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "event.html", eventPage)

		stdout, _, err := run(t, "", "extract", path, "--ref", "2025-04-01", "--json")
		require.NoError(t, err)
		assert.Contains(t, stdout, `"title": "夏祭り2025"`)
		assert.Contains(t, stdout, `"dateTime": "2025-08-10T18:00:00"`)
		assert.Contains(t, stdout, `"strategyUsed"`)
	})

	t.Run("appends markdown when requested", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "event.html", eventPage)

		stdout, _, err := run(t, "", "extract", path, "--ref", "2025-04-01", "--markdown")
		require.NoError(t, err)
		assert.Contains(t, stdout, "## 夏祭り2025")
	})

	t.Run("honors a custom time zone", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "event.html", eventPage)

		stdout, _, err := run(t, "", "extract", path, "--ref", "2025-04-01", "--timezone", "America/New_York")
		require.NoError(t, err)
		assert.Contains(t, stdout, "America/New_York")
	})

	t.Run("fails for a missing file with no usable URL", func(t *testing.T) {
		t.Parallel()

		_, _, err := run(t, "", "extract", filepath.Join(t.TempDir(), "missing.html"), "--ref", "2025-04-01")
		require.Error(t, err)
	})
}

func TestCmdScan(t *testing.T) {
	t.Parallel()

	const calendarPage = `<!DOCTYPE html>
<html>
<head><title>Town Calendar</title></head>
<body>
<h1>Town Calendar</h1>
<p>Spring fair on 2025-05-10 at the plaza.</p>
<p>Nothing scheduled for the rest of the season.</p>
</body>
</html>`

	t.Run("lists dated events in a page", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "calendar.html", calendarPage)

		stdout, _, err := run(t, "", "scan", path, "--ref", "2025-04-01")
		require.NoError(t, err)
		assert.Contains(t, stdout, "1 events found")
		assert.Contains(t, stdout, "2025-05-10")
	})

	t.Run("emits JSON results", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "calendar.html", calendarPage)

		stdout, _, err := run(t, "", "scan", path, "--ref", "2025-04-01", "--json")
		require.NoError(t, err)
		assert.Contains(t, stdout, `"normalizedDate": "2025-05-10"`)
	})

	t.Run("writes an iCalendar file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "calendar.html", calendarPage)
		icsPath := filepath.Join(t.TempDir(), "events.ics")

		stdout, _, err := run(t, "", "scan", path, "--ref", "2025-04-01", "--ics", icsPath)
		require.NoError(t, err)
		assert.Contains(t, stdout, "wrote "+icsPath)

		data, err := os.ReadFile(icsPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), "BEGIN:VCALENDAR")
		assert.Contains(t, string(data), "DTSTART;VALUE=DATE:20250510")
	})
}

func TestCmdRules(t *testing.T) {
	t.Parallel()

	const rulesYAML = `rulesEnabled: true
rules:
  - domain: connpass.com
    strategy: connpass
  - domain: events.example.com
    titleSelector: ".event-title"
    dateSelector: ".event-date"
    priority: 5
`

	t.Run("lists all rules", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "rules.yaml", rulesYAML)

		stdout, _, err := run(t, "", "rules", path)
		require.NoError(t, err)
		assert.Contains(t, stdout, "connpass.com")
		assert.Contains(t, stdout, "events.example.com")
		assert.Contains(t, stdout, ".event-title")
	})

	t.Run("shows the effective rule for a host", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "rules.yaml", rulesYAML)

		stdout, _, err := run(t, "", "rules", path, "--host", "connpass.com")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Strategy: connpass")
	})

	t.Run("reports hosts without a rule", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "rules.yaml", rulesYAML)

		stdout, _, err := run(t, "", "rules", path, "--host", "unrelated.dev")
		require.NoError(t, err)
		assert.Contains(t, stdout, "no rule matches unrelated.dev")
	})

	t.Run("emits rules as JSON", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "rules.yaml", rulesYAML)

		stdout, _, err := run(t, "", "rules", path, "--json")
		require.NoError(t, err)
		assert.Contains(t, stdout, `"domain": "connpass.com"`)
	})

	t.Run("fails for a missing rules file", func(t *testing.T) {
		t.Parallel()

		_, _, err := run(t, "", "rules", filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}
