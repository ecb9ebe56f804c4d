package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoester/paideia/internal/repository"
	"github.com/dkoester/paideia/internal/rules"
	"github.com/dkoester/paideia/internal/service"
	"github.com/dkoester/paideia/internal/testutil"
)

// testApp wires a full App backed by an in-memory DB and the embedded
// default ruleset for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	rs, err := rules.LoadRuleset("")
	require.NoError(t, err)

	return &App{
		Plan:          service.NewPlanService(rs),
		Catalog:       service.NewCatalogService(rs),
		Notes:         service.NewNoteService(repository.NewSQLiteNoteRepo(db)),
		Archive:       service.NewArchiveService(repository.NewSQLitePlanRepo(db)),
		IsInteractive: func() bool { return false },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

const testCatalog = `Kuerzel;Modulname;Startdatum;Enddatum;Klassen;Belegt
PSM1;Professional Scrum Master I;09.02.2026;13.02.2026;1;0
PSM2;Professional Scrum Master II;16.02.2026;20.02.2026;1;0
SEO;Suchmaschinenoptimierung;23.02.2026;06.03.2026;1;0
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPlanCmd_RequiresModulesWithoutTTY(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "plan")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--modules")
}

func TestPlanCmd_EndToEnd(t *testing.T) {
	app := testApp(t)
	path := writeCatalog(t, testCatalog)

	out, err := executeCmd(t, app, "plan",
		"--catalog", path,
		"--modules", "PSM1,PSM2",
		"--start", "2026-02-09",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Best schedule found.")
	assert.Contains(t, out, "PSM1 -> PSM2")
}

func TestPlanCmd_BadStartDate(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "plan",
		"--modules", "PSM1",
		"--start", "not-a-date",
	)
	require.Error(t, err)
}

func TestPlanCmd_SaveAndShow(t *testing.T) {
	app := testApp(t)
	path := writeCatalog(t, testCatalog)

	out, err := executeCmd(t, app, "plan",
		"--catalog", path,
		"--modules", "PSM1",
		"--start", "2026-02-09",
		"--save", "february",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Saved as ")

	listOut, err := executeCmd(t, app, "plans", "list")
	require.NoError(t, err)
	assert.Contains(t, listOut, "february")

	// The truncated ID printed by the listing must be accepted back.
	idx := strings.Index(out, "Saved as ")
	require.NotEqual(t, -1, idx)
	id := strings.TrimSuffix(strings.TrimSpace(out[idx+len("Saved as "):]), ".")
	require.Len(t, id, 36)

	showOut, err := executeCmd(t, app, "plans", "show", id[:8])
	require.NoError(t, err)
	assert.Contains(t, showOut, "PSM1")

	_, err = executeCmd(t, app, "plans", "rm", id[:8])
	require.NoError(t, err)
}

func TestCheckCmd_ReportsMissing(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "check", "--modules", "PSM2")
	require.Error(t, err)
	assert.Contains(t, out, "Missing prerequisites:")
	assert.Contains(t, out, "PSM1")
}

func TestCheckCmd_AllCovered(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "check", "--modules", "PSM1,PSM2")
	require.NoError(t, err)
	assert.Contains(t, out, "All prerequisites are covered")
}

func TestCatalogCmd(t *testing.T) {
	app := testApp(t)
	path := writeCatalog(t, testCatalog)

	out, err := executeCmd(t, app, "catalog", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "PSM1")
	assert.Contains(t, out, "Projektmanagement")
}

func TestNoteCmd_RoundTrip(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "note", "set", "PSM1", "Runs", "every", "month.")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "note", "show", "PSM1")
	require.NoError(t, err)
	assert.Contains(t, out, "Runs every month.")

	listOut, err := executeCmd(t, app, "note", "list")
	require.NoError(t, err)
	assert.Contains(t, listOut, "PSM1")

	_, err = executeCmd(t, app, "note", "rm", "PSM1")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "note", "show", "PSM1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestWizardHelpers(t *testing.T) {
	d := today()
	assert.Equal(t, time.UTC, d.Location())
	assert.Zero(t, d.Hour()+d.Minute()+d.Second(), "default desired start must be a bare date")

	assert.Equal(t, []string{"PSM1", "AKI"}, splitModules(" PSM1, AKI ,"))
	assert.Error(t, validateModuleList("  ,  "))
	assert.NoError(t, validateOptionalDate(""))
	assert.NoError(t, validateOptionalDate("2026-02-09"))
	assert.NoError(t, validateOptionalDate("09.02.2026"))
	assert.Error(t, validateOptionalDate("Feb 9"))
}
