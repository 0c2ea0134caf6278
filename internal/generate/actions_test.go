package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	dbpkg "github.com/dtnitsch/polishpages/pkg/db"
	"github.com/dtnitsch/polishpages/pkg/manifest"
	"github.com/dtnitsch/polishpages/pkg/storage"
)

func testApp() *cli.App {
	return &cli.App{
		Name: "polishpages",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config"},
			&cli.BoolFlag{Name: "quiet"},
		},
		Commands: []*cli.Command{
			{
				Name:   "generate",
				Action: GenerateAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "output"},
					&cli.StringFlag{Name: "origin"},
					&cli.IntFlag{Name: "workers"},
					&cli.BoolFlag{Name: "dry-run"},
					&cli.BoolFlag{Name: "no-db"},
					&cli.BoolFlag{Name: "check-language"},
				},
			},
			{
				Name:   "validate",
				Action: ValidateAction,
				Flags:  append([]cli.Flag{&cli.BoolFlag{Name: "check-language"}}, SourceFlags...),
			},
		},
	}
}

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	cfg := "db_path: " + filepath.Join(dir, "test.db") + "\noutput_dir: " + filepath.Join(dir, "dist") + "\n"
	path := filepath.Join(dir, "polishpages.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))
	return path
}

func TestGenerateActionWritesOutputsAndStoresRun(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)

	err := testApp().Run([]string{"polishpages", "--quiet", "--config", cfgPath, "generate", "--workers", "4"})
	require.NoError(t, err)

	out := filepath.Join(dir, "dist")
	for _, f := range []string{storage.CorpusFile, SitemapFile, RobotsFile, manifest.FileName} {
		assert.FileExists(t, filepath.Join(out, f))
	}
	entries, err := os.ReadDir(filepath.Join(out, storage.PagesDir))
	require.NoError(t, err)
	assert.Len(t, entries, 150)

	database, err := dbpkg.Open(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	defer database.Close()

	runs, err := database.ListRuns(0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 150, runs[0].PageCount)
	assert.True(t, runs[0].Valid)
}

func TestGenerateActionDryRun(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)

	err := testApp().Run([]string{"polishpages", "-quiet", "-config", cfgPath, "generate", "--dry-run"})
	require.NoError(t, err)

	assert.NoDirExists(t, filepath.Join(dir, "dist"))
	assert.NoFileExists(t, filepath.Join(dir, "test.db"))
}

func TestValidateActionFromCorpusFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)

	app := testApp()
	require.NoError(t, app.Run([]string{"polishpages", "--quiet", "--config", cfgPath, "generate", "--no-db"}))

	corpusFile := filepath.Join(dir, "dist", storage.CorpusFile)
	require.NoError(t, app.Run([]string{"polishpages", "--quiet", "--config", cfgPath, "validate", "--input", corpusFile}))
}

func TestValidateActionFromLatestRun(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)

	app := testApp()
	require.NoError(t, app.Run([]string{"polishpages", "--quiet", "--config", cfgPath, "generate"}))
	require.NoError(t, app.Run([]string{"polishpages", "--quiet", "--config", cfgPath, "validate"}))
}

func TestValidateActionRejectsTruncatedCorpus(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir)

	app := testApp()
	require.NoError(t, app.Run([]string{"polishpages", "--quiet", "--config", cfgPath, "generate", "--no-db"}))

	corpusFile := filepath.Join(dir, "dist", storage.CorpusFile)
	records, err := storage.LoadCorpus(corpusFile)
	require.NoError(t, err)
	s := storage.New(dir)
	require.NoError(t, s.WriteCorpus(records[:100]))

	app.ExitErrHandler = func(*cli.Context, error) {}
	err = app.Run([]string{"polishpages", "--quiet", "--config", cfgPath, "validate", "--input", s.Path(storage.CorpusFile)})
	require.Error(t, err)

	var exitErr cli.ExitCoder
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, err.Error(), "expected 150 pages, got 100")
}
