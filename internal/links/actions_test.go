package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/polishpages/internal/generate"
)

func testApp() *cli.App {
	cmd := func(name string, action cli.ActionFunc) *cli.Command {
		return &cli.Command{Name: name, Action: action, Flags: generate.SourceFlags}
	}
	return &cli.App{
		Name: "polishpages",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config"},
			&cli.BoolFlag{Name: "quiet"},
		},
		Commands: []*cli.Command{
			cmd("stats", StatsAction),
			cmd("orphans", OrphansAction),
			cmd("cycles", CyclesAction),
			cmd("mutual", MutualAction),
			cmd("show", ShowAction),
		},
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func TestActionsOnFreshCorpus(t *testing.T) {
	cfgPath := t.TempDir() + "/missing.yaml"
	for _, name := range []string{"stats", "orphans", "cycles", "mutual"} {
		t.Run(name, func(t *testing.T) {
			err := testApp().Run([]string{"polishpages", "--quiet", "--config", cfgPath, name, "--fresh"})
			assert.NoError(t, err)
		})
	}
}

func TestShowAction(t *testing.T) {
	cfgPath := t.TempDir() + "/missing.yaml"
	app := testApp()

	err := app.Run([]string{"polishpages", "--quiet", "--config", cfgPath, "show", "--fresh", "/services/furniture-polishing-mumbai"})
	require.NoError(t, err)

	err = app.Run([]string{"polishpages", "--quiet", "--config", cfgPath, "show", "--fresh", "/services/nowhere"})
	require.Error(t, err)
	var exitErr cli.ExitCoder
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.ExitCode())
	assert.Contains(t, err.Error(), "page not found")
}
