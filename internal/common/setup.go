package common

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/polishpages/models"
)

// Exit codes shared by every action.
const (
	ExitInvalid = 1 // validation or audit failed
	ExitFailure = 2 // infrastructure error
)

// Setup loads the configuration named by --config and builds the logger
// honouring --quiet. Config errors are reported as infrastructure failures.
func Setup(c *cli.Context) (models.Config, *slog.Logger, error) {
	logger := NewLogger(c.Bool("quiet"))
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return cfg, logger, cli.Exit(fmt.Sprintf("failed to load config: %v", err), ExitFailure)
	}
	return cfg, logger, nil
}

// Fail logs err and converts it into an exit error with ExitFailure.
func Fail(logger *slog.Logger, msg string, err error) error {
	logger.Error(msg, "error", err)
	return cli.Exit(fmt.Sprintf("%s: %v", msg, err), ExitFailure)
}
