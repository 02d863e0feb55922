package cli

import (
	"context"
	"fmt"

	"github.com/breweryteam/releasehook/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// NewHistoryCommand lists announcements recorded in the ledger
func NewHistoryCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List announcements recorded in the ledger",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Maximum number of records, 0 for all",
				Value:   20,
			},
		},
		Action: historyAction,
	}
}

func historyAction(ctx context.Context, cmd *cli.Command) error {
	ctx, _ = setupLogger(ctx, cmd)

	config, err := loadConfig(ctx, NewConfig(cmd))
	if err != nil {
		return err
	}
	if config.Ledger.Path == "" {
		return fmt.Errorf("no ledger configured, use --ledger or ledger.path")
	}

	ledger, err := usecase.OpenLedger(ctx, config.Ledger.Path)
	if err != nil {
		return err
	}
	defer ledger.Close()

	records, err := ledger.List(ctx, int(cmd.Int("limit")))
	if err != nil {
		return err
	}

	PrintHistory(cmd.Root().Writer, records)
	return nil
}
