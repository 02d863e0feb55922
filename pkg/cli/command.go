package cli

import (
	"github.com/urfave/cli/v3"
)

func NewCommand() *cli.Command {
	flags := append(DefineFlags(),
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
			Value: false,
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable verbose logging",
			Value: false,
		},
	)

	return &cli.Command{
		Name:    "releasehook",
		Usage:   "Announce a release to a chat webhook",
		Version: "0.1.0",
		Description: `releasehook posts a release announcement to a Discord-compatible webhook.

A changelog longer than one embed allows is split across several messages,
sent in order. Delivery problems are logged but never fail the command
unless --strict is given, so it is safe to run at the end of a release job.`,
		Flags:  flags,
		Action: RunAnnounce,
		Commands: []*cli.Command{
			{
				Name:   "announce",
				Usage:  "Send the announcement (default)",
				Action: RunAnnounce,
			},
			{
				Name:   "preview",
				Usage:  "Print the webhook requests without sending them",
				Action: RunPreview,
			},
			NewConfigCommand(),
			NewHistoryCommand(),
		},
	}
}
