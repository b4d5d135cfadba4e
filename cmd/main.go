package main

import (
	"context"
	"log"
	"os"

	"github.com/thomas-vilte/pr-autofill/internal/cli/command/describe"
	"github.com/thomas-vilte/pr-autofill/internal/i18n"
	"github.com/thomas-vilte/pr-autofill/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	translations, err := i18n.NewTranslations("en", "")
	if err != nil {
		return nil, err
	}

	return &cli.Command{
		Name:        "pr-autofill",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.Version,
		Description: translations.GetMessage("app_description", 0, nil),
		Commands: []*cli.Command{
			describe.NewDescribeCommand(translations).CreateCommand(),
		},
	}, nil
}
