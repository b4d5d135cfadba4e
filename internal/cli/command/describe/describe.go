package describe

import (
	"context"
	"fmt"

	"github.com/thomas-vilte/pr-autofill/internal/config"
	"github.com/thomas-vilte/pr-autofill/internal/i18n"
	"github.com/thomas-vilte/pr-autofill/internal/infrastructure/factory"
	"github.com/thomas-vilte/pr-autofill/internal/logger"
	"github.com/urfave/cli/v3"
)

type DescribeCommand struct {
	trans *i18n.Translations
}

func NewDescribeCommand(trans *i18n.Translations) *DescribeCommand {
	return &DescribeCommand{trans: trans}
}

func (c *DescribeCommand) CreateCommand() *cli.Command {
	return &cli.Command{
		Name:        "describe",
		Usage:       c.trans.GetMessage("app_usage", 0, nil),
		Description: c.trans.GetMessage("app_description", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "github-api-url",
				Usage: "Base URL of the GitHub API, change it for GitHub Enterprise",
				Value: "https://api.github.com",
			},
			&cli.StringFlag{
				Name:     "github-repository",
				Usage:    "Repository in owner/repo format",
				Required: true,
			},
			&cli.IntFlag{
				Name:     "pr-number",
				Aliases:  []string{"n"},
				Usage:    "Number of the pull request to describe",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "github-token",
				Usage:    "Token with permission to read and update the PR",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "openai-api-key",
				Usage:    "OpenAI API key",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "jira-api-token",
				Usage: "Jira API token, optional",
			},
			&cli.StringFlag{
				Name:  "jira-issue-key",
				Usage: "Jira issue key linked to the PR, optional",
			},
			&cli.StringFlag{
				Name:  "jira-base-url",
				Usage: "Base URL of the Jira instance, optional",
			},
			&cli.StringFlag{
				Name:  "allowed-users",
				Usage: "Comma separated list of users allowed to trigger the autofill",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log every step of the run",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Log debug information, implies verbose",
			},
		},
		Action: c.run,
	}
}

func (c *DescribeCommand) run(ctx context.Context, cmd *cli.Command) error {
	logger.Initialize(cmd.Bool("debug"), cmd.Bool("verbose"))

	cfg, err := config.New(config.Params{
		GitHubAPIURL: cmd.String("github-api-url"),
		Repository:   cmd.String("github-repository"),
		PRNumber:     int(cmd.Int("pr-number")),
		GitHubToken:  cmd.String("github-token"),
		OpenAIAPIKey: cmd.String("openai-api-key"),
		JiraAPIToken: cmd.String("jira-api-token"),
		JiraIssueKey: cmd.String("jira-issue-key"),
		JiraBaseURL:  cmd.String("jira-base-url"),
		AllowedUsers: cmd.String("allowed-users"),
	})
	if err != nil {
		return err
	}

	service, err := factory.NewDescriptionServiceFactory(cfg, c.trans).CreateDescriptionService()
	if err != nil {
		return fmt.Errorf("error creating the description service: %w", err)
	}

	result, err := service.AutofillDescription(ctx, cfg.PRNumber)
	if err != nil {
		return err
	}

	if result.Skipped {
		fmt.Println(result.SkipReason)
		return nil
	}

	fmt.Println(c.trans.GetMessage("run.pr_updated", 0, map[string]interface{}{
		"Number": cfg.PRNumber,
	}))
	return nil
}
