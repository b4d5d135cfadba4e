package factory

import (
	"github.com/thomas-vilte/pr-autofill/internal/config"
	"github.com/thomas-vilte/pr-autofill/internal/i18n"
	"github.com/thomas-vilte/pr-autofill/internal/infrastructure/ai/openai"
	"github.com/thomas-vilte/pr-autofill/internal/infrastructure/httpclient"
	"github.com/thomas-vilte/pr-autofill/internal/infrastructure/tickets/jira"
	"github.com/thomas-vilte/pr-autofill/internal/infrastructure/vcs/github"
	"github.com/thomas-vilte/pr-autofill/internal/services"
)

// DescriptionServiceFactory arma el servicio con todos sus adaptadores
// concretos: GitHub como VCS, Jira como tracker y OpenAI como modelo.
type DescriptionServiceFactory struct {
	config *config.Config
	trans  *i18n.Translations
}

func NewDescriptionServiceFactory(cfg *config.Config, trans *i18n.Translations) *DescriptionServiceFactory {
	return &DescriptionServiceFactory{
		config: cfg,
		trans:  trans,
	}
}

func (f *DescriptionServiceFactory) CreateDescriptionService() (*services.DescriptionService, error) {
	vcsClient, err := github.NewGitHubClient(f.config, f.trans)
	if err != nil {
		return nil, err
	}

	httpClient := httpclient.NewDefault()

	return services.NewDescriptionService(
		services.WithVCSClient(vcsClient),
		services.WithTicketManager(jira.NewJiraService(f.config, httpClient)),
		services.WithGenerator(openai.NewChatService(f.config, httpClient)),
		services.WithConfig(f.config),
		services.WithTranslations(f.trans),
	), nil
}
