package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	if defaultLang == "" {
		return nil, fmt.Errorf("language cannot be empty")
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath == "" {
		localesPath = "locales"
	}

	files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Generate a pull request description with AI and write it back to the PR"

	[app_description]
	other = "Fetches the PR diff from GitHub, optionally enriches it with the linked Jira ticket, asks an OpenAI model for a description and updates the PR body"

	[skip.existing_description]
	other = "Pull request #{{.Number}} already has a description, skipping"

	[skip.author_not_allowed]
	other = "Pull request author {{.Author}} is not allowed to trigger this action"

	[run.fetching_pr]
	other = "Fetching pull request #{{.Number}}"

	[run.pr_updated]
	other = "Pull request #{{.Number}} description updated successfully"

	[error.get_pr]
	other = "Request to get pull request #{{.Number}} failed"

	[error.list_files]
	other = "Request to get the list of files for pull request #{{.Number}} failed"

	[error.update_pr]
	other = "Request to update pull request #{{.Number}} failed"

	[error.completion]
	other = "Completion request to the model failed"

	[error.insufficient_permissions]
	other = "The token does not have permission to update PR #{{.Number}} in {{.Owner}}/{{.Repo}}"

	[error.token_scopes_help]
	other = "The token needs the 'repo' scope (or 'pull-requests: write' for fine-grained tokens)"

	[jira.fetch_failed]
	other = "Failed to fetch the Jira issue description, continuing without it"

	[jira.skipped]
	other = "Jira base URL, issue key or token not configured, skipping ticket enrichment"
	`
