package services

import (
	"context"

	"github.com/thomas-vilte/pr-autofill/internal/config"
	"github.com/thomas-vilte/pr-autofill/internal/domain/models"
	domainErrors "github.com/thomas-vilte/pr-autofill/internal/errors"
	"github.com/thomas-vilte/pr-autofill/internal/i18n"
	"github.com/thomas-vilte/pr-autofill/internal/infrastructure/ai"
	"github.com/thomas-vilte/pr-autofill/internal/logger"
)

// descriptionVCSClient defines the methods needed by DescriptionService from a VCS provider.
type descriptionVCSClient interface {
	GetPR(ctx context.Context, prNumber int) (models.PRData, error)
	ListChangedFiles(ctx context.Context, prNumber int) ([]models.ChangedFile, error)
	UpdatePRBody(ctx context.Context, prNumber int, body string) error
}

// descriptionTicketManager defines the methods needed by DescriptionService from the issue tracker.
type descriptionTicketManager interface {
	GetTicketInfo(ctx context.Context, key string) (models.TicketInfo, error)
}

// descriptionGenerator defines the methods needed by DescriptionService from an AI provider.
type descriptionGenerator interface {
	GenerateDescription(ctx context.Context, prompt string) (string, error)
}

// Result is the outcome of one run. Skipped runs are deliberate no-ops, not
// errors: the caller exits 0 either way.
type Result struct {
	Skipped     bool
	SkipReason  string
	Description string
}

type DescriptionService struct {
	vcsClient     descriptionVCSClient
	ticketManager descriptionTicketManager
	generator     descriptionGenerator
	config        *config.Config
	trans         *i18n.Translations
}

type Option func(*DescriptionService)

func WithVCSClient(vcs descriptionVCSClient) Option {
	return func(s *DescriptionService) {
		s.vcsClient = vcs
	}
}

func WithTicketManager(tm descriptionTicketManager) Option {
	return func(s *DescriptionService) {
		s.ticketManager = tm
	}
}

func WithGenerator(gen descriptionGenerator) Option {
	return func(s *DescriptionService) {
		s.generator = gen
	}
}

func WithConfig(cfg *config.Config) Option {
	return func(s *DescriptionService) {
		s.config = cfg
	}
}

func WithTranslations(trans *i18n.Translations) Option {
	return func(s *DescriptionService) {
		s.trans = trans
	}
}

func NewDescriptionService(opts ...Option) *DescriptionService {
	s := &DescriptionService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AutofillDescription runs the whole pipeline for one pull request: gate
// checks, file collection, optional ticket enrichment, completion and
// write-back. Every step either continues or aborts the run.
func (s *DescriptionService) AutofillDescription(ctx context.Context, prNumber int) (Result, error) {
	log := logger.FromContext(ctx)

	log.Info("autofilling PR description", "pr_number", prNumber)

	prData, err := s.vcsClient.GetPR(ctx, prNumber)
	if err != nil {
		log.Error("failed to get PR data",
			"error", err,
			"pr_number", prNumber)
		return Result{}, domainErrors.ErrGetPR.WithError(err)
	}

	if prData.Body != "" {
		reason := s.trans.GetMessage("skip.existing_description", 0, map[string]interface{}{
			"Number": prNumber,
		})
		log.Info("PR already has a description, nothing to do", "pr_number", prNumber)
		return Result{Skipped: true, SkipReason: reason}, nil
	}

	if !s.config.IsUserAllowed(prData.Author) {
		reason := s.trans.GetMessage("skip.author_not_allowed", 0, map[string]interface{}{
			"Author": prData.Author,
		})
		log.Info("PR author not in the allow-list, nothing to do",
			"pr_number", prNumber,
			"author", prData.Author)
		return Result{Skipped: true, SkipReason: reason}, nil
	}

	files, err := s.vcsClient.ListChangedFiles(ctx, prNumber)
	if err != nil {
		log.Error("failed to list changed files",
			"error", err,
			"pr_number", prNumber)
		return Result{}, domainErrors.ErrListFiles.WithError(err)
	}

	log.Debug("PR data fetched",
		"pr_number", prNumber,
		"title", prData.Title,
		"files_count", len(files))

	taskDescription := s.fetchTaskDescription(ctx)

	prompt := ai.BuildPrompt(prData.Title, taskDescription, files, s.config)

	log.Debug("calling AI for description generation",
		"pr_number", prNumber,
		"prompt_size", len(prompt))

	generated, err := s.generator.GenerateDescription(ctx, prompt)
	if err != nil {
		log.Error("failed to generate description",
			"error", err,
			"pr_number", prNumber)
		return Result{}, domainErrors.ErrAIGeneration.WithError(err)
	}

	description := AppendBoilerplate(
		StripRedundantPrefix(generated),
		s.config.JiraConfig.BaseURL,
		s.config.JiraConfig.IssueKey,
	)

	log.Info("updating PR with generated description",
		"pr_number", prNumber,
		"description_size", len(description))

	if err := s.vcsClient.UpdatePRBody(ctx, prNumber, description); err != nil {
		log.Error("failed to update PR",
			"error", err,
			"pr_number", prNumber)
		return Result{}, domainErrors.ErrUpdatePR.WithError(err)
	}

	log.Info("PR description updated successfully", "pr_number", prNumber)

	return Result{Description: description}, nil
}

// fetchTaskDescription trae la descripción del ticket una única vez. Si Jira
// no está configurado o la consulta falla, se sigue con una descripción
// vacía: enriquecer el prompt es opcional.
func (s *DescriptionService) fetchTaskDescription(ctx context.Context) string {
	log := logger.FromContext(ctx)

	if !s.config.JiraConfigured() {
		log.Info(s.trans.GetMessage("jira.skipped", 0, nil))
		return ""
	}

	info, err := s.ticketManager.GetTicketInfo(ctx, s.config.JiraConfig.IssueKey)
	if err != nil {
		log.Warn(s.trans.GetMessage("jira.fetch_failed", 0, nil),
			"issue_key", s.config.JiraConfig.IssueKey,
			"error", err)
		return ""
	}

	return info.Description
}
