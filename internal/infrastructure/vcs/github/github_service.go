package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v80/github"
	"github.com/thomas-vilte/pr-autofill/internal/config"
	"github.com/thomas-vilte/pr-autofill/internal/domain/models"
	"github.com/thomas-vilte/pr-autofill/internal/domain/ports"
	domainErrors "github.com/thomas-vilte/pr-autofill/internal/errors"
	"github.com/thomas-vilte/pr-autofill/internal/i18n"
	"github.com/thomas-vilte/pr-autofill/internal/infrastructure/httpclient"
	"github.com/thomas-vilte/pr-autofill/internal/logger"
	"golang.org/x/oauth2"
)

var _ ports.VCSClient = (*GitHubClient)(nil)

const (
	// La API devuelve de a filesPerPage archivos; se piden como máximo
	// maxFilePages páginas (300 archivos en total).
	filesPerPage = 30
	maxFilePages = 10

	defaultAPIURL = "https://api.github.com"
)

type PullRequestsService interface {
	Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error)
	ListFiles(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.CommitFile, *github.Response, error)
}

type IssuesService interface {
	Edit(ctx context.Context, owner, repo string, number int, issue *github.IssueRequest) (*github.Issue, *github.Response, error)
}

type GitHubClient struct {
	prService     PullRequestsService
	issuesService IssuesService
	owner         string
	repo          string
	trans         *i18n.Translations
}

func NewGitHubClient(cfg *config.Config, trans *i18n.Translations) (*GitHubClient, error) {
	httpClient := httpclient.NewDefault()
	if cfg.GitHubToken != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.GitHubToken})
		httpClient = oauth2.NewClient(
			context.WithValue(context.Background(), oauth2.HTTPClient, httpClient), ts)
	}

	client := github.NewClient(httpClient)
	if cfg.GitHubAPIURL != "" && cfg.GitHubAPIURL != defaultAPIURL {
		var err error
		client, err = client.WithEnterpriseURLs(cfg.GitHubAPIURL, cfg.GitHubAPIURL)
		if err != nil {
			return nil, fmt.Errorf("URL de API de GitHub inválida %q: %w", cfg.GitHubAPIURL, err)
		}
	}

	return &GitHubClient{
		prService:     client.PullRequests,
		issuesService: client.Issues,
		owner:         cfg.Owner,
		repo:          cfg.Repo,
		trans:         trans,
	}, nil
}

func NewGitHubClientWithServices(
	prService PullRequestsService,
	issuesService IssuesService,
	owner string,
	repo string,
	trans *i18n.Translations,
) *GitHubClient {
	return &GitHubClient{
		prService:     prService,
		issuesService: issuesService,
		owner:         owner,
		repo:          repo,
		trans:         trans,
	}
}

func isRateLimited(err error) bool {
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	return errors.As(err, &rateErr) || errors.As(err, &abuseErr)
}

func (ghc *GitHubClient) GetPR(ctx context.Context, prNumber int) (models.PRData, error) {
	pr, _, err := ghc.prService.Get(ctx, ghc.owner, ghc.repo, prNumber)
	if err != nil {
		if isRateLimited(err) {
			return models.PRData{}, domainErrors.ErrGitHubRateLimit.WithError(err)
		}
		return models.PRData{}, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.get_pr", 0, map[string]interface{}{
			"Number": prNumber,
		}), err)
	}

	return models.PRData{
		Number: prNumber,
		Title:  pr.GetTitle(),
		Body:   pr.GetBody(),
		Author: pr.GetUser().GetLogin(),
	}, nil
}

// ListChangedFiles pagina el listado de archivos empezando en la página 1 y
// corta cuando una página viene vacía o se alcanza maxFilePages. Cualquier
// error aborta la operación completa.
func (ghc *GitHubClient) ListChangedFiles(ctx context.Context, prNumber int) ([]models.ChangedFile, error) {
	var files []models.ChangedFile

	for page := 1; page <= maxFilePages; page++ {
		chunk, _, err := ghc.prService.ListFiles(ctx, ghc.owner, ghc.repo, prNumber, &github.ListOptions{
			Page:    page,
			PerPage: filesPerPage,
		})
		if err != nil {
			if isRateLimited(err) {
				return nil, domainErrors.ErrGitHubRateLimit.WithError(err)
			}
			return nil, fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.list_files", 0, map[string]interface{}{
				"Number": prNumber,
			}), err)
		}

		if len(chunk) == 0 {
			break
		}

		for _, file := range chunk {
			files = append(files, models.ChangedFile{
				Filename: file.GetFilename(),
				Patch:    file.GetPatch(),
			})
		}
	}

	logger.Debug(ctx, "changed files collected",
		"pr_number", prNumber,
		"files_count", len(files))

	return files, nil
}

// UpdatePRBody escribe el body vía el endpoint de issues. Para la API un PR
// es también un issue, y el endpoint de issues alcanza para editar el body.
func (ghc *GitHubClient) UpdatePRBody(ctx context.Context, prNumber int, body string) error {
	_, resp, err := ghc.issuesService.Edit(ctx, ghc.owner, ghc.repo, prNumber, &github.IssueRequest{
		Body: github.Ptr(body),
	})
	if err != nil {
		// Detectar error 403 de permisos insuficientes
		if resp != nil && resp.StatusCode == http.StatusForbidden {
			return fmt.Errorf("%s\n\n%s",
				ghc.trans.GetMessage("error.insufficient_permissions", 0, map[string]interface{}{
					"Number": prNumber,
					"Owner":  ghc.owner,
					"Repo":   ghc.repo,
				}),
				ghc.trans.GetMessage("error.token_scopes_help", 0, nil))
		}
		return fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.update_pr", 0, map[string]interface{}{
			"Number": prNumber,
		}), err)
	}

	return nil
}
