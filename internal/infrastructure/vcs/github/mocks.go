package github

import (
	"context"

	"github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/mock"
)

type MockPRService struct {
	mock.Mock
}

func (m *MockPRService) Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number)
	if args.Get(0) == nil {
		return nil, responseArg(args.Get(1)), args.Error(2)
	}
	return args.Get(0).(*github.PullRequest), responseArg(args.Get(1)), args.Error(2)
}

func (m *MockPRService) ListFiles(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.CommitFile, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number, opts)
	if args.Get(0) == nil {
		return nil, responseArg(args.Get(1)), args.Error(2)
	}
	return args.Get(0).([]*github.CommitFile), responseArg(args.Get(1)), args.Error(2)
}

type MockIssuesService struct {
	mock.Mock
}

func (m *MockIssuesService) Edit(ctx context.Context, owner, repo string, number int, issue *github.IssueRequest) (*github.Issue, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number, issue)
	if args.Get(0) == nil {
		return nil, responseArg(args.Get(1)), args.Error(2)
	}
	return args.Get(0).(*github.Issue), responseArg(args.Get(1)), args.Error(2)
}

func responseArg(value interface{}) *github.Response {
	if value == nil {
		return nil
	}
	return value.(*github.Response)
}
