// Package gateway provides a gateway to the GitHub GraphQL API,
// abstracting away the underlying client.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shurcooL/githubv4"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/pri1712/github-summary/internal/domain"
)

// Fetcher defines the behavior of a gateway for fetching profile data from GitHub.
type Fetcher interface {
	FetchPinnedRepos(ctx context.Context, login string) ([]domain.RepositorySummary, error)
	FetchOwnedRepos(ctx context.Context, login string) (domain.RepositoryPage, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	client        *githubv4.Client
	authenticated bool
	logger        *zap.Logger
}

// pinnedReposQuery asks for the up-to-6 repositories the user pinned on
// their profile, with the metadata a profile page renders for each.
type pinnedReposQuery struct {
	User struct {
		PinnedItems struct {
			Nodes []struct {
				Repository struct {
					Name            githubv4.String
					Description     githubv4.String
					URL             githubv4.URI
					StargazerCount  githubv4.Int
					ForkCount       githubv4.Int
					HomepageURL     githubv4.String
					PushedAt        githubv4.DateTime
					PrimaryLanguage struct {
						Name  githubv4.String
						Color githubv4.String
					}
					Languages struct {
						Nodes []struct {
							Name githubv4.String
						}
					} `graphql:"languages(first: 5, orderBy: {field: SIZE, direction: DESC})"`
				} `graphql:"... on Repository"`
			}
		} `graphql:"pinnedItems(first: 6, types: [REPOSITORY])"`
	} `graphql:"user(login: $login)"`
}

// ownedReposQuery fetches the first 100 owned repositories by star rank.
// 100 is the API maximum per page; the aggregation deliberately stops there
// and relies on totalCount for the full repository count.
type ownedReposQuery struct {
	User struct {
		Repositories struct {
			TotalCount githubv4.Int
			Nodes      []struct {
				StargazerCount  githubv4.Int
				PrimaryLanguage struct {
					Name githubv4.String
				}
			}
		} `graphql:"repositories(first: 100, ownerAffiliations: OWNER, orderBy: {field: STARGAZERS, direction: DESC})"`
	} `graphql:"user(login: $login)"`
}

// newHTTPClient builds the HTTP client for the GraphQL endpoint. With a
// token it wraps the transport with a static bearer-token source; without
// one it returns a plain client so no Authorization header is ever sent.
func newHTTPClient(ctx context.Context, token string) *http.Client {
	if token == "" {
		return http.DefaultClient
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return oauth2.NewClient(ctx, ts)
}

// NewGitHubGateway is a constructor that creates a new instance of
// GitHubGateway. An empty token is tolerated; requests then run
// unauthenticated and are subject to the public rate limits.
func NewGitHubGateway(token string, logger *zap.Logger) *GitHubGateway {
	return &GitHubGateway{
		client:        githubv4.NewClient(newHTTPClient(context.Background(), token)),
		authenticated: token != "",
		logger:        logger,
	}
}

// FetchPinnedRepos returns the user's pinned repositories, at most six.
func (g *GitHubGateway) FetchPinnedRepos(ctx context.Context, login string) ([]domain.RepositorySummary, error) {
	if !g.authenticated {
		g.logger.Warn("no GitHub token configured, fetching pinned repositories unauthenticated",
			zap.String("login", login))
	}

	var q pinnedReposQuery
	variables := map[string]interface{}{
		"login": githubv4.String(login),
	}
	if err := g.client.Query(ctx, &q, variables); err != nil {
		return nil, fmt.Errorf("failed to execute pinned repositories query: %w", err)
	}

	repos := make([]domain.RepositorySummary, 0, len(q.User.PinnedItems.Nodes))
	for _, node := range q.User.PinnedItems.Nodes {
		r := node.Repository
		summary := domain.RepositorySummary{
			Name:        string(r.Name),
			Description: string(r.Description),
			Stars:       int(r.StargazerCount),
			Forks:       int(r.ForkCount),
			PushedAt:    r.PushedAt.Format(time.RFC3339),
			HomepageURL: string(r.HomepageURL),
		}
		if r.URL.URL != nil {
			summary.URL = r.URL.String()
		}
		// A null primaryLanguage decodes to the zero value; an empty name
		// means GitHub reported none.
		if r.PrimaryLanguage.Name != "" {
			summary.PrimaryLanguage = &domain.Language{
				Name:  string(r.PrimaryLanguage.Name),
				Color: string(r.PrimaryLanguage.Color),
			}
		}
		for _, lang := range r.Languages.Nodes {
			summary.Languages = append(summary.Languages, string(lang.Name))
		}
		repos = append(repos, summary)
	}
	return repos, nil
}

// FetchOwnedRepos returns the first page of the user's owned repositories
// ordered by stargazers, plus the server-side total count.
func (g *GitHubGateway) FetchOwnedRepos(ctx context.Context, login string) (domain.RepositoryPage, error) {
	var q ownedReposQuery
	variables := map[string]interface{}{
		"login": githubv4.String(login),
	}
	if err := g.client.Query(ctx, &q, variables); err != nil {
		return domain.RepositoryPage{}, fmt.Errorf("failed to execute owned repositories query: %w", err)
	}

	page := domain.RepositoryPage{
		TotalCount:   int(q.User.Repositories.TotalCount),
		Repositories: make([]domain.RepositoryDigest, 0, len(q.User.Repositories.Nodes)),
	}
	for _, node := range q.User.Repositories.Nodes {
		page.Repositories = append(page.Repositories, domain.RepositoryDigest{
			Stars:           int(node.StargazerCount),
			PrimaryLanguage: string(node.PrimaryLanguage.Name),
		})
	}
	return page, nil
}
