// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"sort"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pri1712/github-summary/internal/domain"
	"github.com/pri1712/github-summary/internal/gateway"
)

const topLanguageCount = 3

// Summarizer is the use case for building profile summaries.
// It orchestrates fetching and client-side aggregation.
type Summarizer struct {
	fetcher gateway.Fetcher
	logger  *zap.Logger
}

// NewSummarizer creates a new Summarizer instance.
func NewSummarizer(fetcher gateway.Fetcher, logger *zap.Logger) *Summarizer {
	return &Summarizer{
		fetcher: fetcher,
		logger:  logger,
	}
}

// PinnedRepos returns the user's pinned repositories, surfacing the fetch
// error to callers that need to tell "empty" from "failed".
func (s *Summarizer) PinnedRepos(ctx context.Context, login string) ([]domain.RepositorySummary, error) {
	return s.fetcher.FetchPinnedRepos(ctx, login)
}

// PinnedReposOrEmpty is the convenience form of PinnedRepos: any failure is
// logged and resolves to an empty list, so callers always get a renderable
// value.
func (s *Summarizer) PinnedReposOrEmpty(ctx context.Context, login string) []domain.RepositorySummary {
	repos, err := s.fetcher.FetchPinnedRepos(ctx, login)
	if err != nil {
		s.logger.Error("failed to fetch pinned repositories",
			zap.String("login", login), zap.Error(err))
		return []domain.RepositorySummary{}
	}
	if repos == nil {
		repos = []domain.RepositorySummary{}
	}
	return repos
}

// Stats aggregates the user's owned repositories into a StatsSummary.
func (s *Summarizer) Stats(ctx context.Context, login string) (domain.StatsSummary, error) {
	page, err := s.fetcher.FetchOwnedRepos(ctx, login)
	if err != nil {
		return domain.StatsSummary{TopLanguages: []string{}}, err
	}
	return aggregate(page), nil
}

// StatsOrZero is the convenience form of Stats: any failure is logged and
// resolves to the zero-valued summary, indistinguishable from a user with
// no repositories.
func (s *Summarizer) StatsOrZero(ctx context.Context, login string) domain.StatsSummary {
	summary, err := s.Stats(ctx, login)
	if err != nil {
		s.logger.Error("failed to aggregate repository stats",
			zap.String("login", login), zap.Error(err))
		return domain.StatsSummary{TopLanguages: []string{}}
	}
	return summary
}

// ProfileSummary fetches pinned repositories and stats concurrently and
// combines them with the contribution-graph URL. Both halves use the
// convenience contract, so a failing fetch degrades to its empty value
// instead of failing the whole summary.
func (s *Summarizer) ProfileSummary(ctx context.Context, login, theme string) domain.ProfileSummary {
	summary := domain.ProfileSummary{
		Login:             login,
		ContributionChart: domain.ContributionChartURL(login, theme),
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		summary.Pinned = s.PinnedReposOrEmpty(egCtx, login)
		return nil
	})
	eg.Go(func() error {
		summary.Stats = s.StatsOrZero(egCtx, login)
		return nil
	})
	// The goroutines never return errors; failures degrade in place.
	_ = eg.Wait()
	return summary
}

// aggregate folds one page of repositories into a StatsSummary. TotalRepos
// is the server-reported count; everything else covers only the fetched
// page.
func aggregate(page domain.RepositoryPage) domain.StatsSummary {
	summary := domain.StatsSummary{
		TotalRepos: page.TotalCount,
	}

	counts := make(map[string]int)
	starCounts := make([]float64, 0, len(page.Repositories))
	for _, repo := range page.Repositories {
		summary.TotalStars += repo.Stars
		starCounts = append(starCounts, float64(repo.Stars))
		if repo.PrimaryLanguage != "" {
			counts[repo.PrimaryLanguage]++
		}
	}

	languages := make([]string, 0, len(counts))
	for name := range counts {
		languages = append(languages, name)
	}
	// Order by frequency, name as the tie break so repeated calls agree.
	sort.Slice(languages, func(i, j int) bool {
		if counts[languages[i]] != counts[languages[j]] {
			return counts[languages[i]] > counts[languages[j]]
		}
		return languages[i] < languages[j]
	})
	if len(languages) > topLanguageCount {
		languages = languages[:topLanguageCount]
	}
	summary.TopLanguages = languages

	// Mean over an empty set errors; the summary then keeps its zero value.
	if mean, err := stats.Mean(starCounts); err == nil {
		summary.AverageStars = mean
	}
	return summary
}
