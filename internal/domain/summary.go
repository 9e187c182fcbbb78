// Package domain contains the core data structures and domain logic for the application.
package domain

// Language is a repository language as reported by GitHub, with the display
// color the profile page uses for it.
type Language struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// RepositorySummary holds the display metadata for a single pinned repository.
// It is constructed fresh on every fetch and never mutated afterwards.
type RepositorySummary struct {
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	URL             string    `json:"url"`
	Stars           int       `json:"stars"`
	Forks           int       `json:"forks"`
	Languages       []string  `json:"languages,omitempty"` // up to 5, ordered by source size descending
	PrimaryLanguage *Language `json:"primary_language,omitempty"`
	PushedAt        string    `json:"pushed_at"`
	HomepageURL     string    `json:"homepage_url,omitempty"`
}

// StatsSummary aggregates a user's owned repositories.
//
// TotalRepos is the server-reported count of all owned repositories.
// TotalStars, TopLanguages and AverageStars only cover the first 100
// repositories by star rank, so the two views can disagree for prolific
// users. That mismatch is an accepted approximation, not a bug.
type StatsSummary struct {
	TotalStars   int      `json:"total_stars"`
	TotalRepos   int      `json:"total_repos"`
	TopLanguages []string `json:"top_languages"`
	AverageStars float64  `json:"average_stars"`
}

// ProfileSummary combines everything the CLI surfaces for one user.
type ProfileSummary struct {
	Login             string              `json:"login"`
	Pinned            []RepositorySummary `json:"pinned"`
	Stats             StatsSummary        `json:"stats"`
	ContributionChart string              `json:"contribution_chart"`
}

// RepositoryDigest is the minimal per-repository slice of the stats query.
type RepositoryDigest struct {
	Stars           int
	PrimaryLanguage string // empty when GitHub reports no primary language
}

// RepositoryPage is one page of a user's owned repositories plus the
// server-side total, which may exceed the number of nodes fetched.
type RepositoryPage struct {
	TotalCount   int
	Repositories []RepositoryDigest
}
