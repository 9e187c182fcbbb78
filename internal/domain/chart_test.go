package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContributionChartURL(t *testing.T) {
	testCases := []struct {
		name     string
		login    string
		theme    string
		expected string
	}{
		{
			name:     "dark theme uses the green color code",
			login:    "octocat",
			theme:    "dark",
			expected: "https://ghchart.rshah.org/00ff41/octocat",
		},
		{
			name:     "light theme uses the black color code",
			login:    "octocat",
			theme:    "light",
			expected: "https://ghchart.rshah.org/000000/octocat",
		},
		{
			name:     "empty theme defaults to dark",
			login:    "octocat",
			theme:    "",
			expected: "https://ghchart.rshah.org/00ff41/octocat",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ContributionChartURL(tc.login, tc.theme))
		})
	}
}
