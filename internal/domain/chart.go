package domain

import "fmt"

// Host of the external contribution-graph image service. The service is
// treated as opaque: this package only formats its URL, never fetches it.
const chartHost = "https://ghchart.rshah.org"

const (
	chartColorDark  = "00ff41"
	chartColorLight = "000000"
)

// ContributionChartURL builds the contribution-graph image URL for a user.
// An empty theme defaults to "dark"; any other theme gets the light color.
// The login is not validated here, it only ends up as a URL path segment
// for a display image.
func ContributionChartURL(login, theme string) string {
	color := chartColorLight
	if theme == "" || theme == "dark" {
		color = chartColorDark
	}
	return fmt.Sprintf("%s/%s/%s", chartHost, color, login)
}
