package mealie

import (
	"context"

	"github.com/Masterminds/semver/v3"
)

const (
	createRecipePathLegacy  = "api/recipes/create-url"
	createRecipePathCurrent = "api/recipes/create/url"
)

var createEndpointCutover = semver.MustParse("2.0.0")

// createRecipePath picks the recipe-from-URL endpoint for the server's
// version, fetching and memoizing the version on first use. Servers older
// than 2.0.0 expose the legacy spelling.
func (c *Client) createRecipePath(ctx context.Context) string {
	if c.serverVersion == "" {
		if about, err := c.GetAbout(ctx); err == nil {
			c.serverVersion = about.Version
		}
	}
	return createPathForVersion(c.serverVersion)
}

// createPathForVersion assumes a current server when the version string
// cannot be parsed, matching observed Mealie behavior.
func createPathForVersion(version string) string {
	v, err := semver.NewVersion(version)
	if err != nil {
		return createRecipePathCurrent
	}
	if v.LessThan(createEndpointCutover) {
		return createRecipePathLegacy
	}
	return createRecipePathCurrent
}
