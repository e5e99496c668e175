package about

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCredits_ListsAllGroups(t *testing.T) {
	credits := Credits()

	require.Contains(t, credits, "Contributors:\n")
	require.Contains(t, credits, "Artwork:\n")
	for _, person := range Authors {
		require.Contains(t, credits, "  "+person+"\n")
	}
	for _, person := range Artists {
		require.Contains(t, credits, "  "+person+"\n")
	}
}

func TestCredits_ContributorsListedBeforeArtwork(t *testing.T) {
	credits := Credits()
	require.Less(t, strings.Index(credits, "Contributors:"), strings.Index(credits, "Artwork:"))
}

func TestWriteGroup_EmptyGroupOmitted(t *testing.T) {
	var b strings.Builder
	writeGroup(&b, "Nobody", nil)
	require.Empty(t, b.String())
}
