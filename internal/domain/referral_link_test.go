package domain

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReferralLink(t *testing.T) {
	link := BuildReferralLink("4567.redirect.appmetrica.yandex.com", "1234567890", "aB3xYz")

	assert.Equal(t, "https://4567.redirect.appmetrica.yandex.com/?appmetrica_tracking_id=1234567890&ad_content=aB3xYz", link)
}

func TestBuildReferralLink_Deterministic(t *testing.T) {
	first := BuildReferralLink("host.example", "master", "ref")
	second := BuildReferralLink("host.example", "master", "ref")

	assert.Equal(t, first, second)
}

func TestBuildReferralLink_EmptyMasterTracker(t *testing.T) {
	link := BuildReferralLink("host.example", "", "ref 1")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "", parsed.Query().Get("appmetrica_tracking_id"))
	assert.Equal(t, "ref 1", parsed.Query().Get("ad_content"))
}
