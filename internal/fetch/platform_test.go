package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url  string
		want Platform
	}{
		{"https://boards.greenhouse.io/acme/jobs/123", PlatformGreenhouse},
		{"https://job-boards.greenhouse.io/acme/jobs/123", PlatformGreenhouse},
		{"https://jobs.lever.co/acme/abc", PlatformLever},
		{"https://acme.wd5.myworkdayjobs.com/en-US/careers/job/123", PlatformWorkday},
		{"https://jobs.ashbyhq.com/acme/123", PlatformAshby},
		{"https://example.com/careers", PlatformUnknown},
		{"https://notgreenhouse.io.evil.com/job", PlatformUnknown},
		{"://bad", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectPlatform(tt.url))
		})
	}
}

func TestSelectorsFor(t *testing.T) {
	gh := selectorsFor(PlatformGreenhouse)
	assert.Equal(t, ".job__description", gh.content[0])
	assert.Contains(t, gh.content, "main")
	assert.Contains(t, gh.noise, "#usa_self_id_section")
	assert.Contains(t, gh.noise, ".eeo-statement")

	unknown := selectorsFor(PlatformUnknown)
	assert.Equal(t, genericPosting, unknown.content)
	assert.Equal(t, postingNoise, unknown.noise)
}
