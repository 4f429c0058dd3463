package fetch

import (
	"net/url"
	"strings"
)

// Platform is a recognized job board.
type Platform string

const (
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformAshby      Platform = "ashby"
	PlatformUnknown    Platform = "unknown"
)

// platformHosts maps a host suffix to its platform.
var platformHosts = []struct {
	suffix   string
	platform Platform
}{
	{"greenhouse.io", PlatformGreenhouse},
	{"lever.co", PlatformLever},
	{"myworkdayjobs.com", PlatformWorkday},
	{"workday.com", PlatformWorkday},
	{"ashbyhq.com", PlatformAshby},
}

type selectors struct {
	content []string
	noise   []string
}

// genericPosting is tried on every page after the platform selectors.
var genericPosting = []string{
	".job-description",
	"#job-description",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	"#content",
	".content",
}

// postingNoise covers application forms, EEO text and share widgets.
var postingNoise = []string{
	"#application-form",
	".application-form",
	".apply-button-container",
	".eeo-statement",
	".eeo-section",
	".voluntary-disclosure",
	".self-identification",
	".social-share",
	".share-buttons",
}

var platformSelectors = map[Platform]selectors{
	PlatformGreenhouse: {
		content: []string{".job__description", "#content", ".job-post-container"},
		noise:   []string{".application--wrapper", ".voluntary-self-id", "#usa_self_id_section"},
	},
	PlatformLever: {
		content: []string{".posting-page", ".section-wrapper.page-full-width", ".posting-description"},
		noise:   []string{".posting-apply", ".apply-section"},
	},
	PlatformWorkday: {
		content: []string{"[data-automation-id='jobPostingDescription']", "[data-automation-id='jobDescription']"},
		noise:   []string{"[data-automation-id='applyButton']"},
	},
	PlatformAshby: {
		content: []string{".ashby-job-posting-right-pane"},
	},
}

// DetectPlatform identifies the job board hosting rawURL.
func DetectPlatform(rawURL string) Platform {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return PlatformUnknown
	}
	host := strings.ToLower(parsed.Hostname())
	for _, h := range platformHosts {
		if host == h.suffix || strings.HasSuffix(host, "."+h.suffix) {
			return h.platform
		}
	}
	return PlatformUnknown
}

func selectorsFor(p Platform) selectors {
	s := platformSelectors[p]
	return selectors{
		content: append(append([]string{}, s.content...), genericPosting...),
		noise:   append(append([]string{}, postingNoise...), s.noise...),
	}
}
