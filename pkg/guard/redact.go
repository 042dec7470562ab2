package guard

import "regexp"

type redactPattern struct {
	regex       *regexp.Regexp
	replacement string
}

// redactPatterns mask credential-looking fragments. Thresholds are lower
// than typical secret scanners because command excerpts are short.
var redactPatterns = []redactPattern{
	{
		regex:       regexp.MustCompile(`(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?[A-Za-z0-9_\-]{8,}["']?`),
		replacement: `api_key=__MASKED_API_KEY__`,
	},
	{
		regex:       regexp.MustCompile(`(?i)(?:password|passwd|pwd)["']?\s*[:=]\s*["']?[^"'\s]{4,}["']?`),
		replacement: `password=__MASKED_PASSWORD__`,
	},
	{
		regex:       regexp.MustCompile(`(?i)(?:token|secret)["']?\s*[:=]\s*["']?[A-Za-z0-9_\-.]{8,}["']?`),
		replacement: `token=__MASKED_TOKEN__`,
	},
	{
		regex:       regexp.MustCompile(`(?i)authorization:\s*bearer\s+\S+`),
		replacement: `authorization: bearer __MASKED_TOKEN__`,
	},
	{
		regex:       regexp.MustCompile(`-----BEGIN [A-Z ]+-----[\s\S]*?-----END [A-Z ]+-----`),
		replacement: `__MASKED_CERTIFICATE__`,
	},
	{
		regex:       regexp.MustCompile(`ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`),
		replacement: `__MASKED_SSH_KEY__`,
	},
}

// RedactSecrets masks credential-looking fragments so denial messages and
// persisted log lines can quote commands safely.
func RedactSecrets(s string) string {
	for _, p := range redactPatterns {
		s = p.regex.ReplaceAllString(s, p.replacement)
	}
	return s
}
