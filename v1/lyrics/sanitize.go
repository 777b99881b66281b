package lyrics

import (
	"regexp"
	"strings"
)

var (
	lineBreak      = regexp.MustCompile(`\r?\n`)
	lyricsWord     = regexp.MustCompile(`lyrics|paroles|letra|songtext|liedtext|tekst|chanson`)
	alsoLike       = regexp.MustCompile(`(?i)^you might also like$`)
	embedSuffix    = regexp.MustCompile(`(?i)\d*Embed$`)
	featParen      = regexp.MustCompile(`(?i)\(feat\.[^)]+\)`)
	ftParen        = regexp.MustCompile(`(?i)\(ft\.[^)]+\)`)
	remasterSquare = regexp.MustCompile(`(?i)\[[^\]]*remaster[^\]]*\]`)
	remasterParen  = regexp.MustCompile(`(?i)\([^)]+remaster[^)]*\)`)
	remasterDash   = regexp.MustCompile(`(?i)\s+-\s+remaster(ed)?\b.*$`)
	spaces         = regexp.MustCompile(`\s+`)
)

// Sanitize removes the artifacts lyrics sites leave around scraped text:
// a heading such as "Artist - Title Lyrics", "You might also like" separators
// and trailing "123Embed" markers. Blank lines are dropped. The second return
// value is false when nothing is left.
func Sanitize(text, artist, title string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}

	var lines []string
	for _, line := range lineBreak.Split(text, -1) {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return "", false
	}

	first := strings.ToLower(lines[0])
	normalizedArtist := strings.ToLower(strings.TrimSpace(artist))
	normalizedTitle := strings.ToLower(strings.TrimSpace(title))
	mentionsArtist := normalizedArtist != "" && strings.Contains(first, normalizedArtist)
	mentionsTitle := normalizedTitle != "" && strings.Contains(first, normalizedTitle)
	if lyricsWord.MatchString(first) && (mentionsArtist || mentionsTitle) {
		lines = lines[1:]
	}

	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		if alsoLike.MatchString(line) {
			continue
		}
		line = strings.TrimSpace(embedSuffix.ReplaceAllString(line, ""))
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}

	out := strings.TrimSpace(strings.Join(cleaned, "\n"))
	return out, out != ""
}

// CleanTrackTitle strips featuring credits and remaster markers from a track
// title, e.g. "Song (feat. X) - Remastered 2011" becomes "Song".
func CleanTrackTitle(title string) string {
	title = featParen.ReplaceAllString(title, "")
	title = ftParen.ReplaceAllString(title, "")
	title = remasterSquare.ReplaceAllString(title, "")
	title = remasterParen.ReplaceAllString(title, "")
	title = remasterDash.ReplaceAllString(title, "")
	title = spaces.ReplaceAllString(title, " ")
	return strings.TrimSpace(title)
}
