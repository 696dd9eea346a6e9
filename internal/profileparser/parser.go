package profileparser

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// ProfileStats is what one fetch of a public profile page yields. Engagement
// rate is derived from recent post interactions when the page exposes them;
// otherwise it stays zero and the caller keeps the last known value.
type ProfileStats struct {
	Handle         string    `json:"handle"`
	Followers      int64     `json:"followers"`
	Following      *int      `json:"following,omitempty"`
	Posts          *int      `json:"posts,omitempty"`
	AvgLikes       *int      `json:"avg_likes,omitempty"`
	AvgComments    *int      `json:"avg_comments,omitempty"`
	EngagementRate float64   `json:"engagement_rate"`
	FetchedAt      time.Time `json:"fetched_at"`
}

type Parser struct {
	httpClient *http.Client
	log        *zap.Logger
	baseURL    string
	maxRetries int
}

func NewParser(baseURL string, timeoutMS, maxRetries int, log *zap.Logger) *Parser {
	return &Parser{
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutMS) * time.Millisecond,
		},
		log:        log,
		baseURL:    strings.TrimRight(baseURL, "/"),
		maxRetries: maxRetries,
	}
}

func (p *Parser) FetchAndParse(ctx context.Context, handle string) (*ProfileStats, error) {
	url := fmt.Sprintf("%s/%s", p.baseURL, handle)

	var doc *goquery.Document
	var lastErr error

	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")

		resp, err := p.httpClient.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
			time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
			continue
		}

		doc, err = goquery.NewDocumentFromReader(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		lastErr = nil
		break
	}

	if lastErr != nil {
		return nil, lastErr
	}

	stats := parseDocument(doc, handle)
	stats.FetchedAt = time.Now()
	return stats, nil
}

func parseDocument(doc *goquery.Document, handle string) *ProfileStats {
	stats := &ProfileStats{Handle: handle}

	// Public profile pages summarize counts in the og:description meta tag,
	// e.g. "120K Followers, 350 Following, 1,024 Posts".
	if desc, exists := doc.Find(`meta[property="og:description"]`).Attr("content"); exists {
		followers, following, posts := parseMetaCounts(desc)
		if followers > 0 {
			stats.Followers = int64(followers)
		}
		if following > 0 {
			stats.Following = &following
		}
		if posts > 0 {
			stats.Posts = &posts
		}
	}

	// Fallback: some mirrors render counters as labeled spans.
	if stats.Followers == 0 {
		doc.Find(".profile_counter").Each(func(i int, s *goquery.Selection) {
			label := strings.ToLower(strings.TrimSpace(s.Find(".counter_label").Text()))
			value := strings.TrimSpace(s.Find(".counter_value").Text())
			if strings.Contains(label, "follower") {
				if n := parseCount(value); n > 0 {
					stats.Followers = int64(n)
				}
			}
		})
	}

	// Recent post interactions, when exposed, give an engagement estimate.
	var likesTotal, commentsTotal, sampled int
	doc.Find(".post_item").Each(func(i int, s *goquery.Selection) {
		if sampled >= 12 {
			return
		}
		likes := parseCount(strings.TrimSpace(s.Find(".post_likes").Text()))
		comments := parseCount(strings.TrimSpace(s.Find(".post_comments").Text()))
		if likes == 0 && comments == 0 {
			return
		}
		likesTotal += likes
		commentsTotal += comments
		sampled++
	})

	if sampled > 0 {
		avgLikes := likesTotal / sampled
		avgComments := commentsTotal / sampled
		stats.AvgLikes = &avgLikes
		stats.AvgComments = &avgComments
		if stats.Followers > 0 {
			rate := float64(avgLikes+avgComments) / float64(stats.Followers) * 100
			stats.EngagementRate = roundRate(rate)
		}
	}

	return stats
}

var metaFieldRE = regexp.MustCompile(`([\d,. ]+[KkMm]?)\s+(Followers|Following|Posts)`)

// parseMetaCounts extracts the three counters from an og:description string.
// Missing fields come back as zero.
func parseMetaCounts(desc string) (followers, following, posts int) {
	for _, m := range metaFieldRE.FindAllStringSubmatch(desc, -1) {
		n := parseCount(strings.TrimSpace(m[1]))
		switch m[2] {
		case "Followers":
			followers = n
		case "Following":
			following = n
		case "Posts":
			posts = n
		}
	}
	return
}

var countRE = regexp.MustCompile(`[\d,.]+[KkMm]?`)

func parseCount(text string) int {
	text = strings.ReplaceAll(text, " ", "")
	text = strings.ReplaceAll(text, ",", "")

	match := countRE.FindString(text)
	if match == "" {
		return 0
	}

	multiplier := 1
	if strings.HasSuffix(match, "K") || strings.HasSuffix(match, "k") {
		multiplier = 1000
		match = match[:len(match)-1]
	} else if strings.HasSuffix(match, "M") || strings.HasSuffix(match, "m") {
		multiplier = 1000000
		match = match[:len(match)-1]
	}

	f, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return int(f * float64(multiplier))
}

// roundRate keeps engagement rates at two decimals so stored snapshots stay
// comparable across fetches.
func roundRate(r float64) float64 {
	return float64(int(r*100+0.5)) / 100
}
