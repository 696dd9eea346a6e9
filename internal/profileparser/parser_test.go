package profileparser

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"1.2K", 1200},
		{"1.5M", 1500000},
		{"123", 123},
		{"12,345", 12345},
		{"1 234", 1234},
		{"5.6K likes", 5600},
		{"100K", 100000},
		{"0", 0},
		{"", 0},
		{"no number", 0},
		{"42k", 42000},
		{"3.14k", 3140},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := parseCount(tt.input)
			if result != tt.expected {
				t.Errorf("parseCount(%q) = %d, want %d", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseMetaCounts(t *testing.T) {
	tests := []struct {
		desc      string
		followers int
		following int
		posts     int
	}{
		{"120K Followers, 350 Following, 1,024 Posts", 120000, 350, 1024},
		{"50,000 Followers, 12 Following, 98 Posts", 50000, 12, 98},
		{"2.3M Followers", 2300000, 0, 0},
		{"no counters here", 0, 0, 0},
		{"", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			followers, following, posts := parseMetaCounts(tt.desc)
			if followers != tt.followers || following != tt.following || posts != tt.posts {
				t.Errorf("parseMetaCounts(%q) = (%d, %d, %d), want (%d, %d, %d)",
					tt.desc, followers, following, posts, tt.followers, tt.following, tt.posts)
			}
		})
	}
}

func TestParseDocument(t *testing.T) {
	html := `<html><head>
		<meta property="og:description" content="50K Followers, 120 Following, 340 Posts">
	</head><body>
		<div class="post_item"><span class="post_likes">1,000</span><span class="post_comments">50</span></div>
		<div class="post_item"><span class="post_likes">2,000</span><span class="post_comments">150</span></div>
	</body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}

	stats := parseDocument(doc, "testhandle")

	if stats.Handle != "testhandle" {
		t.Errorf("handle = %q, want %q", stats.Handle, "testhandle")
	}
	if stats.Followers != 50000 {
		t.Errorf("followers = %d, want 50000", stats.Followers)
	}
	if stats.Following == nil || *stats.Following != 120 {
		t.Errorf("following = %v, want 120", stats.Following)
	}
	if stats.Posts == nil || *stats.Posts != 340 {
		t.Errorf("posts = %v, want 340", stats.Posts)
	}
	if stats.AvgLikes == nil || *stats.AvgLikes != 1500 {
		t.Errorf("avg likes = %v, want 1500", stats.AvgLikes)
	}
	if stats.AvgComments == nil || *stats.AvgComments != 100 {
		t.Errorf("avg comments = %v, want 100", stats.AvgComments)
	}
	// (1500+100)/50000*100 = 3.2
	if stats.EngagementRate != 3.2 {
		t.Errorf("engagement rate = %v, want 3.2", stats.EngagementRate)
	}
}

func TestParseDocumentNoPosts(t *testing.T) {
	html := `<html><head>
		<meta property="og:description" content="1,000 Followers, 5 Following, 10 Posts">
	</head><body></body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}

	stats := parseDocument(doc, "quiet")
	if stats.Followers != 1000 {
		t.Errorf("followers = %d, want 1000", stats.Followers)
	}
	if stats.EngagementRate != 0 {
		t.Errorf("engagement rate = %v, want 0 when no post data", stats.EngagementRate)
	}
	if stats.AvgLikes != nil {
		t.Errorf("avg likes = %v, want nil", stats.AvgLikes)
	}
}

func TestParseDocumentCounterFallback(t *testing.T) {
	html := `<html><body>
		<div class="profile_counter"><span class="counter_value">7.5K</span><span class="counter_label">Followers</span></div>
	</body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}

	stats := parseDocument(doc, "fallback")
	if stats.Followers != 7500 {
		t.Errorf("followers = %d, want 7500", stats.Followers)
	}
}
