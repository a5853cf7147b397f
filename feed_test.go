package studyblog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestComputeFeed(t *testing.T) {
	posts := testPosts()
	tests := []struct {
		name  string
		query string
		tag   string
		want  []string
	}{
		{"no filter", "", "", []string{"1", "2", "3"}},
		{"query", "python", "", []string{"3"}},
		{"query ignores case", "PROGRAMMING", "", []string{"1", "3"}},
		{"tag", "", "Programming", []string{"1", "3"}},
		{"tag is exact", "", "programming", nil},
		{"tag is not substring", "", "Program", nil},
		{"query and tag", "go", "Programming", []string{"1"}},
		{"query and tag disjoint", "joins", "Programming", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(ComputeFeed(posts, tt.query, tt.tag))
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ComputeFeed(%q, %q) mismatch (-want +got):\n%s", tt.query, tt.tag, diff)
			}
		})
	}
}

func TestComputeFeedSeed(t *testing.T) {
	s, err := DefaultStore()
	if err != nil {
		t.Fatal(err)
	}
	all := ComputeFeed(s.All(), "", "")
	if len(all) != 5 {
		t.Fatalf("empty filter returned %d posts, want 5", len(all))
	}
	found := false
	for _, p := range ComputeFeed(s.All(), "python", "") {
		if p.ID == "3" {
			found = true
		}
	}
	if !found {
		t.Error(`"python" should include post 3`)
	}
}

func TestDistinctTags(t *testing.T) {
	posts := []Post{
		{ID: "1", Tags: []string{"B", "A"}},
		{ID: "2", Tags: []string{"C", "B"}},
		{ID: "3"},
	}
	want := []string{"A", "B", "C"}
	if diff := cmp.Diff(want, DistinctTags(posts)); diff != "" {
		t.Errorf("DistinctTags mismatch (-want +got):\n%s", diff)
	}
	if got := DistinctTags(nil); len(got) != 0 {
		t.Errorf("DistinctTags(nil) = %v, want empty", got)
	}
}

func TestDistinctTagsKeepsCase(t *testing.T) {
	posts := []Post{{ID: "1", Tags: []string{"go", "Go"}}}
	want := []string{"Go", "go"}
	if diff := cmp.Diff(want, DistinctTags(posts)); diff != "" {
		t.Errorf("DistinctTags mismatch (-want +got):\n%s", diff)
	}
}

func TestRelatedPosts(t *testing.T) {
	posts := testPosts()
	posts = append(posts, Post{ID: "4", Tags: []string{"Programming"}})

	got := ids(RelatedPosts(posts[0], posts, 0))
	if diff := cmp.Diff([]string{"3", "4"}, got); diff != "" {
		t.Errorf("RelatedPosts mismatch (-want +got):\n%s", diff)
	}
	got = ids(RelatedPosts(posts[0], posts, 1))
	if diff := cmp.Diff([]string{"3"}, got); diff != "" {
		t.Errorf("RelatedPosts capped mismatch (-want +got):\n%s", diff)
	}
	if got := RelatedPosts(posts[1], posts, 3); len(got) != 0 {
		t.Errorf("post with unique tags should have no related posts, got %v", ids(got))
	}
}

func TestSuggestTags(t *testing.T) {
	tags := []string{"Algorithms", "Database", "Data Structures", "Python"}
	got := SuggestTags("dt", tags, 2)
	if len(got) == 0 || len(got) > 2 {
		t.Fatalf("SuggestTags = %v, want 1 or 2 matches", got)
	}
	for _, s := range got {
		if s != "Database" && s != "Data Structures" {
			t.Errorf("unexpected suggestion %q", s)
		}
	}
	if got := SuggestTags("   ", tags, 3); got != nil {
		t.Errorf("blank query should suggest nothing, got %v", got)
	}
	if got := SuggestTags("qqq", tags, 3); got != nil {
		t.Errorf("SuggestTags(qqq) = %v, want nil", got)
	}
}

func TestFeedCaption(t *testing.T) {
	tests := []struct {
		count int
		f     FilterState
		want  string
	}{
		{5, FilterState{}, "Showing 5 blogs"},
		{1, FilterState{Query: "python"}, `Showing 1 blog for "python"`},
		{0, FilterState{Tag: "SQL"}, "Showing 0 blogs in SQL"},
		{2, FilterState{Query: "go", Tag: "Programming"}, `Showing 2 blogs for "go" in Programming`},
	}
	for _, tt := range tests {
		if got := FeedCaption(tt.count, tt.f); got != tt.want {
			t.Errorf("FeedCaption(%d, %+v) = %q, want %q", tt.count, tt.f, got, tt.want)
		}
	}
}

func TestLatestPosts(t *testing.T) {
	posts := testPosts()
	posts = append(posts, Post{ID: "4", Date: posts[1].Date})

	got := ids(LatestPosts(posts, 3))
	if diff := cmp.Diff([]string{"2", "4", "3"}, got); diff != "" {
		t.Errorf("LatestPosts mismatch (-want +got):\n%s", diff)
	}
	if n := len(LatestPosts(posts, 0)); n != 4 {
		t.Errorf("LatestPosts(0) returned %d posts, want 4", n)
	}
	if posts[0].ID != "1" {
		t.Error("LatestPosts must not reorder its input")
	}
}
