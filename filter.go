package mdblog

import (
	"sort"
	"strings"
)

// AllCategories selects every post regardless of category.
const AllCategories = "all"

// FilterPosts returns the posts in category (or every category for
// AllCategories) whose title, description or one of the tags contains term,
// compared case-insensitively. An empty term matches every post.
func FilterPosts(posts []Post, category, term string) []Post {
	term = strings.ToLower(term)
	filtered := make([]Post, 0, len(posts))
	for _, p := range posts {
		if category != AllCategories && p.Category != category {
			continue
		}
		if term != "" && !matchesTerm(p, term) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func matchesTerm(p Post, term string) bool {
	if strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	return false
}

// Categories returns AllCategories followed by each non-empty category in
// the order it first appears.
func Categories(posts []Post) []string {
	out := []string{AllCategories}
	seen := make(map[string]struct{})
	for _, p := range posts {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// RelatedPosts ranks the other posts by similarity to current: three points
// for the same category and one per shared tag. Ties keep collection order.
func RelatedPosts(current Post, posts []Post, limit int) []Post {
	type scored struct {
		post  Post
		score int
	}
	tagSet := make(map[string]struct{}, len(current.Tags))
	for _, t := range current.Tags {
		tagSet[t] = struct{}{}
	}

	var candidates []scored
	for _, p := range posts {
		if p.Slug == current.Slug {
			continue
		}
		score := 0
		if p.Category == current.Category {
			score += 3
		}
		for _, t := range p.Tags {
			if _, ok := tagSet[t]; ok {
				score++
			}
		}
		candidates = append(candidates, scored{p, score})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	limit = max(0, min(limit, len(candidates)))
	related := make([]Post, 0, limit)
	for _, c := range candidates[:limit] {
		related = append(related, c.post)
	}
	return related
}
