package content

import (
	"math"
	"sort"

	"portfolio-api/models"
)

const defaultRelatedLimit = 3

const (
	categoryBonus = 5.0
	tagBonus      = 3.0
	recencyCap    = 10.0
	decayPerDay   = 0.1
)

const millisPerDay = 1000 * 60 * 60 * 24

// Related ranks the other posts in the index by relatedness to target and
// returns the top limit entries. The target is excluded by slug, not by
// identity, since posts are reconstructed on every load. Pure function.
func Related(target models.Post, all []models.Post, limit int) []models.Post {
	if limit <= 0 {
		limit = defaultRelatedLimit
	}

	type scoredPost struct {
		post  models.Post
		score float64
	}

	targetTags := make(map[string]struct{}, len(target.Frontmatter.Tags))
	for _, tag := range target.Frontmatter.Tags {
		targetTags[tag] = struct{}{}
	}
	targetTime := target.Frontmatter.PublishedAt()

	scored := make([]scoredPost, 0, len(all))
	for _, candidate := range all {
		if candidate.Slug == target.Slug {
			continue
		}

		var score float64
		if candidate.Frontmatter.Category == target.Frontmatter.Category {
			score += categoryBonus
		}

		// Distinct common tags only; duplicates in either list count once.
		seen := make(map[string]struct{}, len(candidate.Frontmatter.Tags))
		for _, tag := range candidate.Frontmatter.Tags {
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			if _, ok := targetTags[tag]; ok {
				score += tagBonus
			}
		}

		millis := candidate.Frontmatter.PublishedAt().Sub(targetTime).Milliseconds()
		daysDiff := math.Abs(float64(millis) / millisPerDay)
		score += math.Max(0, recencyCap-daysDiff*decayPerDay)

		scored = append(scored, scoredPost{post: candidate, score: score})
	}

	// Stable sort so equal scores keep index order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	related := make([]models.Post, 0, len(scored))
	for _, s := range scored {
		related = append(related, s.post)
	}
	return related
}
