package orchestrator

import (
	"fmt"
	"strings"
)

// placeholderPool lists the generic substitute images used whenever the
// generation backend is unavailable or fails.
var placeholderPool = []string{
	"https://picsum.photos/600/400?random=1",
	"https://picsum.photos/600/400?random=2",
	"https://picsum.photos/600/400?random=3",
	"https://source.unsplash.com/600x400/?product",
	"https://source.unsplash.com/600x400/?retail",
}

// stylePlaceholders extends the pool with one style-matched candidate for
// recognized styles.
var stylePlaceholders = map[string]string{
	"vintage":    "https://source.unsplash.com/600x400/?vintage",
	"modern":     "https://source.unsplash.com/600x400/?modern",
	"minimalist": "https://source.unsplash.com/600x400/?minimalist",
	"luxury":     "https://source.unsplash.com/600x400/?luxury",
}

// placeholderImage picks a substitute asset uniformly at random over the
// pool, extended with a job-tagged candidate and, when the style is
// recognized, a style-matched one.
func (o *Orchestrator) placeholderImage(style, jobID string) string {
	pool := make([]string, 0, len(placeholderPool)+2)
	pool = append(pool, placeholderPool...)
	pool = append(pool, fmt.Sprintf("https://placehold.co/600x400?text=Cart+%s", shortID(jobID)))
	if url, ok := stylePlaceholders[strings.ToLower(strings.TrimSpace(style))]; ok {
		pool = append(pool, url)
	}

	o.rngMu.Lock()
	pick := o.rng.Intn(len(pool))
	o.rngMu.Unlock()
	return pool[pick]
}

func shortID(id string) string {
	if len(id) > 6 {
		return id[:6]
	}
	return id
}
