package draw

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/ramonehamilton/lotto-companion/internal/lottery"
)

// DrawFromList uniformly samples count distinct values from the candidate
// list without replacement and returns them sorted ascending. The list is
// treated as a set: duplicates count once. Fails with
// ErrInsufficientCandidates when the set holds fewer than count values.
func DrawFromList(rng *rand.Rand, candidates []int, count int) ([]int, error) {
	set := make(map[int]bool, len(candidates))
	pool := make([]int, 0, len(candidates))
	for _, v := range candidates {
		if !set[v] {
			set[v] = true
			pool = append(pool, v)
		}
	}

	if len(pool) < count {
		return nil, fmt.Errorf("need %d of %d candidates: %w", count, len(pool), lottery.ErrInsufficientCandidates)
	}

	result := make([]int, 0, count)
	for i := 0; i < count; i++ {
		j := rng.Intn(len(pool))
		result = append(result, pool[j])
		pool[j] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}

	sort.Ints(result)
	return result, nil
}
