package workload

import (
	"fmt"
	"math/rand"

	"cpusched/internal/sched"
)

// RandomSpec bounds a generated workload.
type RandomSpec struct {
	Count       int
	MaxArrival  int
	MaxBurst    int // at least 1
	MaxPriority int
	Seed        int64
}

// Random returns Count processes named P1, P2, ... drawn from spec. The same
// seed always produces the same workload.
func Random(spec RandomSpec) []sched.Process {
	r := rand.New(rand.NewSource(spec.Seed))
	maxBurst := max(spec.MaxBurst, 1)

	procs := make([]sched.Process, max(spec.Count, 0))
	for i := range procs {
		procs[i] = sched.Process{
			Name:     fmt.Sprintf("P%d", i+1),
			Arrival:  r.Intn(max(spec.MaxArrival, 0) + 1),
			Burst:    1 + r.Intn(maxBurst),
			Priority: r.Intn(max(spec.MaxPriority, 0) + 1),
		}
	}
	return procs
}
