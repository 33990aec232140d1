package attention

import (
	"github.com/LakshyaxGupta/FlowBreak/internal/entity"
	"github.com/LakshyaxGupta/FlowBreak/pkg/utils"
)

// TotalIdleSeconds sums, for every gap between consecutive events longer
// than thresholdSeconds, only the part above the threshold. Events must be in
// ascending order.
func TotalIdleSeconds(events []entity.Event, thresholdSeconds int64) int64 {
	if len(events) < 2 {
		return 0
	}

	var total int64
	for i := 1; i < len(events); i++ {
		gap := utils.SecondsBetween(events[i-1].Timestamp, events[i].Timestamp)
		if gap > thresholdSeconds {
			total += gap - thresholdSeconds
		}
	}
	return total
}
