package score

import (
	"fmt"
	"math"
	"strings"

	"github.com/LakshyaxGupta/FlowBreak/internal/entity"
	"github.com/LakshyaxGupta/FlowBreak/pkg/utils"
)

const explanationPrefix = "Between the detected time window, "

// Explain returns copies of breaks with Explanation filled in.
func Explain(breaks []entity.AttentionBreak) []entity.AttentionBreak {
	out := make([]entity.AttentionBreak, len(breaks))
	for i, b := range breaks {
		b.Explanation = explanationPrefix + describe(b)
		out[i] = b
	}
	return out
}

func describe(b entity.AttentionBreak) string {
	switch b.Reason {
	case entity.ReasonHighContextSwitching:
		return fmt.Sprintf("frequent switching between %s caused loss of focus.", strings.Join(b.Domains, ", "))
	case entity.ReasonNavigationLoop:
		return fmt.Sprintf("repeated navigation between %s disrupted focus.", strings.Join(b.Domains, " and "))
	case entity.ReasonAttentionIdleSpike:
		var idle int64
		if b.IdleSeconds != nil {
			idle = *b.IdleSeconds
		}
		minutes := int64(math.Round(float64(idle) / 60))
		return fmt.Sprintf("an idle period of %d minutes indicated a loss of attention.", minutes)
	case entity.ReasonRapidTabSwitch:
		seconds := utils.SecondsBetween(b.StartTime, b.EndTime)
		if len(b.Domains) >= 2 {
			return fmt.Sprintf("a rapid switch from %s to %s within %d seconds interrupted focus.", b.Domains[0], b.Domains[1], seconds)
		}
		return fmt.Sprintf("a rapid tab switch within %d seconds interrupted focus.", seconds)
	default:
		return "attention was interrupted."
	}
}
