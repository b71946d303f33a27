package enums

import "fmt"

// FunnelStage identifies one step of the sales pipeline. Each stage is
// persisted as its own contact table (append-only progression; a contact
// may appear in several stage tables).
type FunnelStage string

const (
	FunnelStageEntered     FunnelStage = "entered"
	FunnelStageProspecting FunnelStage = "prospecting"
	FunnelStageConnection  FunnelStage = "connection"
	FunnelStageNegotiation FunnelStage = "negotiation"
	FunnelStageScheduled   FunnelStage = "scheduled"
	FunnelStageClosed      FunnelStage = "closed"
	FunnelStageWon         FunnelStage = "won"
	FunnelStageLost        FunnelStage = "lost"
)

// AllFunnelStages lists the stages in pipeline order.
var AllFunnelStages = []FunnelStage{
	FunnelStageEntered,
	FunnelStageProspecting,
	FunnelStageConnection,
	FunnelStageNegotiation,
	FunnelStageScheduled,
	FunnelStageClosed,
	FunnelStageWon,
	FunnelStageLost,
}

var funnelStageTables = map[FunnelStage]string{
	FunnelStageEntered:     "funnel_entered",
	FunnelStageProspecting: "funnel_prospecting",
	FunnelStageConnection:  "funnel_connection",
	FunnelStageNegotiation: "funnel_negotiation",
	FunnelStageScheduled:   "funnel_scheduled",
	FunnelStageClosed:      "funnel_closed",
	FunnelStageWon:         "funnel_won",
	FunnelStageLost:        "funnel_lost",
}

// String implements fmt.Stringer.
func (s FunnelStage) String() string {
	return string(s)
}

// IsValid reports whether the value is a known FunnelStage.
func (s FunnelStage) IsValid() bool {
	_, ok := funnelStageTables[s]
	return ok
}

// Table returns the contact table backing this stage.
func (s FunnelStage) Table() string {
	return funnelStageTables[s]
}

// ParseFunnelStage converts raw input into a FunnelStage.
func ParseFunnelStage(value string) (FunnelStage, error) {
	stage := FunnelStage(value)
	if !stage.IsValid() {
		return "", fmt.Errorf("invalid funnel stage %q", value)
	}
	return stage, nil
}
