package funnel

import "github.com/tetraedu/desempenho-backend/pkg/enums"

// Strategy tags how a summary was computed so callers and metrics can
// tell snapshot reads from live recomputes apart.
type Strategy string

const (
	StrategyLive         Strategy = "live"
	StrategySnapshot     Strategy = "snapshot"
	StrategyLiveFallback Strategy = "live_fallback"
)

// StageCounts holds one counter per pipeline stage.
type StageCounts struct {
	Entered     int `json:"entered"`
	Prospecting int `json:"prospecting"`
	Connection  int `json:"connection"`
	Negotiation int `json:"negotiation"`
	Scheduled   int `json:"scheduled"`
	Closed      int `json:"closed"`
	Won         int `json:"won"`
	Lost        int `json:"lost"`
}

// Get returns the counter for the given stage.
func (c StageCounts) Get(stage enums.FunnelStage) int {
	switch stage {
	case enums.FunnelStageEntered:
		return c.Entered
	case enums.FunnelStageProspecting:
		return c.Prospecting
	case enums.FunnelStageConnection:
		return c.Connection
	case enums.FunnelStageNegotiation:
		return c.Negotiation
	case enums.FunnelStageScheduled:
		return c.Scheduled
	case enums.FunnelStageClosed:
		return c.Closed
	case enums.FunnelStageWon:
		return c.Won
	case enums.FunnelStageLost:
		return c.Lost
	}
	return 0
}

// Set assigns the counter for the given stage.
func (c *StageCounts) Set(stage enums.FunnelStage, value int) {
	switch stage {
	case enums.FunnelStageEntered:
		c.Entered = value
	case enums.FunnelStageProspecting:
		c.Prospecting = value
	case enums.FunnelStageConnection:
		c.Connection = value
	case enums.FunnelStageNegotiation:
		c.Negotiation = value
	case enums.FunnelStageScheduled:
		c.Scheduled = value
	case enums.FunnelStageClosed:
		c.Closed = value
	case enums.FunnelStageWon:
		c.Won = value
	case enums.FunnelStageLost:
		c.Lost = value
	}
}

// Summary is the funnel aggregate returned to clients.
type Summary struct {
	Counts   StageCounts `json:"counts"`
	Strategy Strategy    `json:"strategy"`
}
