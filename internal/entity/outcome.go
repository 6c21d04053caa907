package entity

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusDraw    Status = "draw"
)

// Outcome classifies a match. Winner is set only when Status is StatusWon.
type Outcome struct {
	Status Status
	Winner *Player
}

func Ongoing() Outcome {
	return Outcome{Status: StatusOngoing}
}

func Won(winner Player) Outcome {
	return Outcome{Status: StatusWon, Winner: &winner}
}

func Drawn() Outcome {
	return Outcome{Status: StatusDraw}
}

func (that Outcome) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that Outcome) IsFinished() bool {
	return that.IsWon() || that.IsDraw()
}

func (that Outcome) IsWon() bool {
	return that.Status == StatusWon
}

func (that Outcome) IsDraw() bool {
	return that.Status == StatusDraw
}

// State is what presentation layers read after every move.
type State struct {
	MatchID       string
	CurrentPlayer Player
	Board         Grid
	Outcome       Outcome
}
