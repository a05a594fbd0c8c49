package engine

import "strings"

// State is a phase of the game.
type State int

const (
	Start State = iota
	MapLoaded
	MapValidated
	PlayersAdded
	AssignReinforcement
	IssueOrders
	ExecuteOrders
	Win
	// Terminated follows the end command and accepts nothing.
	Terminated
)

var stateNames = [...]string{
	Start:               "START",
	MapLoaded:           "MAP_LOADED",
	MapValidated:        "MAP_VALIDATED",
	PlayersAdded:        "PLAYERS_ADDED",
	AssignReinforcement: "ASSIGN_REINFORCEMENT",
	IssueOrders:         "ISSUE_ORDERS",
	ExecuteOrders:       "EXECUTE_ORDERS",
	Win:                 "WIN",
	Terminated:          "TERMINATED",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "UNKNOWN"
	}
	return stateNames[s]
}

const (
	CmdLoadMap        = "loadmap"
	CmdValidateMap    = "validatemap"
	CmdAddPlayer      = "addplayer"
	CmdGameStart      = "gamestart"
	CmdIssueOrder     = "issueorder"
	CmdEndIssueOrders = "endissueorders"
	CmdExecOrder      = "execorder"
	CmdEndExecOrders  = "endexecorders"
	CmdWin            = "win"
	CmdPlay           = "play"
	CmdEnd            = "end"
)

type transition struct {
	command string
	next    State
}

// transitions lists, per state, the commands it accepts and where they lead.
var transitions = map[State][]transition{
	Start:               {{CmdLoadMap, MapLoaded}},
	MapLoaded:           {{CmdLoadMap, MapLoaded}, {CmdValidateMap, MapValidated}},
	MapValidated:        {{CmdAddPlayer, PlayersAdded}},
	PlayersAdded:        {{CmdAddPlayer, PlayersAdded}, {CmdGameStart, AssignReinforcement}},
	AssignReinforcement: {{CmdIssueOrder, IssueOrders}},
	IssueOrders:         {{CmdIssueOrder, IssueOrders}, {CmdEndIssueOrders, ExecuteOrders}},
	ExecuteOrders:       {{CmdExecOrder, ExecuteOrders}, {CmdEndExecOrders, AssignReinforcement}, {CmdWin, Win}},
	Win:                 {{CmdPlay, Start}, {CmdEnd, Terminated}},
}

// Next returns the state the command leads to, if s accepts it.
func (s State) Next(command string) (State, bool) {
	for _, t := range transitions[s] {
		if t.command == command {
			return t.next, true
		}
	}
	return s, false
}

// ValidCommands lists the commands s accepts in table order.
func (s State) ValidCommands() []string {
	commands := make([]string, 0, len(transitions[s]))
	for _, t := range transitions[s] {
		commands = append(commands, t.command)
	}
	return commands
}

func (s State) validList() string {
	commands := s.ValidCommands()
	if len(commands) == 0 {
		return "none"
	}
	return strings.Join(commands, ", ")
}
