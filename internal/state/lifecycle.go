package state

// AppState is the top-level screen of the application.
type AppState int

const (
	MainMenu AppState = iota
	GameModeSelectionScreen
	Game
)

func (s AppState) String() string {
	switch s {
	case MainMenu:
		return "MainMenu"
	case GameModeSelectionScreen:
		return "GameModeSelectionScreen"
	case Game:
		return "Game"
	default:
		return "AppState(?)"
	}
}

// GameState is the in-run lifecycle nested under AppState Game.
type GameState int

const (
	None GameState = iota
	Setup
	Loading
	Playing
	Paused
	Won
	Over
	Restart
)

func (s GameState) String() string {
	switch s {
	case None:
		return "None"
	case Setup:
		return "Setup"
	case Loading:
		return "Loading"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Won:
		return "Won"
	case Over:
		return "Over"
	case Restart:
		return "Restart"
	default:
		return "GameState(?)"
	}
}

// AppRules returns the legality table for AppState.
func AppRules() *Rules[AppState] {
	return NewRules[AppState]().
		Allow(MainMenu, GameModeSelectionScreen, Game).
		Allow(GameModeSelectionScreen, MainMenu, Game).
		Allow(Game, MainMenu)
}

// GameRules returns the legality table for GameState. Any value may fall back
// to None when the app leaves the Game screen.
func GameRules() *Rules[GameState] {
	return NewRules[GameState]().
		AllowFromAny(None).
		Allow(None, Setup).
		Allow(Setup, Loading).
		Allow(Loading, Playing).
		Allow(Playing, Paused, Won, Over, Restart).
		Allow(Paused, Playing, Restart).
		Allow(Won, Restart).
		Allow(Over, Restart).
		Allow(Restart, Setup)
}

// GameResult is the terminal outcome of a run.
type GameResult int

const (
	ResultWon GameResult = iota
	ResultLost
)

func (r GameResult) String() string {
	if r == ResultWon {
		return "won"
	}
	return "lost"
}
