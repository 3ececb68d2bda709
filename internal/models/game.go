package models

// GameCategory groups related game types for mastery tracking and display
type GameCategory string

const (
	CategoryMemory         GameCategory = "MEMORY"
	CategoryMentalMath     GameCategory = "MENTAL_MATH"
	CategoryProblemSolving GameCategory = "PROBLEM_SOLVING"
	CategoryLanguage       GameCategory = "LANGUAGE"
)

// GameCategoryInfo holds display metadata for a game category
type GameCategoryInfo struct {
	Category    GameCategory `json:"category"`
	DisplayName string       `json:"display_name"`
	Icon        string       `json:"icon"`
}

// GameCategories lists every category in display order
var GameCategories = []GameCategoryInfo{
	{Category: CategoryMemory, DisplayName: "Memory", Icon: "🧠"},
	{Category: CategoryMentalMath, DisplayName: "Mental Math", Icon: "🔢"},
	{Category: CategoryProblemSolving, DisplayName: "Problem Solving", Icon: "🧩"},
	{Category: CategoryLanguage, DisplayName: "Language", Icon: "📚"},
}

// GameType identifies one of the twelve mini-games
type GameType string

const (
	GameMemoryGrid       GameType = "MEMORY_GRID"
	GameSequenceMemory   GameType = "SEQUENCE_MEMORY"
	GameWordRecall       GameType = "WORD_RECALL"
	GameMentalMath       GameType = "MENTAL_MATH"
	GameNumberComparison GameType = "NUMBER_COMPARISON"
	GameEstimation       GameType = "ESTIMATION"
	GamePatternMatch     GameType = "PATTERN_MATCH"
	GameLogicPuzzle      GameType = "LOGIC_PUZZLE"
	GameTowerOfHanoi     GameType = "TOWER_OF_HANOI"
	GameWordScramble     GameType = "WORD_SCRAMBLE"
	GameVerbalAnalogies  GameType = "VERBAL_ANALOGIES"
	GameVocabulary       GameType = "VOCABULARY"
)

// GameInfo holds display metadata for a game type
type GameInfo struct {
	Type        GameType     `json:"type"`
	DisplayName string       `json:"display_name"`
	Description string       `json:"description"`
	Icon        string       `json:"icon"`
	Category    GameCategory `json:"category"`
}

// Games maps every game type to its display metadata
var Games = map[GameType]GameInfo{
	GameMemoryGrid:       {Type: GameMemoryGrid, DisplayName: "Memory Grid", Description: "Remember the positions of highlighted tiles", Icon: "🔲", Category: CategoryMemory},
	GameSequenceMemory:   {Type: GameSequenceMemory, DisplayName: "Sequence Memory", Description: "Repeat the sequence of lights", Icon: "🔀", Category: CategoryMemory},
	GameWordRecall:       {Type: GameWordRecall, DisplayName: "Word Recall", Description: "Memorize and recall a list of words", Icon: "📝", Category: CategoryMemory},
	GameMentalMath:       {Type: GameMentalMath, DisplayName: "Mental Math", Description: "Solve arithmetic problems quickly", Icon: "➕", Category: CategoryMentalMath},
	GameNumberComparison: {Type: GameNumberComparison, DisplayName: "Number Compare", Description: "Compare expressions quickly", Icon: "⚖️", Category: CategoryMentalMath},
	GameEstimation:       {Type: GameEstimation, DisplayName: "Estimation", Description: "Estimate quantities and values", Icon: "🎯", Category: CategoryMentalMath},
	GamePatternMatch:     {Type: GamePatternMatch, DisplayName: "Pattern Match", Description: "Find the pattern that completes the sequence", Icon: "🔢", Category: CategoryProblemSolving},
	GameLogicPuzzle:      {Type: GameLogicPuzzle, DisplayName: "Logic Puzzle", Description: "Solve logical reasoning problems", Icon: "💡", Category: CategoryProblemSolving},
	GameTowerOfHanoi:     {Type: GameTowerOfHanoi, DisplayName: "Tower of Hanoi", Description: "Move all disks to the target peg", Icon: "🗼", Category: CategoryProblemSolving},
	GameWordScramble:     {Type: GameWordScramble, DisplayName: "Word Scramble", Description: "Unscramble letters to form words", Icon: "🔤", Category: CategoryLanguage},
	GameVerbalAnalogies:  {Type: GameVerbalAnalogies, DisplayName: "Analogies", Description: "Complete word relationships", Icon: "↔️", Category: CategoryLanguage},
	GameVocabulary:       {Type: GameVocabulary, DisplayName: "Vocabulary", Description: "Test your word knowledge", Icon: "📖", Category: CategoryLanguage},
}

// MaxLevel is the highest playable difficulty level for every game
const MaxLevel = 3

// IsValid reports whether g is one of the known game types
func (g GameType) IsValid() bool {
	_, ok := Games[g]
	return ok
}

// GamesInCategory returns the game types belonging to a category, in a
// stable order
func GamesInCategory(category GameCategory) []GameType {
	order := []GameType{
		GameMemoryGrid, GameSequenceMemory, GameWordRecall,
		GameMentalMath, GameNumberComparison, GameEstimation,
		GamePatternMatch, GameLogicPuzzle, GameTowerOfHanoi,
		GameWordScramble, GameVerbalAnalogies, GameVocabulary,
	}

	var games []GameType
	for _, g := range order {
		if Games[g].Category == category {
			games = append(games, g)
		}
	}
	return games
}
