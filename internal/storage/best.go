package storage

// BestScore binds a Store to one game id so it can serve as a game's best
// score persistence.
type BestScore struct {
	store  *Store
	gameID string
}

// NewBestScore returns the best score accessor for gameID.
func NewBestScore(store *Store, gameID string) *BestScore {
	return &BestScore{store: store, gameID: gameID}
}

// LoadBest returns the stored best score.
func (b *BestScore) LoadBest() (int, error) {
	return b.store.LoadBest(b.gameID)
}

// SaveBest stores a new best score.
func (b *BestScore) SaveBest(score int) error {
	return b.store.SaveBest(b.gameID, score)
}
