package router

// Router classifies user utterances by intent.
type Router interface {
	Classify(message string) RouterOutput
}

// KeywordRouter classifies with a fixed keyword table. Deterministic,
// no network, no model.
type KeywordRouter struct{}

var _ Router = (*KeywordRouter)(nil)

// New creates a new KeywordRouter.
func New() *KeywordRouter {
	return &KeywordRouter{}
}
