package searcher

// Hyperparameters for alpha-beta search

const CaptureReward = 5.0      // Per opponent stone captured by a move
const SelfCapturePenalty = 8.5 // Per own stone lost by a move
