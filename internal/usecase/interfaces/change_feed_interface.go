package interfaces

import "m2_studio/internal/domain/entities"

// IChangeFeed pushes committed changes to live subscribers. Publish never
// blocks on slow subscribers.
type IChangeFeed interface {
	Publish(topic string, event entities.ChangeEvent)
}
