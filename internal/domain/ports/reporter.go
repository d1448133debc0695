package ports

import "github.com/weft-dev/weft/internal/domain/entities"

// Reporter receives the advisories raised during a build. Implementations
// must be safe for concurrent use; both pipeline phases report from
// multiple goroutines.
type Reporter interface {
	Report(adv entities.Advisory)
}
