package background

import (
	"github.com/bitmark-inc/innercore-api/store"
)

// Background is a struct to maintain common clients
// and functions for all background workers
type Background struct {
	Mongo store.MongoStore
}
