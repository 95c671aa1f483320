package catalog

import (
	"catalogapi.app/pkg/errors"
)

type failureKind int

const (
	failureNone failureKind = iota
	// soft failures are logged and the operation carries on without the cache
	failureSoft
	// hard failures end the request
	failureHard
)

// outcome classifies the result of an adapter call
type outcome struct {
	kind failureKind
	err  error
}

func (o outcome) isSoft() bool {
	return o.kind == failureSoft
}

func (o outcome) isHard() bool {
	return o.kind == failureHard
}

// cacheOutcome classifies a cache store error. Cache failures are always soft.
func cacheOutcome(err error) outcome {
	if err == nil {
		return outcome{kind: failureNone}
	}
	if !errors.IsCacheError(err) {
		err = errors.NewCacheError("cache operation failed", err)
	}
	return outcome{kind: failureSoft, err: err}
}

// storeOutcome classifies a persistence error. Persistence failures are always hard.
func storeOutcome(err error) outcome {
	if err == nil {
		return outcome{kind: failureNone}
	}
	if errors.TypeOf(err) == errors.ErrorTypeUnknown {
		err = errors.NewDatabaseError("persistence operation failed", err)
	}
	return outcome{kind: failureHard, err: err}
}
