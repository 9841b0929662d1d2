package cache

import "errors"

var ErrNotFoundInCache = errors.New("not found in cache")
