package ownedSafes

import "errors"

// ErrNilOwnedSafesProvider signals that a nil owned safes provider was provided
var ErrNilOwnedSafesProvider = errors.New("nil owned safes provider")

// ErrNilCacher signals that a nil cacher was provided
var ErrNilCacher = errors.New("nil cacher")
