package keystore

import "errors"

// ErrEmptyDirectory signals that an empty keystore directory was provided
var ErrEmptyDirectory = errors.New("empty keystore directory")

// ErrKeyNotFound signals that the keystore holds no key for the requested address
var ErrKeyNotFound = errors.New("key not found")

// ErrAddressMismatch signals that a key file does not hold the key of the address it is named after
var ErrAddressMismatch = errors.New("key file address mismatch")
