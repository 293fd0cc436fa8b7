package services

import "errors"

// ErrInvalidID reports an identifier string that does not round-trip to a
// store-native ObjectID. Handlers map it to 400.
var ErrInvalidID = errors.New("invalid id format")
