package domain

import "errors"

// ErrAlreadyExists is an error thrown when entity already exists
var ErrAlreadyExists = errors.New("already exists")

// ErrVideoNotFound is an error thrown when a video id does not resolve
var ErrVideoNotFound = errors.New("video not found")

// ErrLinkNotFound is an error thrown when a link id does not resolve
var ErrLinkNotFound = errors.New("link not found")

// ErrLinkExpired is an error thrown when a link is past its expiry time
var ErrLinkExpired = errors.New("link expired")

// ErrVideoTooLarge is an error thrown when an upload exceeds the size policy
var ErrVideoTooLarge = errors.New("video too large")

// ErrDurationOutOfPolicy is an error thrown when a video's duration is
// outside the configured range
var ErrDurationOutOfPolicy = errors.New("video duration out of policy")

// ErrInvalidRange is an error thrown when a trim range is invalid
var ErrInvalidRange = errors.New("invalid trim range")

// ErrTransformFailed is an error thrown when a media transform fails
var ErrTransformFailed = errors.New("media transform failed")

// ErrInvalidInput is an error thrown when a request is missing or has
// malformed fields
var ErrInvalidInput = errors.New("invalid input")
