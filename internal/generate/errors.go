package generate

import "errors"

var (
	ErrConfigRequired  = errors.New("config path is required")
	ErrVersionAbsent   = errors.New("actorspecVersion is not set")
	ErrVersionFalsy    = errors.New("actorspecVersion must be truthy")
	ErrNotSerializable = errors.New("resolved config cannot be serialized to JSON")
)
