package interfaces

import "errors"

// ErrConditionFailed is returned by repositories when a conditional write
// was rejected by the store (item missing, already present, or its status
// moved on).
var ErrConditionFailed = errors.New("store condition failed")
