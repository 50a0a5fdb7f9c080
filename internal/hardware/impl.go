// Package hardware provides hardware accelerated implementations.
package hardware

import "gitlab.com/yawning/aes128.git/internal/api"

// Factory is a factory that will construct hardware backed AES-128
// implementations if supported.
var Factory api.Factory
