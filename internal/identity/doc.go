// SPDX-License-Identifier: MPL-2.0

// Package identity discovers the launchable accounts inside a WSL
// distribution: UID 0 or UID >= 1000, excluding the reserved 'nobody'
// placeholder.
package identity
