// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive client application runtime.
//
// It wires the local note storage, business services, the application state
// controller, the location provider, and the terminal UI into a single
// process lifecycle.
package client
