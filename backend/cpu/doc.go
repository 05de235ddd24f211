// Copyright 2025 The FlowSpline Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend for FlowSpline tensors.
//
// The backend implements the full tensor.Backend operation surface with
// generic kernels and no cgo or assembly. Elementwise and broadcast
// operations over large buffers are chunked across goroutines; use
// NewSequential for a single-threaded variant.
package cpu
