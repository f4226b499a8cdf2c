// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

// Listeners is an ordered list of range change listener functions.
// Listeners are closures with all context captured.
type Listeners []func(left, right float32)

// Add adds a function to the end of the list.
func (ls *Listeners) Add(fun func(left, right float32)) {
	*ls = append(*ls, fun)
}

// Call calls all functions with the given range, in the order
// in which they were added.
func (ls Listeners) Call(left, right float32) {
	for _, fun := range ls {
		fun(left, right)
	}
}
