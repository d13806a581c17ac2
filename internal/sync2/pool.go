// Copyright 2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sync2 provides strongly-typed concurrency helpers.
package sync2

import "sync"

// Resetter is a pointer to a scratch value that can clear itself for re-use.
type Resetter[T any] interface {
	*T
	Reset()
}

// Pool is a sync.Pool of *T, where *T knows how to reset itself.
//
// The zero value is ready to use.
type Pool[T any, P Resetter[T]] struct {
	impl sync.Pool
}

// Get returns a reset value from the pool, allocating one if the pool is
// empty. Return it with [Pool.Put] once done with it.
func (p *Pool[T, P]) Get() P {
	if v, ok := p.impl.Get().(P); ok {
		return v
	}
	return P(new(T))
}

// Put resets v and returns it to the pool.
//
// Use like this:
//
//	v := pool.Get()
//	defer pool.Put(v)
func (p *Pool[T, P]) Put(v P) {
	v.Reset()
	p.impl.Put(v)
}
