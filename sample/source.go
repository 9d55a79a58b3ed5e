/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import (
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

// DetSource is a deterministic random source backed by a salsa20
// keystream: a fixed key always yields the same stream of values. It
// implements golang.org/x/exp/rand.Source, so it can drive any sampler
// in this library.
type DetSource struct {
	key [32]byte
	ctr uint64
}

// NewDetSource returns a deterministic source for the given key.
func NewDetSource(key *[32]byte) *DetSource {
	return &DetSource{key: *key}
}

// Uint64 returns the next 8 bytes of the keystream.
func (s *DetSource) Uint64() uint64 {
	var nonce [8]byte
	binary.LittleEndian.PutUint64(nonce[:], s.ctr)
	s.ctr++

	var in, out [8]byte
	salsa20.XORKeyStream(out[:], in[:], nonce[:], &s.key)
	return binary.LittleEndian.Uint64(out[:])
}

// Seed positions the keystream at the given block counter. Seed(0)
// replays the stream from the beginning.
func (s *DetSource) Seed(seed uint64) {
	s.ctr = seed
}
