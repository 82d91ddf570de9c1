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

package source

import (
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

// Salsa20 yields deterministic uniform float64 values by expanding a
// 32-byte key with the Salsa20 stream cipher. Two sources built from
// the same key produce identical streams, which makes sampling runs
// reproducible while keeping the stream statistically strong. The
// counter is used as the cipher nonce, one block per draw.
type Salsa20 struct {
	key     *[32]byte
	counter uint64
}

// NewSalsa20 returns an instance of the Salsa20 source determined by
// key.
func NewSalsa20(key *[32]byte) *Salsa20 {
	return &Salsa20{key: key}
}

// Float64 returns the next value of the keystream mapped into [0, 1).
func (s *Salsa20) Float64() float64 {
	var nonce [8]byte
	binary.LittleEndian.PutUint64(nonce[:], s.counter)
	s.counter++

	var in, out [8]byte // input is initialized to zeros
	salsa20.XORKeyStream(out[:], in[:], nonce[:], s.key)

	u := binary.LittleEndian.Uint64(out[:]) >> 11
	return float64(u) / float64Unit
}
