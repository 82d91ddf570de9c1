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
	"crypto/rand"
	"encoding/binary"

	"github.com/pkg/errors"
)

// float64Unit divides a 53-bit integer into [0, 1).
const float64Unit = 1 << 53

// Crypto yields uniform float64 values backed by crypto/rand. Reads
// from the system randomness source are expected to never fail; an
// errored read panics.
type Crypto struct{}

// NewCrypto returns an instance of the Crypto source.
func NewCrypto() *Crypto {
	return &Crypto{}
}

// Float64 returns a uniform value in [0, 1) built from the top 53
// bits of 8 random bytes.
func (s *Crypto) Float64() float64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(errors.Wrap(err, "read of system randomness source failed"))
	}
	u := binary.LittleEndian.Uint64(b[:]) >> 11
	return float64(u) / float64Unit
}
