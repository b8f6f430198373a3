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

package mtrand

import (
	"crypto/rand"
	"encoding/binary"
	"os"
	"time"

	"golang.org/x/crypto/salsa20"
)

// EntropySeed gathers ambient system entropy into a single 32-bit
// seed for default construction. Operating-system randomness, the
// wall clock and the process id are folded into a salsa20 key and one
// keystream word is drawn from it. The result seeds a deterministic
// generator; it is not itself a secret.
func EntropySeed() uint32 {
	var key [32]byte
	if _, err := rand.Read(key[:]); err != nil {
		binary.LittleEndian.PutUint64(key[:8], uint64(time.Now().UnixNano()))
	}
	binary.LittleEndian.PutUint64(key[8:16], uint64(time.Now().UnixNano()))
	binary.LittleEndian.PutUint32(key[16:20], uint32(os.Getpid()))

	in := make([]byte, 4)
	out := make([]byte, 4)
	nonce := make([]byte, 8)
	salsa20.XORKeyStream(out, in, nonce, &key)
	return binary.LittleEndian.Uint32(out)
}
