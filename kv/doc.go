// Copyright 2020 Stalwart Labs LLC <hello@stalw.art>
// This file is part of storekey.
//
// storekey is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// storekey is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with storekey. If not, see <http://www.gnu.org/licenses/>.

// Package kv translates typed, structured record identifiers used by the
// mail server's subsystems into a flat, ordered byte-key space suitable
// for any LSM/B-tree backed key-value store.
//
// Every key class in this package knows how to serialize itself to bytes
// (Key.Serialize), report which single-byte subspace it belongs to
// (Key.Subspace), and, for classes sized ahead of time, how big its
// encoding will be (SerializedSizer.SerializedSize). None of the types
// here hold resources or have identity beyond their byte encoding: they
// are constructed, serialized, handed to a KV engine, and discarded.
package kv
