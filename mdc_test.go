// Copyright 2026 The arbor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package arbor_test

import (
	"testing"

	"github.com/arborlog/arbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMDCSetGet(t *testing.T) {
	m := arbor.NewMDC()
	m.Set("req_id", "abc")

	v, ok := m.Get("req_id")
	require.True(t, ok)
	assert.Equal(t, "abc", v)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestMDCPreservesInsertionOrderAndOverwrite(t *testing.T) {
	m := arbor.NewMDC()
	m.Set("b", "1")
	m.Set("a", "2")
	m.Set("b", "3")

	kvs := m.KVs()
	require.Len(t, kvs, 2)
	assert.Equal(t, arbor.KV{Key: "b", Value: "3"}, kvs[0])
	assert.Equal(t, arbor.KV{Key: "a", Value: "2"}, kvs[1])
}

func TestMDCSetReturnsSelfForChaining(t *testing.T) {
	m := arbor.NewMDC()
	got := m.Set("a", "1").Set("b", "2")
	assert.Same(t, m, got)
	assert.Len(t, m.KVs(), 2)
}
