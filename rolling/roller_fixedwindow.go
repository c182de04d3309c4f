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

package rolling

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/arborlog/arbor/internal/diag"
)

// FixedWindowRoller keeps a sliding window of `count` archives named
// by substituting an increasing index into `pattern`'s single "{}"
// placeholder, index `base` always holding the most recent archive
// (spec §4.5).
type FixedWindowRoller struct {
	Pattern string
	Base    int
	Count   int

	compressor Compressor
	background bool

	mu      sync.Mutex
	handoff chan string
	closeCh chan struct{}
	wg      sync.WaitGroup
	started bool
}

// NewFixedWindowRoller validates pattern/base/count and wires a
// compressor chosen from the pattern's extension, if any. When
// background is true, compression of the newly rotated archive runs
// on a dedicated goroutine with a capacity-1 hand-off (spec §4.5, §9
// "bounded background rotation"): Rotate does not wait for its own
// archive's compression, but blocks while the hand-off slot still
// holds an earlier archive the worker has not taken yet. The caller
// must call Close to drain it.
func NewFixedWindowRoller(pattern string, base, count int, background bool) (*FixedWindowRoller, error) {
	if strings.Count(pattern, "{}") != 1 {
		return nil, errMissingPlaceholder
	}
	if count <= 0 {
		return nil, errZeroCount
	}
	comp, _ := CompressorForExtension(pattern)
	r := &FixedWindowRoller{
		Pattern:    pattern,
		Base:       base,
		Count:      count,
		compressor: comp,
		background: background && comp != nil,
	}
	if r.background {
		r.handoff = make(chan string, 1)
		r.closeCh = make(chan struct{})
	}
	return r, nil
}

func (r *FixedWindowRoller) archivePath(index int) string {
	return strings.Replace(r.Pattern, "{}", strconv.Itoa(index), 1)
}

// Rotate implements Roller: spec §4.5's four-step algorithm.
func (r *FixedWindowRoller) Rotate(activePath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	top := r.Base + r.Count - 1
	if _, err := os.Stat(r.archivePath(top)); err == nil {
		if err := os.Remove(r.archivePath(top)); err != nil {
			return fmt.Errorf("rolling: deleting expired archive: %w", err)
		}
	}

	for i := top - 1; i >= r.Base; i-- {
		src := r.archivePath(i)
		if _, err := os.Stat(src); err != nil {
			continue
		}
		if err := os.Rename(src, r.archivePath(i+1)); err != nil {
			return fmt.Errorf("rolling: shifting archive %d->%d: %w", i, i+1, err)
		}
	}

	dst := r.archivePath(r.Base)
	if err := os.Rename(activePath, dst); err != nil {
		return fmt.Errorf("rolling: renaming active file to archive: %w", err)
	}

	if r.compressor == nil {
		return nil
	}
	if r.background {
		r.ensureWorker()
		r.handoff <- dst
		return nil
	}
	return r.compressor.Compress(dst)
}

// ensureWorker is called with r.mu held.
func (r *FixedWindowRoller) ensureWorker() {
	if r.started {
		return
	}
	r.started = true
	r.wg.Add(1)
	go r.run()
}

func (r *FixedWindowRoller) run() {
	defer r.wg.Done()
	for {
		select {
		case path := <-r.handoff:
			if err := r.compressor.Compress(path); err != nil {
				diag.Reportf("rolling", "compressing archive %s: %v", path, err)
			}
		case <-r.closeCh:
			// Drain any one pending archive left in the hand-off before
			// exiting so a Close racing a just-submitted Rotate doesn't
			// silently drop its compression.
			select {
			case path := <-r.handoff:
				if err := r.compressor.Compress(path); err != nil {
					diag.Reportf("rolling", "compressing archive %s: %v", path, err)
				}
			default:
			}
			return
		}
	}
}

// Close stops the background compression worker, if one was started,
// waiting for any in-flight compression to finish.
func (r *FixedWindowRoller) Close() error {
	r.mu.Lock()
	started := r.started
	r.mu.Unlock()
	if !r.background || !started {
		return nil
	}
	close(r.closeCh)
	r.wg.Wait()
	return nil
}
