/*
Copyright © 2025 Nikolai Voronin <nv@nvoronin.dev>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package progress tracks the progress of long iterative jobs and renders
// throttled, human-readable progress lines to a console and/or a file.
//
// The engine is driven entirely by the caller's loop: every iteration calls
// Update, and the engine decides from its configured refresh intervals
// whether any rendering work happens at all, and separately whether each
// sink redraws. The console sink redraws in place using carriage-return
// erase; the file sink overwrites the file with the freshly rendered text.
//
// # Usage
//
//	eng := progress.New()
//	if err := eng.Reset(progress.Config{
//	    TotalItems: len(items),
//	    Console:    os.Stderr,
//	    Title:      "indexing",
//	}); err != nil {
//	    return err
//	}
//	defer eng.End()
//
//	for i, item := range items {
//	    process(item)
//	    eng.Update(i + 1)
//	}
//
// The engine is not safe for concurrent use: it assumes a single logical
// stream of updates from one goroutine. Concurrent Update calls are a
// caller bug, not something the engine guards against.
package progress
