// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
)

// SPIN is the index of the character set used by the ~working~ spinner.
const SPIN = 31

var working = spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond)

// StartSpinner starts the ~working~ spinner with the given suffix. The
// spinner is not shown if logging level is Trace, since it would be
// interleaved with the trace output.
func StartSpinner(suffix string) {
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		return
	}

	working.Suffix = " " + suffix
	working.Start()
}

// PauseSpinner stops the ~working~ spinner if it is running.
func PauseSpinner() {
	working.Stop()
}
