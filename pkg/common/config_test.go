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

package arena

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	v, err := LoadConfig(writeConfig(t, ""), nil)
	require.NoError(t, err)

	assert.Equal(t, Config{
		Input:        DefaultInput,
		ResultsChart: DefaultResultsChart,
		ScoresChart:  DefaultScoresChart,
	}, Paths(v))
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := writeConfig(t, "input: arena/results.txt\nresults-chart: from-file.png\nscores-chart: from-file.png\n")
	t.Setenv("ARENA_SCORES_CHART", "from-env.png")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("results-chart", DefaultResultsChart, "")
	flags.String("scores-chart", DefaultScoresChart, "")
	require.NoError(t, flags.Parse([]string{"--results-chart", "from-flag.png"}))

	v, err := LoadConfig(path, flags)
	require.NoError(t, err)

	assert.Equal(t, Config{
		Input:        "arena/results.txt",
		ResultsChart: "from-flag.png",
		ScoresChart:  "from-env.png",
	}, Paths(v))
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestTryMkdir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts", "nested")
	require.NoError(t, TryMkdir(dir))
	assert.DirExists(t, dir)

	// existing directories are left alone
	require.NoError(t, TryMkdir(dir))
}
